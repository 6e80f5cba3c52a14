package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffloop/hrm-backend-go/internal/config"
	"github.com/staffloop/hrm-backend-go/internal/handler/http/middleware"
	"github.com/staffloop/hrm-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Employee   EmployeeHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffloop-hrm"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/history", h.Attendance.History)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/", h.Leave.List)

				// HR or Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/{leaveID}/review", h.Leave.Review)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/me", h.Payroll.MyHistory)

				// HR or Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/generate", h.Payroll.Generate)
					r.Post("/{payrollID}/mark-paid", h.Payroll.MarkPaid)
					r.Get("/history/{employeeID}", h.Payroll.History)
				})
			})

			// HR or Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", h.Employee.Create)
					r.Get("/", h.Employee.List)
					r.Get("/{employeeID}", h.Employee.Get)
					r.Put("/{employeeID}", h.Employee.Update)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Delete("/{employeeID}", h.Employee.Delete)
					})
				})

				r.Get("/reports/summary", h.Report.Summary)
			})
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("staffloop hrm api\n"))
	})

	return r
}
