package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/staffloop/hrm-backend-go/internal/config"
	appHTTP "github.com/staffloop/hrm-backend-go/internal/handler/http"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
	"github.com/staffloop/hrm-backend-go/internal/pkg/jwt"
	"github.com/staffloop/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffloop/hrm-backend-go/internal/service/attendance"
	authService "github.com/staffloop/hrm-backend-go/internal/service/auth"
	employeeService "github.com/staffloop/hrm-backend-go/internal/service/employee"
	leaveService "github.com/staffloop/hrm-backend-go/internal/service/leave"
	payrollService "github.com/staffloop/hrm-backend-go/internal/service/payroll"
	reportService "github.com/staffloop/hrm-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "staffloop-hrm"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.QueryTimeout)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	auth := authService.NewAuthService(db, userRepo, jwtService)
	employees := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	attendance := attendanceService.NewSessionService(db, sessionRepo, employeeRepo)
	leaves := leaveService.NewLedgerService(db, requestRepo, employeeRepo)
	payroll := payrollService.NewRecordService(db, recordRepo, employeeRepo, requestRepo, sessionRepo, logger, cfg.Payroll.TaxRate)
	reports := reportService.NewSummaryService(db, summaryRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(auth, jwtService),
		Attendance: appHTTP.NewAttendanceHandler(attendance),
		Leave:      appHTTP.NewLeaveHandler(leaves),
		Payroll:    appHTTP.NewPayrollHandler(payroll),
		Employee:   appHTTP.NewEmployeeHandler(employees),
		Report:     appHTTP.NewReportHandler(reports),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
