package payroll

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/hrm-backend-go/internal/domain/attendance"
	"github.com/staffloop/hrm-backend-go/internal/domain/employee"
	"github.com/staffloop/hrm-backend-go/internal/domain/leave"
	"github.com/staffloop/hrm-backend-go/internal/domain/payroll"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
)

type fakeRecordRepo struct {
	mu      sync.Mutex
	records map[string]payroll.Record // keyed by employeeID + "|" + period
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]payroll.Record)}
}

func key(employeeID, period string) string { return employeeID + "|" + period }

func (f *fakeRecordRepo) Upsert(_ context.Context, rec payroll.Record) (payroll.Record, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := key(rec.EmployeeID, rec.PayPeriod)
	if existing, ok := f.records[k]; ok {
		if existing.Status == payroll.StatusPaid {
			return payroll.Record{}, false, payroll.ErrRecordAlreadyPaid
		}
		rec.ID = existing.ID
		f.records[k] = rec
		return rec, false, nil
	}
	f.records[k] = rec
	return rec, true, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (payroll.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return payroll.Record{}, payroll.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByEmployeeAndPeriod(_ context.Context, employeeID, period string) (payroll.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[key(employeeID, period)]
	if !ok {
		return payroll.Record{}, payroll.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) MarkPaid(_ context.Context, id string, paymentDate time.Time) (payroll.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, rec := range f.records {
		if rec.ID != id {
			continue
		}
		if rec.Status != payroll.StatusCalculated {
			return payroll.Record{}, payroll.ErrNotCalculated
		}
		rec.Status = payroll.StatusPaid
		d := paymentDate
		rec.PaymentDate = &d
		f.records[k] = rec
		return rec, nil
	}
	return payroll.Record{}, payroll.ErrRecordNotFound
}

func (f *fakeRecordRepo) HistoryFor(_ context.Context, employeeID string) ([]payroll.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []payroll.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PayPeriod > out[j].PayPeriod })
	return out, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeLeaveRepo struct {
	leave.RequestRepository
	unpaidDays float64
}

func (f *fakeLeaveRepo) SumApprovedUnpaidDays(_ context.Context, _ string, _, _ time.Time) (float64, error) {
	return f.unpaidDays, nil
}

type fakeSessionRepo struct {
	attendance.SessionRepository
	closedSessions int
}

func (f *fakeSessionRepo) CountClosedInRange(_ context.Context, _ string, _, _ time.Time) (int, error) {
	return f.closedSessions, nil
}

type fixture struct {
	svc     *RecordServiceImpl
	records *fakeRecordRepo
	leaves  *fakeLeaveRepo
	empID   string
}

func newFixture(t *testing.T, baseSalary int64, unpaidDays float64) fixture {
	t.Helper()
	empID := uuid.NewString()
	records := newFakeRecordRepo()
	leaves := &fakeLeaveRepo{unpaidDays: unpaidDays}
	svc := NewRecordService(
		database.NewDB(nil, time.Second),
		records,
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			empID: {ID: empID, BaseSalary: decimal.NewFromInt(baseSalary), Status: employee.StatusActive},
		}},
		leaves,
		&fakeSessionRepo{closedSessions: 20},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		payroll.DefaultTaxRate,
	).(*RecordServiceImpl)
	return fixture{svc: svc, records: records, leaves: leaves, empID: empID}
}

func TestGenerate_FullBreakdown(t *testing.T) {
	fx := newFixture(t, 3100, 2)

	resp, isNew, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
	})
	require.NoError(t, err)

	assert.True(t, isNew)
	assert.Equal(t, "2024-03", resp.PayPeriod)
	assert.Equal(t, 31, resp.TotalWorkingDays)
	assert.Equal(t, "29", resp.PaidDays)
	assert.Equal(t, "2900.00", resp.GrossEarnings)
	assert.Equal(t, "2", resp.UnpaidLeaveDays)
	assert.Equal(t, "200.00", resp.LeaveDeduction)
	assert.Equal(t, "290.00", resp.TaxDeduction)
	assert.Equal(t, "2610.00", resp.NetSalary)
	assert.Equal(t, string(payroll.StatusCalculated), resp.Status)
	assert.Nil(t, resp.PaymentDate)
}

func TestGenerate_IdempotentWithoutForce(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	first, isNew, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
	})
	require.NoError(t, err)
	require.True(t, isNew)

	// figures that would change on recompute
	fx.leaves.unpaidDays = 5

	second, isNew, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
	})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, first, second)
	assert.Len(t, fx.records.records, 1)
}

func TestGenerate_ForceRecomputes(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	_, _, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
	})
	require.NoError(t, err)

	fx.leaves.unpaidDays = 2

	resp, isNew, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
		Force:      true,
	})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, "2900.00", resp.GrossEarnings)
	assert.Len(t, fx.records.records, 1)
}

func TestGenerate_PaidRecordIsImmutable(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	resp, _, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
	})
	require.NoError(t, err)
	_, err = fx.svc.MarkPaid(context.Background(), resp.ID)
	require.NoError(t, err)

	_, _, err = fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
		Force:      true,
	})
	assert.ErrorIs(t, err, payroll.ErrRecordAlreadyPaid)

	// without force the paid record is simply returned
	again, isNew, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
	})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, string(payroll.StatusPaid), again.Status)
}

func TestGenerate_ConcurrentForceLeavesOneRecord(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	const workers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
				EmployeeID: fx.empID,
				PayPeriod:  "2024-03",
				Force:      true,
			})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		assert.NoError(t, err)
	}
	assert.Len(t, fx.records.records, 1)
}

func TestGenerate_InvalidPeriod(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	for _, period := range []string{"2024-3", "2024-13", "032024"} {
		_, _, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
			EmployeeID: fx.empID,
			PayPeriod:  period,
		})
		assert.Error(t, err, "period %q", period)
	}
}

func TestGenerate_ZeroBaseSalary(t *testing.T) {
	fx := newFixture(t, 0, 0)

	_, _, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidDailyRate)
}

func TestGenerate_UnknownEmployee(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	_, _, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: uuid.NewString(),
		PayPeriod:  "2024-03",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMarkPaid_Lifecycle(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	resp, _, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
	})
	require.NoError(t, err)

	paid, err := fx.svc.MarkPaid(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusPaid), paid.Status)
	require.NotNil(t, paid.PaymentDate)

	// second call is a no-op returning the record unchanged
	again, err := fx.svc.MarkPaid(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, paid, again)
}

func TestMarkPaid_NotFound(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	_, err := fx.svc.MarkPaid(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}

func TestMarkPaid_PendingRecordConflicts(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	rec := payroll.Record{
		ID:         uuid.NewString(),
		EmployeeID: fx.empID,
		PayPeriod:  "2024-03",
		BaseSalary: decimal.NewFromInt(3100),
		Status:     payroll.StatusPending,
	}
	fx.records.records[key(fx.empID, rec.PayPeriod)] = rec

	_, err := fx.svc.MarkPaid(context.Background(), rec.ID)
	assert.ErrorIs(t, err, payroll.ErrNotCalculated)
}

func TestHistory_NewestPeriodFirst(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	for _, period := range []string{"2024-01", "2024-02", "2024-03"} {
		_, _, err := fx.svc.Generate(context.Background(), &payroll.GenerateRequest{
			EmployeeID: fx.empID,
			PayPeriod:  period,
		})
		require.NoError(t, err)
	}

	history, err := fx.svc.History(context.Background(), fx.empID)
	require.NoError(t, err)
	require.Len(t, history.Records, 3)
	assert.Equal(t, "2024-03", history.Records[0].PayPeriod)
	assert.Equal(t, "2024-01", history.Records[2].PayPeriod)
}

func TestHistory_EmptyIsNotFound(t *testing.T) {
	fx := newFixture(t, 3100, 0)

	_, err := fx.svc.History(context.Background(), fx.empID)
	assert.ErrorIs(t, err, payroll.ErrNoRecords)
}
