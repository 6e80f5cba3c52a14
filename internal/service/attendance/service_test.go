package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/hrm-backend-go/internal/domain/attendance"
	"github.com/staffloop/hrm-backend-go/internal/domain/employee"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []attendance.Session
}

func (f *fakeSessionRepo) CreateOpen(_ context.Context, session attendance.Session) (attendance.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if s.EmployeeID == session.EmployeeID && s.Open() {
			return attendance.Session{}, attendance.ErrAlreadyPunchedIn
		}
	}
	f.sessions = append(f.sessions, session)
	return session, nil
}

func (f *fakeSessionRepo) CloseOpen(_ context.Context, employeeID string, punchOut time.Time) (attendance.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.sessions {
		if s.EmployeeID == employeeID && s.Open() {
			out := punchOut
			f.sessions[i].PunchOut = &out
			f.sessions[i].DurationMinutes = attendance.DurationMinutesBetween(s.PunchIn, punchOut)
			return f.sessions[i], nil
		}
	}
	return attendance.Session{}, attendance.ErrNotPunchedIn
}

func (f *fakeSessionRepo) History(_ context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.Session, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []attendance.Session
	for _, s := range f.sessions {
		if s.EmployeeID != employeeID {
			continue
		}
		if filter.StartDate != nil && s.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && s.Date.After(*filter.EndDate) {
			continue
		}
		matched = append(matched, s)
	}
	// newest punch-in first
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeSessionRepo) CountClosedInRange(_ context.Context, employeeID string, start, end time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, s := range f.sessions {
		if s.EmployeeID != employeeID || s.Open() {
			continue
		}
		if !s.PunchOut.Before(start) && s.PunchOut.Before(end) {
			count++
		}
	}
	return count, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.UserID == userID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) CountByStatus(_ context.Context) (int64, int64, error) {
	var total, active int64
	for _, emp := range f.employees {
		total++
		if emp.Status == employee.StatusActive {
			active++
		}
	}
	return total, active, nil
}

func newTestService(t *testing.T) (*SessionServiceImpl, *fakeSessionRepo, string) {
	t.Helper()
	empID := uuid.NewString()
	sessions := &fakeSessionRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		empID: {
			ID:           empID,
			EmployeeCode: "EMP001",
			FirstName:    "Asha",
			LastName:     "Verma",
			BaseSalary:   decimal.NewFromInt(3100),
			Status:       employee.StatusActive,
		},
	}}
	svc := NewSessionService(database.NewDB(nil, time.Second), sessions, employees).(*SessionServiceImpl)
	return svc, sessions, empID
}

func TestPunchInThenOut_ComputesDuration(t *testing.T) {
	svc, _, empID := newTestService(t)

	start := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	in, err := svc.PunchIn(context.Background(), attendance.PunchInRequest{EmployeeID: empID})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", in.Date)
	assert.Nil(t, in.PunchOut)

	// 2h05m later
	svc.now = func() time.Time { return start.Add(125 * time.Minute) }

	out, err := svc.PunchOut(context.Background(), empID)
	require.NoError(t, err)
	require.NotNil(t, out.PunchOut)
	assert.Equal(t, 125, out.DurationMinutes)
	assert.Equal(t, "2.08", out.DurationHours)
}

func TestPunchIn_SecondOpenSessionRejected(t *testing.T) {
	svc, _, empID := newTestService(t)

	_, err := svc.PunchIn(context.Background(), attendance.PunchInRequest{EmployeeID: empID})
	require.NoError(t, err)

	_, err = svc.PunchIn(context.Background(), attendance.PunchInRequest{EmployeeID: empID})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
}

func TestPunchIn_ConcurrentExactlyOneSucceeds(t *testing.T) {
	svc, repo, empID := newTestService(t)

	const workers = 8
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.PunchIn(context.Background(), attendance.PunchInRequest{EmployeeID: empID})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var succeeded, conflicted int
	for err := range errCh {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)
	assert.Len(t, repo.sessions, 1)
}

func TestPunchOut_NoOpenSession(t *testing.T) {
	svc, _, empID := newTestService(t)

	_, err := svc.PunchOut(context.Background(), empID)
	assert.ErrorIs(t, err, attendance.ErrNotPunchedIn)
}

func TestPunchIn_UnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.PunchIn(context.Background(), attendance.PunchInRequest{EmployeeID: uuid.NewString()})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPunchIn_MissingEmployeeID(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.PunchIn(context.Background(), attendance.PunchInRequest{})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestHistory_NewestFirstAndRangeFiltered(t *testing.T) {
	svc, _, empID := newTestService(t)

	days := []time.Time{
		time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 4, 9, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		svc.now = func() time.Time { return day }
		_, err := svc.PunchIn(context.Background(), attendance.PunchInRequest{EmployeeID: empID})
		require.NoError(t, err)
		svc.now = func() time.Time { return day.Add(8 * time.Hour) }
		_, err = svc.PunchOut(context.Background(), empID)
		require.NoError(t, err)
	}

	all, err := svc.History(context.Background(), attendance.HistoryRequest{EmployeeID: empID})
	require.NoError(t, err)
	require.Len(t, all.Sessions, 3)
	assert.Equal(t, "2025-06-04", all.Sessions[0].Date)
	assert.Equal(t, "2025-06-02", all.Sessions[2].Date)

	start, end := "2025-06-03", "2025-06-03"
	filtered, err := svc.History(context.Background(), attendance.HistoryRequest{
		EmployeeID: empID,
		StartDate:  &start,
		EndDate:    &end,
	})
	require.NoError(t, err)
	require.Len(t, filtered.Sessions, 1)
	assert.Equal(t, "2025-06-03", filtered.Sessions[0].Date)
}
