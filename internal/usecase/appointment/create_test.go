package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/models"
)

// ===============================
// Mock Repository
// ===============================

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetSalonByID(ctx context.Context, id uint) (*models.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Salon), args.Error(1)
}

func (m *MockRepository) GetService(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
	args := m.Called(ctx, salonID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) GetProfessional(ctx context.Context, salonID, professionalID uint) (*models.Professional, error) {
	args := m.Called(ctx, salonID, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Professional), args.Error(1)
}

func (m *MockRepository) GetOrCreateClient(ctx context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	args := m.Called(ctx, salonID, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockRepository) AccrueClientVisit(ctx context.Context, clientID uint, amount float64, when time.Time) error {
	args := m.Called(ctx, clientID, amount, when)
	return args.Error(0)
}

func (m *MockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	if ap != nil {
		ap.ID = 42 // simula o insert
	}
	return args.Error(0)
}

func (m *MockRepository) AssertNoTimeConflict(ctx context.Context, professionalID uint, start, end time.Time) error {
	args := m.Called(ctx, professionalID, start, end)
	return args.Error(0)
}

func (m *MockRepository) GetAppointmentForSalon(ctx context.Context, appointmentID, salonID uint) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) RecordIncome(ctx context.Context, salonID uint, description string, amount float64, date time.Time) error {
	args := m.Called(ctx, salonID, description, amount, date)
	return args.Error(0)
}

func (m *MockRepository) GetWorkingHours(ctx context.Context, professionalID uint, weekday int) (*models.WorkingHours, error) {
	args := m.Called(ctx, professionalID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkingHours), args.Error(1)
}

func (m *MockRepository) ListAppointmentsForDay(ctx context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, professionalID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) IsWithinWorkingHours(ctx context.Context, professionalID uint, start, end time.Time) (bool, error) {
	args := m.Called(ctx, professionalID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListAppointmentsForPeriod(ctx context.Context, salonID, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, salonID, professionalID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

// ===============================
// Helpers
// ===============================

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func testSalon() *models.Salon {
	return &models.Salon{
		ID:                1,
		Timezone:          "America/Sao_Paulo",
		MinAdvanceMinutes: 120,
	}
}

// data bem no futuro para nunca esbarrar na antecedência mínima
func futureInput() CreateAppointmentInput {
	future := time.Now().AddDate(1, 0, 0)

	return CreateAppointmentInput{
		SalonID:        1,
		ProfessionalID: 7,
		ClientName:     "Ana Souza",
		ClientPhone:    "11999990000",
		ServiceID:      3,
		Date:           future.Format("2006-01-02"),
		Time:           "10:00",
		Priority:       "alta",
	}
}

// ===============================
// Tests
// ===============================

func TestCreateAppointmentSuccess(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)
	repo.On("GetProfessional", mock.Anything, uint(1), uint(7)).
		Return(&models.Professional{ID: 7, Status: "active"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, Active: true, DurationMin: 45, Price: 80}, nil)
	repo.On("IsWithinWorkingHours", mock.Anything, uint(7), mock.Anything, mock.Anything).
		Return(true, nil)
	repo.On("GetOrCreateClient", mock.Anything, uint(1), "Ana Souza", "11999990000", "").
		Return(&models.Client{ID: 9}, nil)
	repo.On("AssertNoTimeConflict", mock.Anything, uint(7), mock.Anything, mock.Anything).
		Return(nil)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil)

	ap, err := uc.Execute(context.Background(), futureInput())

	require.NoError(t, err)
	require.NotNil(t, ap)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, uint(9), ap.ClientID)
	assert.NotEmpty(t, ap.ReferenceCode)
	// fim = início + duração do serviço, sempre
	assert.Equal(t, 45*time.Minute, ap.EndTime.Sub(ap.StartTime))

	repo.AssertExpectations(t)
}

func TestCreateAppointmentInvalidPriority(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)

	in := futureInput()
	in.Priority = "urgente"

	_, err := uc.Execute(context.Background(), in)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_priority"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointmentTooSoon(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)

	// ontem: sempre dentro da janela de antecedência mínima
	in := futureInput()
	in.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	in.Time = "10:00"

	_, err := uc.Execute(context.Background(), in)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateAppointmentProfessionalInactive(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)
	repo.On("GetProfessional", mock.Anything, uint(1), uint(7)).
		Return(&models.Professional{ID: 7, Status: "vacation"}, nil)

	_, err := uc.Execute(context.Background(), futureInput())

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "professional_unavailable"))
}

func TestCreateAppointmentServiceInactive(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)
	repo.On("GetProfessional", mock.Anything, uint(1), uint(7)).
		Return(&models.Professional{ID: 7, Status: "active"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, Active: false, DurationMin: 45}, nil)

	_, err := uc.Execute(context.Background(), futureInput())

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
}

func TestCreateAppointmentOutsideWorkingHours(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)
	repo.On("GetProfessional", mock.Anything, uint(1), uint(7)).
		Return(&models.Professional{ID: 7, Status: "active"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, Active: true, DurationMin: 45}, nil)
	repo.On("IsWithinWorkingHours", mock.Anything, uint(7), mock.Anything, mock.Anything).
		Return(false, nil)

	_, err := uc.Execute(context.Background(), futureInput())

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateAppointmentTimeConflict(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)
	repo.On("GetProfessional", mock.Anything, uint(1), uint(7)).
		Return(&models.Professional{ID: 7, Status: "active"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, Active: true, DurationMin: 45}, nil)
	repo.On("IsWithinWorkingHours", mock.Anything, uint(7), mock.Anything, mock.Anything).
		Return(true, nil)
	repo.On("GetOrCreateClient", mock.Anything, uint(1), mock.Anything, mock.Anything, mock.Anything).
		Return(&models.Client{ID: 9}, nil)
	repo.On("AssertNoTimeConflict", mock.Anything, uint(7), mock.Anything, mock.Anything).
		Return(httperr.ErrBusiness("time_conflict"))

	_, err := uc.Execute(context.Background(), futureInput())

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}
