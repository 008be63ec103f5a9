package appointment

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/models"
)

func TestConfirmAppointmentSuccess(t *testing.T) {
	repo := new(MockRepository)
	uc := NewConfirmAppointment(repo, newTestDispatcher())

	repo.On("GetAppointmentForSalon", mock.Anything, uint(5), uint(1)).
		Return(&models.Appointment{ID: 5, Status: "pending"}, nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	ap, err := uc.Execute(context.Background(), 1, 2, 5)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
	repo.AssertExpectations(t)
}

func TestConfirmAppointmentNotFound(t *testing.T) {
	repo := new(MockRepository)
	uc := NewConfirmAppointment(repo, newTestDispatcher())

	repo.On("GetAppointmentForSalon", mock.Anything, uint(5), uint(1)).
		Return(nil, errors.New("record not found"))

	_, err := uc.Execute(context.Background(), 1, 2, 5)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestConfirmAppointmentInvalidState(t *testing.T) {
	repo := new(MockRepository)
	uc := NewConfirmAppointment(repo, newTestDispatcher())

	repo.On("GetAppointmentForSalon", mock.Anything, uint(5), uint(1)).
		Return(&models.Appointment{ID: 5, Status: "cancelled"}, nil)

	_, err := uc.Execute(context.Background(), 1, 2, 5)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestCompleteAppointmentAccruesVisitAndIncome(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCompleteAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)
	repo.On("GetAppointmentForSalon", mock.Anything, uint(5), uint(1)).
		Return(&models.Appointment{ID: 5, ClientID: 9, ServiceID: 3, Status: "confirmed"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, Name: "Corte Feminino", Price: 80}, nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)
	repo.On("AccrueClientVisit", mock.Anything, uint(9), 80.0, mock.Anything).Return(nil)
	repo.On("RecordIncome", mock.Anything, uint(1), "Corte Feminino", 80.0, mock.Anything).Return(nil)

	ap, err := uc.Execute(context.Background(), 1, 2, 5)

	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.CompletedAt)
	repo.AssertExpectations(t)
}

func TestCompleteAppointmentSurvivesAccountingFailure(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCompleteAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)
	repo.On("GetAppointmentForSalon", mock.Anything, uint(5), uint(1)).
		Return(&models.Appointment{ID: 5, ClientID: 9, ServiceID: 3, Status: "pending"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, Name: "Manicure", Price: 50}, nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)
	repo.On("AccrueClientVisit", mock.Anything, uint(9), 50.0, mock.Anything).
		Return(errors.New("db down"))
	repo.On("RecordIncome", mock.Anything, uint(1), "Manicure", 50.0, mock.Anything).
		Return(errors.New("db down"))

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	ap, err := uc.Execute(context.Background(), 1, 2, 5)

	// contabilidade derivada falhar não desfaz a conclusão
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)

	// mas as falhas ficam registradas no log
	assert.Contains(t, logged.String(), "client visit accrual error:")
	assert.Contains(t, logged.String(), "income record error:")
}

func TestCancelAppointmentSuccess(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)
	repo.On("GetAppointmentForSalon", mock.Anything, uint(5), uint(1)).
		Return(&models.Appointment{ID: 5, Status: "confirmed"}, nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	ap, err := uc.Execute(context.Background(), 1, 2, 5)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	require.NotNil(t, ap.CancelledAt)
}

func TestCancelCompletedAppointmentFails(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelAppointment(repo, newTestDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(testSalon(), nil)
	repo.On("GetAppointmentForSalon", mock.Anything, uint(5), uint(1)).
		Return(&models.Appointment{ID: 5, Status: "completed"}, nil)

	_, err := uc.Execute(context.Background(), 1, 2, 5)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestMarkNoShowOnlyFromConfirmed(t *testing.T) {
	repo := new(MockRepository)
	uc := NewMarkNoShow(repo, newTestDispatcher())

	repo.On("GetAppointmentForSalon", mock.Anything, uint(5), uint(1)).
		Return(&models.Appointment{ID: 5, Status: "confirmed"}, nil).Once()
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	ap, err := uc.Execute(context.Background(), 1, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "no_show", ap.Status)

	repo.On("GetAppointmentForSalon", mock.Anything, uint(6), uint(1)).
		Return(&models.Appointment{ID: 6, Status: "pending"}, nil).Once()

	_, err = uc.Execute(context.Background(), 1, 2, 6)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
