package appointment

import (
	"context"
	"time"

	"github.com/studiobelle/salon-manager/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		salonID uint,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	AccrueClientVisit(
		ctx context.Context,
		clientID uint,
		amount float64,
		when time.Time,
	) error

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForSalon(
		ctx context.Context,
		appointmentID uint,
		salonID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Finance --------
	RecordIncome(
		ctx context.Context,
		salonID uint,
		description string,
		amount float64,
		date time.Time,
	) error

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	IsWithinWorkingHours(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
