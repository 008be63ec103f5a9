package appointment

import (
	"context"

	"github.com/studiobelle/salon-manager/internal/audit"
	domain "github.com/studiobelle/salon-manager/internal/domain/appointment"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/models"
)

type MarkNoShow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForSalon(ctx, appointmentID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.MarkNoShow(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_no_show",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
