package appointment

import (
	"context"
	"log"

	"github.com/studiobelle/salon-manager/internal/audit"
	domain "github.com/studiobelle/salon-manager/internal/domain/appointment"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/models"
	"github.com/studiobelle/salon-manager/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForSalon(ctx, appointmentID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	service, err := uc.repo.GetService(ctx, salonID, ap.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Serviço concluído alimenta o histórico do cliente e o caixa.
	// Falha aqui não desfaz a conclusão: é contabilidade derivada.
	if err := uc.repo.AccrueClientVisit(ctx, ap.ClientID, service.Price, now); err != nil {
		log.Println("client visit accrual error:", err)
	}
	if err := uc.repo.RecordIncome(ctx, salonID, service.Name, service.Price, now); err != nil {
		log.Println("income record error:", err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
