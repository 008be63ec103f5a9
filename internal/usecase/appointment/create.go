package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/studiobelle/salon-manager/internal/audit"
	domain "github.com/studiobelle/salon-manager/internal/domain/appointment"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/models"
	"github.com/studiobelle/salon-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID        uint
	ProfessionalID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date     string
	Time     string
	Priority string
	Notes    string

	// quem disparou (nil na página pública)
	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	// Data/hora no timezone do salão
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !domain.IsValidPriority(in.Priority) {
		return nil, httperr.ErrBusiness("invalid_priority")
	}

	// Antecedência mínima
	minAdvance := salon.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(salon.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// Profissional precisa estar ativo
	prof, err := uc.repo.GetProfessional(ctx, in.SalonID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	if prof.Status != "active" {
		return nil, httperr.ErrBusiness("professional_unavailable")
	}

	// Serviço define a duração: end = start + duration, sempre
	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// Expediente + almoço
	ok, err := uc.repo.IsWithinWorkingHours(
		ctx,
		in.ProfessionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// Cliente (get or create por telefone)
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// Conflito de horário por profissional
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.ProfessionalID,
		start,
		end,
	); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ReferenceCode:  uuid.NewString(),
		SalonID:        in.SalonID,
		ProfessionalID: in.ProfessionalID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		Priority:       in.Priority,
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
