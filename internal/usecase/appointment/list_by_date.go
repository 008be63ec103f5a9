package appointment

import (
	"context"
	"time"

	domain "github.com/studiobelle/salon-manager/internal/domain/appointment"
	"github.com/studiobelle/salon-manager/internal/dto"
	"github.com/studiobelle/salon-manager/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// professionalID = 0 lista todos os profissionais do salão.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		salonID,
		professionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, toListDTO(ap))
	}

	return out, nil
}
