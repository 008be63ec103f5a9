package appointment

import (
	"context"
	"time"

	domain "github.com/studiobelle/salon-manager/internal/domain/appointment"
	"github.com/studiobelle/salon-manager/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	weekday := int(in.Date.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.ProfessionalID, weekday)
	if err != nil || !wh.Active {
		return []domain.TimeSlot{}, nil
	}

	loc := in.Date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(wh.StartTime)
	dayEnd := parseHM(wh.EndTime)

	hasLunch := wh.LunchStart != "" && wh.LunchEnd != ""
	var lunchStart, lunchEnd time.Time
	if hasLunch {
		lunchStart = parseHM(wh.LunchStart)
		lunchEnd = parseHM(wh.LunchEnd)
	}

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.ProfessionalID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(service.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		// almoço
		if hasLunch && domain.Overlaps(slotStart, slotEnd, lunchStart, lunchEnd) {
			continue
		}

		// avança agendamentos já finalizados (terminam até o início do slot)
		for apIdx < len(appointments) && !appointments[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		// um slot longo pode cruzar mais de um agendamento; checa todos
		// que começam antes do fim do slot
		conflict := false
		for i := apIdx; i < len(appointments); i++ {
			ap := appointments[i]
			if !ap.StartTime.Before(slotEnd) {
				break
			}
			if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}
