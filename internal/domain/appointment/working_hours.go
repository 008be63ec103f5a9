package appointment

import (
	"time"

	"github.com/studiobelle/salon-manager/internal/models"
)

// WithinWorkingHours valida se um intervalo cabe no expediente do dia,
// incluindo pausa de almoço (regra de domínio, sem acesso a banco).
func WithinWorkingHours(
	wh *models.WorkingHours,
	start time.Time,
	end time.Time,
) bool {

	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return false
	}

	loc := start.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	workStart := parseHM(wh.StartTime)
	workEnd := parseHM(wh.EndTime)

	if start.Before(workStart) || end.After(workEnd) {
		return false
	}

	if wh.LunchStart != "" && wh.LunchEnd != "" {
		lunchStart := parseHM(wh.LunchStart)
		lunchEnd := parseHM(wh.LunchEnd)

		if Overlaps(start, end, lunchStart, lunchEnd) {
			return false
		}
	}

	return true
}
