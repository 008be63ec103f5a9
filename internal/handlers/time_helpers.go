package handlers

import (
	"time"

	"github.com/studiobelle/salon-manager/internal/models"
)

const defaultTimezone = "America/Sao_Paulo"

// resolve o timezone oficial do salão
func locationFromSalon(salon *models.Salon) *time.Location {
	if salon != nil && salon.Timezone != "" {
		if loc, err := time.LoadLocation(salon.Timezone); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

func nowInSalon(salon *models.Salon) time.Time {
	return time.Now().In(locationFromSalon(salon))
}

func parseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

func parseDateInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSalon(salon),
	)
}
