package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/studiobelle/salon-manager/internal/domain/appointment"
	"github.com/studiobelle/salon-manager/internal/models"
)

func TestGetAvailabilityWalksTheDay(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo)

	// sexta-feira
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, DurationMin: 60}, nil)
	repo.On("GetWorkingHours", mock.Anything, uint(7), int(time.Friday)).
		Return(&models.WorkingHours{
			Active:     true,
			StartTime:  "09:00",
			EndTime:    "18:00",
			LunchStart: "12:00",
			LunchEnd:   "13:00",
		}, nil)

	booked := []models.Appointment{
		{
			StartTime: time.Date(2026, 4, 10, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 4, 10, 11, 0, 0, 0, time.UTC),
		},
	}
	repo.On("ListAppointmentsForDay", mock.Anything, uint(7), mock.Anything, mock.Anything).
		Return(booked, nil)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 7,
		ServiceID:      3,
		Date:           day,
	})

	require.NoError(t, err)

	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.Start
	}

	// 10:00 ocupado, 12:00 cai no almoço
	assert.Equal(t, []string{"09:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00"}, starts)
	assert.Equal(t, "10:00", slots[0].End)
}

func TestGetAvailabilitySlotCrossingTwoAppointments(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo)

	// sexta-feira
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, DurationMin: 60}, nil)
	repo.On("GetWorkingHours", mock.Anything, uint(7), int(time.Friday)).
		Return(&models.WorkingHours{
			Active:    true,
			StartTime: "08:00",
			EndTime:   "12:00",
		}, nil)

	// o primeiro termina exatamente às 09:00; o segundo começa dentro
	// do slot 09:00-10:00 e também precisa bloqueá-lo
	booked := []models.Appointment{
		{
			StartTime: time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			StartTime: time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 4, 10, 10, 0, 0, 0, time.UTC),
		},
	}
	repo.On("ListAppointmentsForDay", mock.Anything, uint(7), mock.Anything, mock.Anything).
		Return(booked, nil)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 7,
		ServiceID:      3,
		Date:           day,
	})

	require.NoError(t, err)

	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.Start
	}

	assert.Equal(t, []string{"10:00", "11:00"}, starts)
}

func TestGetAvailabilityInactiveDayIsEmpty(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo)

	day := time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC) // domingo

	repo.On("GetService", mock.Anything, uint(1), uint(3)).
		Return(&models.Service{ID: 3, DurationMin: 30}, nil)
	repo.On("GetWorkingHours", mock.Anything, uint(7), int(time.Sunday)).
		Return(&models.WorkingHours{Active: false}, nil)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 7,
		ServiceID:      3,
		Date:           day,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo)

	repo.On("GetService", mock.Anything, uint(1), uint(99)).
		Return(nil, assert.AnError)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:   1,
		ServiceID: 99,
		Date:      time.Now(),
	})

	require.Error(t, err)
}
