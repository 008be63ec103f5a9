package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	ReferenceCode    string    `json:"reference_code"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority"`
	ClientName       string    `json:"client_name"`
	ClientPhone      string    `json:"client_phone"`
	ProfessionalName string    `json:"professional_name"`
	ServiceName      string    `json:"service_name"`
	Price            float64   `json:"price"`
}
