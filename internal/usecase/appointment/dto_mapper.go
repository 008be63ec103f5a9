package appointment

import (
	"github.com/studiobelle/salon-manager/internal/dto"
	"github.com/studiobelle/salon-manager/internal/models"
)

func toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		ID:               ap.ID,
		ReferenceCode:    ap.ReferenceCode,
		StartTime:        ap.StartTime,
		EndTime:          ap.EndTime,
		Status:           ap.Status,
		Priority:         ap.Priority,
		ClientName:       ap.Client.Name,
		ClientPhone:      ap.Client.Phone,
		ProfessionalName: ap.Professional.Name,
		ServiceName:      ap.Service.Name,
		Price:            ap.Service.Price,
	}
}
