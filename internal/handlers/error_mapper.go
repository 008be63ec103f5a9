package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studiobelle/salon-manager/internal/httperr"
)

// mapCreateErrors traduz erros de negócio do use case de criação para
// respostas HTTP com mensagem em português.
func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "invalid_priority"):
		httperr.BadRequest(c, "invalid_priority", "Prioridade inválida.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário inválido.")
	case httperr.IsBusiness(err, "professional_not_found"):
		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
	case httperr.IsBusiness(err, "professional_unavailable"):
		httperr.BadRequest(c, "professional_unavailable", "Profissional indisponível.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "service_inactive"):
		httperr.BadRequest(c, "service_inactive", "Serviço inativo.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Fora do horário de atendimento.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.BadRequest(c, "time_conflict", "Conflito de horário.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}

// mapStateErrors cobre confirmar/concluir/cancelar/no-show.
func mapStateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
	default:
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
	}
}
