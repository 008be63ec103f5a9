package appointment

import "github.com/studiobelle/salon-manager/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// Prioridade é informativa, não participa de transições
const (
	PriorityHigh   = "alta"
	PriorityMedium = "media"
	PriorityLow    = "baixa"
)

// ===============================
// Validations
// ===============================

// CanConfirm define se um agendamento pode ser confirmado
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkNoShow: só faz sentido para horário confirmado que não veio
func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus: todo agendamento nasce pendente
func InitialStatus() Status {
	return StatusPending
}

func IsValidPriority(p string) bool {
	switch p {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
