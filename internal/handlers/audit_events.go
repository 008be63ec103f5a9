package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/middleware"
)

// dispatchAudit registra uma mutação feita por um usuário autenticado.
// O envio é assíncrono e nunca bloqueia a resposta.
func dispatchAudit(c *gin.Context, d *audit.Dispatcher, action, entity string, entityID uint) {
	if d == nil {
		return
	}

	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	d.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
	})
}
