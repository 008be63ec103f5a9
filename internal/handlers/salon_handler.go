package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
	"github.com/studiobelle/salon-manager/internal/timezone"
)

type SalonHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSalonHandler(db *gorm.DB, audit *audit.Dispatcher) *SalonHandler {
	return &SalonHandler{db: db, audit: audit}
}

type UpdateSalonConfigRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *SalonHandler) GetMeSalon(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Erro ao buscar dados do salão.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) UpdateMeSalon(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Erro ao buscar dados do salão.")
		return
	}

	var req UpdateSalonConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		salon.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		salon.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Erro ao salvar as configurações do salão.")
		return
	}

	dispatchAudit(c, h.audit, "salon_config_updated", "salon", salon.ID)

	c.JSON(http.StatusOK, salon)
}
