package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/listing"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	DurationMin   int     `json:"duration_min" binding:"required,min=1"`
	Price         float64 `json:"price" binding:"required"`
	Category      string  `json:"category"`
	CommissionPct float64 `json:"commission_percentage"`
}

type UpdateServiceRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	DurationMin   *int     `json:"duration_min,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Active        *bool    `json:"active,omitempty"`
	Category      *string  `json:"category,omitempty"`
	CommissionPct *float64 `json:"commission_percentage,omitempty"`
}

var serviceSorts = map[string]listing.Comparator[models.Service]{
	"name":         listing.ByString(func(s models.Service) string { return s.Name }),
	"price":        listing.ByFloat(func(s models.Service) float64 { return s.Price }),
	"duration_min": listing.ByInt(func(s models.Service) int { return s.DurationMin }),
	"category":     listing.ByString(func(s models.Service) string { return s.Category }),
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	q := parseListQuery(c)

	// "active_only=true" restringe; false/ausente não exclui nada
	activeOnly := strings.EqualFold(c.Query("active_only"), "true")

	var all []models.Service
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&all).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	filtered := listing.Filter(all, listing.Criteria[models.Service]{
		Search: q.Search,
		SearchFields: []func(models.Service) string{
			func(s models.Service) string { return s.Name },
			func(s models.Service) string { return s.Description },
		},
		Equals: []listing.EqualsFilter[models.Service]{
			{Value: q.Category, Field: func(s models.Service) string { return s.Category }},
		},
		Flags: []listing.FlagFilter[models.Service]{
			{Enabled: activeOnly, Field: func(s models.Service) bool { return s.Active }},
		},
	})

	respondPage(c, filtered, q, serviceSorts)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		SalonID:       salonID,
		Name:          req.Name,
		Description:   req.Description,
		DurationMin:   req.DurationMin,
		Price:         req.Price,
		Active:        true,
		Category:      strings.ToLower(req.Category),
		CommissionPct: req.CommissionPct,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	dispatchAudit(c, h.audit, "service_created", "service", service.ID)

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}
	if req.Category != nil {
		service.Category = strings.ToLower(*req.Category)
	}
	if req.CommissionPct != nil {
		service.CommissionPct = *req.CommissionPct
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	dispatchAudit(c, h.audit, "service_updated", "service", service.ID)

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Service{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_service"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	dispatchAudit(c, h.audit, "service_deleted", "service", parseOptionalID(id))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
