package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/listing"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
)

type ProfessionalHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProfessionalHandler(db *gorm.DB, audit *audit.Dispatcher) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name           string   `json:"name" binding:"required"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Specialties    string   `json:"specialties"`
	CommissionRate float64  `json:"commission_rate"`
	Rating         *float64 `json:"rating"`
}

type UpdateProfessionalRequest struct {
	Name           *string  `json:"name,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Specialties    *string  `json:"specialties,omitempty"`
	Status         *string  `json:"status,omitempty"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
}

var professionalSorts = map[string]listing.Comparator[models.Professional]{
	"name": listing.ByString(func(p models.Professional) string { return p.Name }),
	"rating": listing.ByFloat(func(p models.Professional) float64 {
		return listing.FloatOrZero(p.Rating)
	}),
	"commission_rate": listing.ByFloat(func(p models.Professional) float64 { return p.CommissionRate }),
	"created_at":      listing.ByTime(func(p models.Professional) time.Time { return p.CreatedAt }),
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	q := parseListQuery(c)

	var all []models.Professional
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&all).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_professionals"})
		return
	}

	filtered := listing.Filter(all, listing.Criteria[models.Professional]{
		Search: q.Search,
		SearchFields: []func(models.Professional) string{
			func(p models.Professional) string { return p.Name },
			func(p models.Professional) string { return p.Specialties },
		},
		Equals: []listing.EqualsFilter[models.Professional]{
			{Value: q.Status, Field: func(p models.Professional) string { return p.Status }},
		},
	})

	respondPage(c, filtered, q, professionalSorts)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	prof := models.Professional{
		SalonID:        salonID,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Specialties:    req.Specialties,
		CommissionRate: req.CommissionRate,
		Rating:         req.Rating,
		Status:         "active",
	}

	if err := h.db.Create(&prof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_professional"})
		return
	}

	dispatchAudit(c, h.audit, "professional_created", "professional", prof.ID)

	c.JSON(http.StatusCreated, prof)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&prof).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "professional_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_professional"})
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		prof.Name = *req.Name
	}
	if req.Phone != nil {
		prof.Phone = *req.Phone
	}
	if req.Email != nil {
		prof.Email = *req.Email
	}
	if req.Specialties != nil {
		prof.Specialties = *req.Specialties
	}
	if req.Status != nil {
		switch *req.Status {
		case "active", "inactive", "vacation":
			prof.Status = *req.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
			return
		}
	}
	if req.CommissionRate != nil {
		prof.CommissionRate = *req.CommissionRate
	}
	if req.Rating != nil {
		prof.Rating = req.Rating
	}

	if err := h.db.Save(&prof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_professional"})
		return
	}

	dispatchAudit(c, h.audit, "professional_updated", "professional", prof.ID)

	c.JSON(http.StatusOK, prof)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Professional{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_professional"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "professional_not_found"})
		return
	}

	dispatchAudit(c, h.audit, "professional_deleted", "professional", parseOptionalID(id))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
