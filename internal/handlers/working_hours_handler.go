package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkingHoursHandler(db *gorm.DB, audit *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: audit}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) professional(c *gin.Context) (*models.Professional, bool) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&prof).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "professional_not_found"})
		return nil, false
	}
	return &prof, true
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	prof, ok := h.professional(c)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("professional_id = ?", prof.ID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	prof, ok := h.professional(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.Where("professional_id = ?", prof.ID).Delete(&models.WorkingHours{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_hours"})
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		wh := models.WorkingHours{
			ProfessionalID: prof.ID,
			Weekday:        d.Weekday,
			Active:         d.Active,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
			LunchStart:     d.LunchStart,
			LunchEnd:       d.LunchEnd,
		}
		toCreate = append(toCreate, wh)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
			return
		}
	}

	dispatchAudit(c, h.audit, "working_hours_updated", "professional", prof.ID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
