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

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name      string     `json:"name" binding:"required"`
	Email     string     `json:"email" binding:"required,email"`
	Phone     string     `json:"phone" binding:"required"`
	City      string     `json:"city"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `json:"notes"`
}

type UpdateClientRequest struct {
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	City      *string    `json:"city,omitempty"`
	Status    *string    `json:"status,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

var clientSorts = map[string]listing.Comparator[models.Client]{
	"name":        listing.ByString(func(cl models.Client) string { return cl.Name }),
	"city":        listing.ByString(func(cl models.Client) string { return cl.City }),
	"total_spent": listing.ByFloat(func(cl models.Client) float64 { return cl.TotalSpent }),
	"created_at":  listing.ByTime(func(cl models.Client) time.Time { return cl.CreatedAt }),
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	q := parseListQuery(c)

	var all []models.Client
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("created_at DESC").
		Find(&all).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_clients",
		})
		return
	}

	filtered := listing.Filter(all, listing.Criteria[models.Client]{
		Search: q.Search,
		SearchFields: []func(models.Client) string{
			func(cl models.Client) string { return cl.Name },
			func(cl models.Client) string { return cl.Phone },
			func(cl models.Client) string { return cl.Email },
			func(cl models.Client) string { return cl.City },
		},
		Equals: []listing.EqualsFilter[models.Client]{
			{Value: q.Status, Field: func(cl models.Client) string { return cl.Status }},
		},
	})

	respondPage(c, filtered, q, clientSorts)
}

func (h *ClientHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client := models.Client{
		SalonID:   salonID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
		Status:    "active",
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	dispatchAudit(c, h.audit, "client_created", "client", client.ID)

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&client).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if req.BirthDate != nil {
		client.BirthDate = req.BirthDate
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.db.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_client"})
		return
	}

	dispatchAudit(c, h.audit, "client_updated", "client", client.ID)

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Client{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_client"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
		return
	}

	dispatchAudit(c, h.audit, "client_deleted", "client", parseOptionalID(id))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
