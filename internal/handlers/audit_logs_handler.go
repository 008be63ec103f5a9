package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/httpresp"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
)

// Trilha de auditoria: paginada direto no banco, o volume cresce sem
// limite e não cabe no pipeline em memória das listagens.
type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	q := parseListQuery(c)

	action := c.Query("action")
	entity := c.Query("entity")
	from := c.Query("from")
	to := c.Query("to")

	query := h.db.
		Model(&models.AuditLog{}).
		Where("salon_id = ?", salonID)

	if action != "" {
		query = query.Where("action = ?", action)
	}
	if entity != "" {
		query = query.Where("entity = ?", entity)
	}
	if from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("created_at >= ?", t)
		}
	}
	if to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("created_at < ?", t.Add(24*time.Hour))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_audit_logs", "Erro ao contar registros de auditoria.")
		return
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	page := q.Page
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var logs []models.AuditLog
	if err := query.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((page - 1) * q.Limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar registros de auditoria.")
		return
	}

	httpresp.Paged(c, logs, httpresp.Pagination{
		Page:       page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
	})
}
