package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/listing"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
)

type TransactionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTransactionHandler(db *gorm.DB, audit *audit.Dispatcher) *TransactionHandler {
	return &TransactionHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Method      string  `json:"method" binding:"omitempty,oneof=card pix cash"`
}

type UpdateTransactionRequest struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Method      *string  `json:"method,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

var transactionSorts = map[string]listing.Comparator[models.Transaction]{
	"date":        listing.ByTime(func(t models.Transaction) time.Time { return t.Date }),
	"amount":      listing.ByFloat(func(t models.Transaction) float64 { return t.Amount }),
	"description": listing.ByString(func(t models.Transaction) string { return t.Description }),
}

// --------- Handlers ---------

func (h *TransactionHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	q := parseListQuery(c)

	typeFilter := c.Query("type")
	methodFilter := c.Query("method")

	var all []models.Transaction
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("date DESC").
		Find(&all).Error; err != nil {

		httperr.Internal(c, "failed_to_list_transactions", "Erro ao listar transações.")
		return
	}

	filtered := listing.Filter(all, listing.Criteria[models.Transaction]{
		Search: q.Search,
		SearchFields: []func(models.Transaction) string{
			func(t models.Transaction) string { return t.Description },
		},
		Equals: []listing.EqualsFilter[models.Transaction]{
			{Value: typeFilter, Field: func(t models.Transaction) string { return t.Type }},
			{Value: methodFilter, Field: func(t models.Transaction) string { return t.Method }},
			{Value: q.Status, Field: func(t models.Transaction) string { return t.Status }},
		},
	})

	respondPage(c, filtered, q, transactionSorts)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	method := req.Method
	if method == "" {
		method = "cash"
	}

	tx := models.Transaction{
		SalonID:     salonID,
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Method:      method,
		Status:      "confirmed",
	}

	if err := h.db.Create(&tx).Error; err != nil {
		httperr.Internal(c, "failed_to_create_transaction", "Erro ao criar transação.")
		return
	}

	dispatchAudit(c, h.audit, "transaction_created", "transaction", tx.ID)

	c.JSON(http.StatusCreated, tx)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var tx models.Transaction
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&tx).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_transaction", "Erro ao buscar transação.")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Method != nil {
		tx.Method = *req.Method
	}
	if req.Status != nil {
		switch *req.Status {
		case "confirmed", "pending", "cancelled":
			tx.Status = *req.Status
		default:
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
	}

	if err := h.db.Save(&tx).Error; err != nil {
		httperr.Internal(c, "failed_to_update_transaction", "Erro ao atualizar transação.")
		return
	}

	dispatchAudit(c, h.audit, "transaction_updated", "transaction", tx.ID)

	c.JSON(http.StatusOK, tx)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Transaction{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_transaction", "Erro ao remover transação.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
		return
	}

	dispatchAudit(c, h.audit, "transaction_deleted", "transaction", parseOptionalID(id))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
