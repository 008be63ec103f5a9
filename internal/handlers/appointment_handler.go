package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/studiobelle/salon-manager/internal/domain/appointment"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
	ucAppointment "github.com/studiobelle/salon-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	confirm    *ucAppointment.ConfirmAppointment
	complete   *ucAppointment.CompleteAppointment
	cancel     *ucAppointment.CancelAppointment
	noShow     *ucAppointment.MarkNoShow
	listByDate *ucAppointment.ListAppointmentsByDate
	listByMon  *ucAppointment.ListAppointmentsByMonth
	avail      *ucAppointment.GetAvailability
	db         *gorm.DB
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	confirm *ucAppointment.ConfirmAppointment,
	complete *ucAppointment.CompleteAppointment,
	cancel *ucAppointment.CancelAppointment,
	noShow *ucAppointment.MarkNoShow,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMon *ucAppointment.ListAppointmentsByMonth,
	avail *ucAppointment.GetAvailability,
	db *gorm.DB,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		confirm:    confirm,
		complete:   complete,
		cancel:     cancel,
		noShow:     noShow,
		listByDate: listByDate,
		listByMon:  listByMon,
		avail:      avail,
		db:         db,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ClientEmail    string `json:"client_email"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Priority       string `json:"priority"`
	Notes          string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		SalonID:        salonID,
		ProfessionalID: req.ProfessionalID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		Priority:       req.Priority,
		Notes:          req.Notes,
		ActorID:        &userID,
	})
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	professionalID := parseOptionalID(c.Query("professional_id"))

	out, err := h.listByDate.Execute(c.Request.Context(), salonID, professionalID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(200, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	professionalID := parseOptionalID(c.Query("professional_id"))

	out, err := h.listByMon.Execute(c.Request.Context(), salonID, professionalID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.applyState(c, func(salonID, userID, id uint) (any, error) {
		return h.confirm.Execute(c.Request.Context(), salonID, userID, id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.applyState(c, func(salonID, userID, id uint) (any, error) {
		return h.complete.Execute(c.Request.Context(), salonID, userID, id)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.applyState(c, func(salonID, userID, id uint) (any, error) {
		return h.cancel.Execute(c.Request.Context(), salonID, userID, id)
	})
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.applyState(c, func(salonID, userID, id uint) (any, error) {
		return h.noShow.Execute(c.Request.Context(), salonID, userID, id)
	})
}

func (h *AppointmentHandler) applyState(
	c *gin.Context,
	exec func(salonID, userID, id uint) (any, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := exec(salonID, userID, uint(id64))
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	professionalID := parseOptionalID(c.Query("professional_id"))
	serviceID := parseOptionalID(c.Query("service_id"))
	dateStr := c.Query("date")

	if professionalID == 0 || serviceID == 0 || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Profissional, serviço e data são obrigatórios.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "failed_to_get_salon", "Erro ao buscar salão.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.avail.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:        salonID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	})
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao calcular horários disponíveis.")
		return
	}

	c.JSON(200, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// QUERY HELPERS
// ======================================================

func parseOptionalID(s string) uint {
	if s == "" {
		return 0
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
