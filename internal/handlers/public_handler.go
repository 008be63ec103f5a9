package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/studiobelle/salon-manager/internal/domain/appointment"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/httpresp"
	"github.com/studiobelle/salon-manager/internal/models"
	ucAppointment "github.com/studiobelle/salon-manager/internal/usecase/appointment"
)

// Página pública de agendamento: resolvida por slug, sem autenticação.
// Só expõe o necessário para o cliente final marcar horário.
type PublicHandler struct {
	db     *gorm.DB
	create *ucAppointment.CreateAppointment
	avail  *ucAppointment.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	create *ucAppointment.CreateAppointment,
	avail *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:     db,
		create: create,
		avail:  avail,
	}
}

// --------- Views ---------

type PublicSalonView struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

type PublicServiceView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type PublicProfessionalView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Specialties string   `json:"specialties"`
	Rating      *float64 `json:"rating"`
}

type PublicBookingRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ClientEmail    string `json:"client_email"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

// --------- Handlers ---------

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_salon", "Erro ao buscar salão.")
		return nil, false
	}

	return &salon, true
}

func (h *PublicHandler) GetSalon(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, PublicSalonView{
		Name:     salon.Name,
		Slug:     salon.Slug,
		Phone:    salon.Phone,
		Address:  salon.Address,
		Timezone: salon.Timezone,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ? AND active = ?", salon.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	views := make([]PublicServiceView, 0, len(services))
	for _, s := range services {
		views = append(views, PublicServiceView{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			DurationMin: s.DurationMin,
			Price:       s.Price,
			Category:    s.Category,
		})
	}

	httpresp.List(c, views)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var pros []models.Professional
	if err := h.db.
		Where("salon_id = ? AND status = ?", salon.ID, "active").
		Order("name ASC").
		Find(&pros).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	views := make([]PublicProfessionalView, 0, len(pros))
	for _, p := range pros {
		views = append(views, PublicProfessionalView{
			ID:          p.ID,
			Name:        p.Name,
			Specialties: p.Specialties,
			Rating:      p.Rating,
		})
	}

	httpresp.List(c, views)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	professionalID := parseOptionalID(c.Query("professional_id"))
	serviceID := parseOptionalID(c.Query("service_id"))
	dateStr := c.Query("date")

	if professionalID == 0 || serviceID == 0 || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Profissional, serviço e data são obrigatórios.")
		return
	}

	date, err := parseDateInSalon(salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.avail.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:        salon.ID,
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

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

func (h *PublicHandler) Book(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// ActorID nil: agendamento veio do próprio cliente
	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		SalonID:        salon.ID,
		ProfessionalID: req.ProfessionalID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
		ActorID:        nil,
	})
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference_code": ap.ReferenceCode,
		"start_time":     ap.StartTime,
		"end_time":       ap.EndTime,
		"status":         ap.Status,
	})
}
