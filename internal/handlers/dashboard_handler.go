package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/cache"
	"github.com/studiobelle/salon-manager/internal/domain/stock"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/metrics"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
)

const dashboardTTL = 60 * time.Second

type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDashboardHandler(db *gorm.DB, cache *cache.Cache) *DashboardHandler {
	return &DashboardHandler{db: db, cache: cache}
}

// DashboardSummary é o snapshot devolvido (e cacheado) por salão/dia.
type DashboardSummary struct {
	Date string `json:"date"`

	AppointmentsToday int     `json:"appointments_today"`
	CompletedToday    int     `json:"completed_today"`
	CancelledToday    int     `json:"cancelled_today"`
	CompletionRate    float64 `json:"completion_rate"`
	CancellationRate  float64 `json:"cancellation_rate"`
	OccupancyRate     float64 `json:"occupancy_rate"`

	MonthRevenue  float64 `json:"month_revenue"`
	MonthExpenses float64 `json:"month_expenses"`
	MonthProfit   float64 `json:"month_profit"`
	ProfitMargin  float64 `json:"profit_margin"`
	AverageTicket float64 `json:"average_ticket"`

	TotalClients  int64 `json:"total_clients"`
	LowStockCount int   `json:"low_stock_count"`
	OutOfStock    int   `json:"out_of_stock_count"`
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	ctx := c.Request.Context()

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "failed_to_get_salon", "Erro ao buscar salão.")
		return
	}

	now := nowInSalon(&salon)
	dayKey := now.Format("2006-01-02")
	cacheKey := fmt.Sprintf("dashboard:%d:%s", salonID, dayKey)

	var cached DashboardSummary
	if hit, err := h.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	summary, err := h.build(salonID, &salon, now)
	if err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Erro ao montar o painel.")
		return
	}

	_ = h.cache.SetJSON(ctx, cacheKey, summary, dashboardTTL)

	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) build(
	salonID uint,
	salon *models.Salon,
	now time.Time,
) (*DashboardSummary, error) {

	loc := now.Location()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	// -------- agendamentos de hoje --------

	var today []models.Appointment
	if err := h.db.
		Where("salon_id = ? AND start_time >= ? AND start_time < ?", salonID, dayStart, dayEnd).
		Find(&today).Error; err != nil {
		return nil, err
	}

	completed := metrics.CountWhere(today, func(ap models.Appointment) bool {
		return ap.Status == "completed"
	})
	cancelled := metrics.CountWhere(today, func(ap models.Appointment) bool {
		return ap.Status == "cancelled" || ap.Status == "no_show"
	})

	// -------- ocupação (minutos agendados / minutos de expediente) --------

	occupancy, err := h.occupancyRate(salonID, int(now.Weekday()), today)
	if err != nil {
		return nil, err
	}

	// -------- finanças do mês --------

	var txs []models.Transaction
	if err := h.db.
		Where("salon_id = ? AND date >= ? AND date < ? AND status = ?",
			salonID, monthStart, monthEnd, "confirmed").
		Find(&txs).Error; err != nil {
		return nil, err
	}

	revenue := metrics.Sum(txs, func(t models.Transaction) float64 {
		if t.Type == "income" {
			return t.Amount
		}
		return 0
	})
	expenses := metrics.Sum(txs, func(t models.Transaction) float64 {
		if t.Type == "expense" {
			return t.Amount
		}
		return 0
	})
	profit := revenue - expenses

	// -------- ticket médio (serviços concluídos no mês) --------

	var monthDone []models.Appointment
	if err := h.db.
		Preload("Service").
		Where("salon_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			salonID, "completed", monthStart, monthEnd).
		Find(&monthDone).Error; err != nil {
		return nil, err
	}

	avgTicket := metrics.Average(monthDone, func(ap models.Appointment) float64 {
		return ap.Service.Price
	})

	// -------- clientes e estoque --------

	var totalClients int64
	if err := h.db.
		Model(&models.Client{}).
		Where("salon_id = ?", salonID).
		Count(&totalClients).Error; err != nil {
		return nil, err
	}

	var products []models.Product
	if err := h.db.
		Where("salon_id = ?", salonID).
		Find(&products).Error; err != nil {
		return nil, err
	}

	lowStock := metrics.CountWhere(products, func(p models.Product) bool {
		return stock.Derive(p.StockQuantity, p.MinStock) == stock.StatusLow
	})
	outOfStock := metrics.CountWhere(products, func(p models.Product) bool {
		return stock.Derive(p.StockQuantity, p.MinStock) == stock.StatusOut
	})

	return &DashboardSummary{
		Date:              now.Format("2006-01-02"),
		AppointmentsToday: metrics.Count(today),
		CompletedToday:    completed,
		CancelledToday:    cancelled,
		CompletionRate:    metrics.Rate(completed, len(today)),
		CancellationRate:  metrics.Rate(cancelled, len(today)),
		OccupancyRate:     occupancy,
		MonthRevenue:      revenue,
		MonthExpenses:     expenses,
		MonthProfit:       profit,
		ProfitMargin:      metrics.RateOf(profit, revenue),
		AverageTicket:     avgTicket,
		TotalClients:      totalClients,
		LowStockCount:     lowStock,
		OutOfStock:        outOfStock,
	}, nil
}

// occupancyRate compara minutos agendados (pendente/confirmado/concluído)
// com os minutos de expediente dos profissionais ativos no dia da semana.
func (h *DashboardHandler) occupancyRate(
	salonID uint,
	weekday int,
	today []models.Appointment,
) (float64, error) {

	var hours []models.WorkingHours
	if err := h.db.
		Joins("JOIN professionals ON professionals.id = working_hours.professional_id").
		Where("professionals.salon_id = ? AND professionals.status = ?", salonID, "active").
		Where("working_hours.weekday = ? AND working_hours.active = ?", weekday, true).
		Find(&hours).Error; err != nil {
		return 0, err
	}

	available := metrics.Sum(hours, func(wh models.WorkingHours) float64 {
		return windowMinutes(wh.StartTime, wh.EndTime) - windowMinutes(wh.LunchStart, wh.LunchEnd)
	})

	booked := metrics.Sum(today, func(ap models.Appointment) float64 {
		switch ap.Status {
		case "pending", "confirmed", "completed":
			return ap.EndTime.Sub(ap.StartTime).Minutes()
		}
		return 0
	})

	return metrics.RateOf(booked, available), nil
}

func windowMinutes(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}

	s, err1 := time.Parse("15:04", start)
	e, err2 := time.Parse("15:04", end)
	if err1 != nil || err2 != nil || !e.After(s) {
		return 0
	}
	return e.Sub(s).Minutes()
}
