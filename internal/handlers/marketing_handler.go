package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/listing"
	"github.com/studiobelle/salon-manager/internal/metrics"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
)

// Campanhas e promoções num handler só: mesmo módulo do dashboard.
type MarketingHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMarketingHandler(db *gorm.DB, audit *audit.Dispatcher) *MarketingHandler {
	return &MarketingHandler{db: db, audit: audit}
}

// --------- Requests / Views ---------

type CreateCampaignRequest struct {
	Name    string  `json:"name" binding:"required"`
	Channel string  `json:"channel" binding:"omitempty,oneof=email sms whatsapp instagram"`
	Budget  float64 `json:"budget"`
}

type UpdateCampaignRequest struct {
	Name        *string  `json:"name,omitempty"`
	Channel     *string  `json:"channel,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Reach       *int     `json:"reach,omitempty"`
	Opens       *int     `json:"opens,omitempty"`
	Clicks      *int     `json:"clicks,omitempty"`
	Conversions *int     `json:"conversions,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
}

// CampaignView acrescenta as taxas derivadas dos contadores brutos.
type CampaignView struct {
	models.Campaign
	OpenRate       float64 `json:"open_rate"`
	ClickRate      float64 `json:"click_rate"`
	ConversionRate float64 `json:"conversion_rate"`
}

func toCampaignView(cp models.Campaign) CampaignView {
	return CampaignView{
		Campaign:       cp,
		OpenRate:       metrics.Rate(cp.Opens, cp.Reach),
		ClickRate:      metrics.Rate(cp.Clicks, cp.Opens),
		ConversionRate: metrics.Rate(cp.Conversions, cp.Clicks),
	}
}

type CreatePromotionRequest struct {
	Name         string     `json:"name" binding:"required"`
	DiscountType string     `json:"discount_type" binding:"required,oneof=percent fixed"`
	DiscountVal  float64    `json:"discount_value" binding:"required,gt=0"`
	UsageLimit   int        `json:"usage_limit"`
	StartsAt     *time.Time `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
}

type UpdatePromotionRequest struct {
	Name        *string    `json:"name,omitempty"`
	DiscountVal *float64   `json:"discount_value,omitempty"`
	UsageLimit  *int       `json:"usage_limit,omitempty"`
	Active      *bool      `json:"active,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

var campaignSorts = map[string]listing.Comparator[CampaignView]{
	"name":        listing.ByString(func(cp CampaignView) string { return cp.Name }),
	"reach":       listing.ByInt(func(cp CampaignView) int { return cp.Reach }),
	"conversions": listing.ByInt(func(cp CampaignView) int { return cp.Conversions }),
	"budget":      listing.ByFloat(func(cp CampaignView) float64 { return cp.Budget }),
}

var promotionSorts = map[string]listing.Comparator[models.Promotion]{
	"name":        listing.ByString(func(p models.Promotion) string { return p.Name }),
	"usage_count": listing.ByInt(func(p models.Promotion) int { return p.UsageCount }),
}

// --------- Campaigns ---------

func (h *MarketingHandler) ListCampaigns(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	q := parseListQuery(c)

	channel := c.Query("channel")

	var all []models.Campaign
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("created_at DESC").
		Find(&all).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_campaigns"})
		return
	}

	views := make([]CampaignView, 0, len(all))
	for _, cp := range all {
		views = append(views, toCampaignView(cp))
	}

	filtered := listing.Filter(views, listing.Criteria[CampaignView]{
		Search: q.Search,
		SearchFields: []func(CampaignView) string{
			func(cp CampaignView) string { return cp.Name },
		},
		Equals: []listing.EqualsFilter[CampaignView]{
			{Value: q.Status, Field: func(cp CampaignView) string { return cp.Status }},
			{Value: channel, Field: func(cp CampaignView) string { return cp.Channel }},
		},
	})

	respondPage(c, filtered, q, campaignSorts)
}

func (h *MarketingHandler) CreateCampaign(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	cp := models.Campaign{
		SalonID: salonID,
		Name:    req.Name,
		Channel: req.Channel,
		Budget:  req.Budget,
		Status:  "draft",
	}

	if err := h.db.Create(&cp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_campaign"})
		return
	}

	dispatchAudit(c, h.audit, "campaign_created", "campaign", cp.ID)

	c.JSON(http.StatusCreated, toCampaignView(cp))
}

func (h *MarketingHandler) UpdateCampaign(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var cp models.Campaign
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&cp).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_campaign"})
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		cp.Name = *req.Name
	}
	if req.Channel != nil {
		cp.Channel = *req.Channel
	}
	if req.Status != nil {
		cp.Status = *req.Status
	}
	if req.Reach != nil {
		cp.Reach = *req.Reach
	}
	if req.Opens != nil {
		cp.Opens = *req.Opens
	}
	if req.Clicks != nil {
		cp.Clicks = *req.Clicks
	}
	if req.Conversions != nil {
		cp.Conversions = *req.Conversions
	}
	if req.Budget != nil {
		cp.Budget = *req.Budget
	}

	if err := h.db.Save(&cp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_campaign"})
		return
	}

	dispatchAudit(c, h.audit, "campaign_updated", "campaign", cp.ID)

	c.JSON(http.StatusOK, toCampaignView(cp))
}

func (h *MarketingHandler) DeleteCampaign(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Campaign{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_campaign"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign_not_found"})
		return
	}

	dispatchAudit(c, h.audit, "campaign_deleted", "campaign", parseOptionalID(id))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Promotions ---------

func (h *MarketingHandler) ListPromotions(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	q := parseListQuery(c)

	activeOnly := c.Query("active_only") == "true"

	var all []models.Promotion
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("created_at DESC").
		Find(&all).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_promotions"})
		return
	}

	filtered := listing.Filter(all, listing.Criteria[models.Promotion]{
		Search: q.Search,
		SearchFields: []func(models.Promotion) string{
			func(p models.Promotion) string { return p.Name },
		},
		Flags: []listing.FlagFilter[models.Promotion]{
			{Enabled: activeOnly, Field: func(p models.Promotion) bool { return p.Active }},
		},
	})

	respondPage(c, filtered, q, promotionSorts)
}

func (h *MarketingHandler) CreatePromotion(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	p := models.Promotion{
		SalonID:      salonID,
		Name:         req.Name,
		DiscountType: req.DiscountType,
		DiscountVal:  req.DiscountVal,
		UsageLimit:   req.UsageLimit,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Active:       true,
	}

	if err := h.db.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_promotion"})
		return
	}

	dispatchAudit(c, h.audit, "promotion_created", "promotion", p.ID)

	c.JSON(http.StatusCreated, p)
}

func (h *MarketingHandler) UpdatePromotion(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var p models.Promotion
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&p).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "promotion_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_promotion"})
		return
	}

	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.DiscountVal != nil {
		p.DiscountVal = *req.DiscountVal
	}
	if req.UsageLimit != nil {
		p.UsageLimit = *req.UsageLimit
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if req.StartsAt != nil {
		p.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		p.EndsAt = req.EndsAt
	}

	if err := h.db.Save(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_promotion"})
		return
	}

	dispatchAudit(c, h.audit, "promotion_updated", "promotion", p.ID)

	c.JSON(http.StatusOK, p)
}

func (h *MarketingHandler) DeletePromotion(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Promotion{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_promotion"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "promotion_not_found"})
		return
	}

	dispatchAudit(c, h.audit, "promotion_deleted", "promotion", parseOptionalID(id))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
