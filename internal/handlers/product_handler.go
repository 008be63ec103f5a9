package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/domain/stock"
	"github.com/studiobelle/salon-manager/internal/listing"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
)

type ProductHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProductHandler(db *gorm.DB, audit *audit.Dispatcher) *ProductHandler {
	return &ProductHandler{db: db, audit: audit}
}

// --------- Requests / Views ---------

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	Supplier      string  `json:"supplier"`
	StockQuantity int     `json:"stock_quantity"`
	MinStock      int     `json:"min_stock"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Brand         *string  `json:"brand,omitempty"`
	Supplier      *string  `json:"supplier,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty"`
	MinStock      *int     `json:"min_stock,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Cost          *float64 `json:"cost,omitempty"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductView decora o produto com o status derivado do estoque.
// O status nunca é gravado: recalculado a cada leitura.
type ProductView struct {
	models.Product
	Status stock.Status `json:"status"`
}

func toView(p models.Product) ProductView {
	return ProductView{
		Product: p,
		Status:  stock.Derive(p.StockQuantity, p.MinStock),
	}
}

var productSorts = map[string]listing.Comparator[ProductView]{
	"name":           listing.ByString(func(p ProductView) string { return p.Name }),
	"brand":          listing.ByString(func(p ProductView) string { return p.Brand }),
	"price":          listing.ByFloat(func(p ProductView) float64 { return p.Price }),
	"stock_quantity": listing.ByInt(func(p ProductView) int { return p.StockQuantity }),
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	q := parseListQuery(c)

	var all []models.Product
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&all).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_products"})
		return
	}

	views := make([]ProductView, 0, len(all))
	for _, p := range all {
		views = append(views, toView(p))
	}

	filtered := listing.Filter(views, listing.Criteria[ProductView]{
		Search: q.Search,
		SearchFields: []func(ProductView) string{
			func(p ProductView) string { return p.Name },
			func(p ProductView) string { return p.Brand },
			func(p ProductView) string { return p.Supplier },
		},
		Equals: []listing.EqualsFilter[ProductView]{
			{Value: q.Category, Field: func(p ProductView) string { return p.Category }},
			// filtro por status usa o valor derivado, não um campo gravado
			{Value: q.Status, Field: func(p ProductView) string { return string(p.Status) }},
		},
	})

	respondPage(c, filtered, q, productSorts)
}

func (h *ProductHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	product := models.Product{
		SalonID:       salonID,
		Name:          req.Name,
		Category:      strings.ToLower(req.Category),
		Brand:         req.Brand,
		Supplier:      req.Supplier,
		StockQuantity: req.StockQuantity,
		MinStock:      req.MinStock,
		Price:         req.Price,
		Cost:          req.Cost,
	}

	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_product"})
		return
	}

	dispatchAudit(c, h.audit, "product_created", "product", product.ID)

	c.JSON(http.StatusCreated, toView(product))
}

func (h *ProductHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_product"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = strings.ToLower(*req.Category)
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Supplier != nil {
		product.Supplier = *req.Supplier
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}

	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_product"})
		return
	}

	dispatchAudit(c, h.audit, "product_updated", "product", product.ID)

	c.JSON(http.StatusOK, toView(product))
}

// AdjustStock soma delta (positivo ou negativo) à quantidade.
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_product"})
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	newQty := product.StockQuantity + req.Delta
	if newQty < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient_stock"})
		return
	}

	product.StockQuantity = newQty
	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_product"})
		return
	}

	dispatchAudit(c, h.audit, "stock_adjusted", "product", product.ID)

	c.JSON(http.StatusOK, toView(product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Product{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_product"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	dispatchAudit(c, h.audit, "product_deleted", "product", parseOptionalID(id))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
