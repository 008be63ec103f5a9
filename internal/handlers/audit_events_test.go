package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/middleware"
	"github.com/studiobelle/salon-manager/internal/models"
)

func setupAuditTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Product{},
		&models.AuditLog{},
	))

	return db
}

func auditTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dispatcher := audit.NewDispatcher(audit.New(db))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextSalonID, uint(1))
		c.Set(middleware.ContextUserID, uint(7))
	})

	clientH := NewClientHandler(db, dispatcher)
	productH := NewProductHandler(db, dispatcher)

	r.POST("/me/clients", clientH.Create)
	r.DELETE("/me/clients/:id", clientH.Delete)
	r.PATCH("/me/products/:id/stock", productH.AdjustStock)

	return r
}

func waitForAuditLog(t *testing.T, db *gorm.DB, action, entity string) models.AuditLog {
	t.Helper()

	var found models.AuditLog
	assert.Eventually(t, func() bool {
		err := db.
			Where("action = ? AND entity = ?", action, entity).
			First(&found).Error
		return err == nil
	}, 2*time.Second, 10*time.Millisecond, "audit log %s/%s não registrado", action, entity)

	return found
}

func TestCreateClientDispatchesAuditEvent(t *testing.T) {
	db := setupAuditTestDB(t)
	r := auditTestRouter(db)

	body := `{"name":"Ana Souza","email":"ana@example.com","phone":"11988887777"}`
	req := httptest.NewRequest(http.MethodPost, "/me/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	entry := waitForAuditLog(t, db, "client_created", "client")
	assert.Equal(t, uint(1), entry.SalonID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(7), *entry.UserID)
	require.NotNil(t, entry.EntityID)
	assert.NotZero(t, *entry.EntityID)
}

func TestDeleteClientDispatchesAuditEvent(t *testing.T) {
	db := setupAuditTestDB(t)
	r := auditTestRouter(db)

	client := models.Client{SalonID: 1, Name: "Bia Lima", Status: "active"}
	require.NoError(t, db.Create(&client).Error)

	req := httptest.NewRequest(http.MethodDelete, "/me/clients/1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	entry := waitForAuditLog(t, db, "client_deleted", "client")
	require.NotNil(t, entry.EntityID)
	assert.Equal(t, client.ID, *entry.EntityID)
}

func TestAdjustStockDispatchesAuditEvent(t *testing.T) {
	db := setupAuditTestDB(t)
	r := auditTestRouter(db)

	product := models.Product{SalonID: 1, Name: "Shampoo", StockQuantity: 10, MinStock: 2}
	require.NoError(t, db.Create(&product).Error)

	body := `{"delta":-3}`
	req := httptest.NewRequest(http.MethodPatch, "/me/products/1/stock", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	entry := waitForAuditLog(t, db, "stock_adjusted", "product")
	require.NotNil(t, entry.EntityID)
	assert.Equal(t, product.ID, *entry.EntityID)
}
