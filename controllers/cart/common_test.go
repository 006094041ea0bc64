package cartControllers

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	orderControllers "github.com/shopworks/storefront-api/controllers/order"
	"github.com/shopworks/storefront-api/logger"
	"github.com/shopworks/storefront-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

// authAs stands in for the JWT middleware in handler tests.
func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
	}
}

func newCartRouter(t *testing.T, db *gorm.DB, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cart := r.Group("/user/cart")
	cart.Use(authAs(userID))
	{
		cart.GET("", GetCartItems(db))
		cart.POST("", AddCartItem(db))
		cart.PUT("/:id", UpdateCartItem(db))
		cart.DELETE("/:id", DeleteCartItem(db))
		cart.GET("/total_price", CartTotalPrice(db))
		cart.POST("/checkout", CheckoutHandler(db, testLogger(t)))
	}

	orders := r.Group("/orders")
	orders.Use(authAs(userID))
	{
		orders.GET("/:orderID", orderControllers.GetOrderByID(db))
	}

	return r
}

func mustCreateUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return user
}

func mustCreateProduct(t *testing.T, db *gorm.DB, title, price string) models.Product {
	t.Helper()
	product := models.Product{
		Title: title,
		Brand: "Test Brand",
		Price: decimal.RequireFromString(price),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product %q: %v", title, err)
	}
	return product
}

func mustCreateAddress(t *testing.T, db *gorm.DB, userID string) models.Address {
	t.Helper()
	address := models.Address{
		UserID:      userID,
		AddressLine: "1 Test Street",
		City:        "Testville",
		State:       "TS",
		ZipCode:     "12345",
		Country:     "Testland",
	}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("create address: %v", err)
	}
	return address
}

func mustAddCartItem(t *testing.T, db *gorm.DB, userID string, productID uint, quantity int) models.CartItem {
	t.Helper()
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create cart item: %v", err)
	}
	return item
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}
