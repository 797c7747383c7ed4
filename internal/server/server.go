package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/bellecroissant/backoffice/internal/config"
	"github.com/bellecroissant/backoffice/internal/database"
	"github.com/bellecroissant/backoffice/internal/store"
)

type Server struct {
	router   *gin.Engine
	db       *database.DB
	pageSize int

	customers   store.CustomerStore
	categories  store.CategoryStore
	products    store.ProductStore
	ingredients store.IngredientStore
	recipes     store.RecipeStore
	orders      store.OrderStore
	orderItems  store.OrderItemStore
}

// NewServer creates a new server instance
func NewServer(db *database.DB, cfg *config.ServerConfig) *Server {
	router := gin.Default()
	registerValidations()

	server := &Server{
		router:      router,
		db:          db,
		pageSize:    cfg.PageSize,
		customers:   store.NewCustomerStore(db),
		categories:  store.NewCategoryStore(db),
		products:    store.NewProductStore(db),
		ingredients: store.NewIngredientStore(db),
		recipes:     store.NewRecipeStore(db),
		orders:      store.NewOrderStore(db),
		orderItems:  store.NewOrderItemStore(db),
	}

	server.setupRoutes()
	return server
}

// registerValidations adds the custom phone rule to gin's validator
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return store.ValidPhone(fl.Field().String())
	})
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		customers := api.Group("/customers")
		{
			customers.GET("", s.listCustomers)
			customers.POST("", s.createCustomer)
			customers.GET("/loyalty_members", s.listLoyaltyMembers)
			customers.GET("/:id", s.getCustomer)
			customers.PUT("/:id", s.updateCustomer)
			customers.PATCH("/:id", s.updateCustomer)
			customers.DELETE("/:id", s.deleteCustomer)
			customers.GET("/:id/orders", s.customerOrderSummary)
			customers.PUT("/:id/loyalty", s.upsertLoyalty)
			customers.DELETE("/:id/loyalty", s.deleteLoyalty)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", s.listCategories)
			categories.POST("", s.createCategory)
			categories.GET("/:id", s.getCategory)
			categories.PUT("/:id", s.updateCategory)
			categories.PATCH("/:id", s.updateCategory)
			categories.DELETE("/:id", s.deleteCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", s.listProducts)
			products.POST("", s.createProduct)
			products.GET("/:id", s.getProduct)
			products.PUT("/:id", s.updateProduct)
			products.PATCH("/:id", s.updateProduct)
			products.DELETE("/:id", s.deleteProduct)
			products.GET("/:id/ingredients", s.listProductRecipe)
		}

		ingredients := api.Group("/ingredients")
		{
			ingredients.GET("", s.listIngredients)
			ingredients.POST("", s.createIngredient)
			ingredients.GET("/restock_needed", s.listRestockNeeded)
			ingredients.GET("/:id", s.getIngredient)
			ingredients.PUT("/:id", s.updateIngredient)
			ingredients.PATCH("/:id", s.updateIngredient)
			ingredients.DELETE("/:id", s.deleteIngredient)
		}

		recipes := api.Group("/product_ingredients")
		{
			recipes.GET("", s.listRecipeLines)
			recipes.POST("", s.createRecipeLine)
			recipes.GET("/:id", s.getRecipeLine)
			recipes.PUT("/:id", s.updateRecipeLine)
			recipes.PATCH("/:id", s.updateRecipeLine)
			recipes.DELETE("/:id", s.deleteRecipeLine)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", s.listOrders)
			orders.POST("", s.createOrder)
			orders.GET("/:id", s.getOrder)
			orders.PUT("/:id", s.updateOrder)
			orders.PATCH("/:id", s.updateOrder)
			orders.DELETE("/:id", s.deleteOrder)
		}

		orderItems := api.Group("/order_items")
		{
			orderItems.GET("", s.listOrderItems)
			orderItems.POST("", s.createOrderItem)
			orderItems.GET("/:id", s.getOrderItem)
			orderItems.PUT("/:id", s.updateOrderItem)
			orderItems.PATCH("/:id", s.updateOrderItem)
			orderItems.DELETE("/:id", s.deleteOrderItem)
		}
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	// Check database health
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "bakery-backoffice",
		"version": "0.1.0",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
