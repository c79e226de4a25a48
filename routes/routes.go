package routes

import (
	"table-tap/config"
	"table-tap/controllers"
	"table-tap/middleware"
	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	kv := services.SelectKVStore(models.RedisClient)
	orderRepo := services.NewMemoryOrderRepository()

	catalog := services.NewCatalogService()
	carts := services.NewCartService()
	favorites := services.NewFavoritesService(kv)
	users := services.NewUserService()
	auth := services.NewAuthService(users)
	finances := services.NewFinanceService()
	orders := services.NewOrderService(orderRepo, carts, finances, config.AppConfig.FetchTimeout)
	inventory := services.NewInventoryService()
	tables := services.NewTableService(nil, config.AppConfig.BaseURL)
	reviews := services.NewReviewService()
	reservations := services.NewReservationService()
	loyalty := services.NewLoyaltyService(orderRepo)
	settings := services.NewSettingsService()

	authCtrl := controllers.NewAuthController(auth)
	menuCtrl := controllers.NewMenuController(catalog)
	cartCtrl := controllers.NewCartController(carts, catalog)
	favoritesCtrl := controllers.NewFavoritesController(favorites, catalog)
	orderCtrl := controllers.NewOrderController(orders, users)
	userCtrl := controllers.NewUserController(users)
	inventoryCtrl := controllers.NewInventoryController(inventory)
	tableCtrl := controllers.NewTableController(tables)
	financeCtrl := controllers.NewFinanceController(finances)
	reviewCtrl := controllers.NewReviewController(reviews, users)
	reservationCtrl := controllers.NewReservationController(reservations, users)
	loyaltyCtrl := controllers.NewLoyaltyController(loyalty)
	settingsCtrl := controllers.NewSettingsController(settings)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", menuCtrl.GetCategories)
	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/:id", menuCtrl.GetMenuItem)
	router.GET("/reviews", reviewCtrl.GetReviews)
	router.GET("/settings", settingsCtrl.GetSettings)

	authGroup := router.Group("/")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.GET("/auth/profile", authCtrl.GetProfile)
		authGroup.PATCH("/auth/profile", authCtrl.UpdateProfile)
		authGroup.POST("/auth/change-password", authCtrl.ChangePassword)

		authGroup.GET("/cart", cartCtrl.GetCart)
		authGroup.POST("/cart/items", cartCtrl.AddItem)
		authGroup.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		authGroup.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		authGroup.DELETE("/cart", cartCtrl.ClearCart)

		authGroup.GET("/favorites", favoritesCtrl.List)
		authGroup.POST("/favorites", favoritesCtrl.Add)
		authGroup.DELETE("/favorites/:id", favoritesCtrl.Remove)

		authGroup.POST("/orders", orderCtrl.Checkout)
		authGroup.GET("/orders", orderCtrl.GetHistory)
		authGroup.GET("/orders/:id", orderCtrl.GetOrder)

		authGroup.POST("/reviews", reviewCtrl.CreateReview)
		authGroup.POST("/reservations", reservationCtrl.CreateReservation)
		authGroup.GET("/reservations", reservationCtrl.GetReservations)
		authGroup.GET("/loyalty", loyaltyCtrl.GetLoyaltyStatus)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.POST("/users", userCtrl.CreateUser)
		admin.PATCH("/users/:id", userCtrl.UpdateUser)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/menu", menuCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", menuCtrl.DeleteMenuItem)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.GET("/inventory", inventoryCtrl.GetInventory)
		admin.GET("/inventory/low-stock", inventoryCtrl.GetLowStock)
		admin.POST("/inventory", inventoryCtrl.CreateInventoryItem)
		admin.PATCH("/inventory/:id", inventoryCtrl.UpdateInventoryItem)
		admin.DELETE("/inventory/:id", inventoryCtrl.DeleteInventoryItem)

		admin.GET("/tables", tableCtrl.GetTables)
		admin.POST("/tables", tableCtrl.CreateTable)
		admin.PATCH("/tables/:id", tableCtrl.UpdateTable)
		admin.DELETE("/tables/:id", tableCtrl.DeleteTable)
		admin.GET("/tables/:id/qrcode", tableCtrl.GetTableQRCode)

		admin.GET("/finances/transactions", financeCtrl.GetTransactions)
		admin.POST("/finances/transactions", financeCtrl.CreateTransaction)
		admin.GET("/finances/summary", financeCtrl.GetSummary)

		admin.GET("/reservations", reservationCtrl.GetAllReservations)
		admin.PATCH("/reservations/:id/status", reservationCtrl.UpdateReservationStatus)

		admin.PATCH("/settings", settingsCtrl.UpdateSettings)
	}
}
