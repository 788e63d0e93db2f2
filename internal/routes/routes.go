package routes

import (
	"github.com/gin-gonic/gin"

	"autocare/internal/authz"
	"autocare/internal/handlers"
	"autocare/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	leadHandler *handlers.LeadHandler,
	bookingHandler *handlers.BookingHandler,
	customerHandler *handlers.CustomerHandler,
	storeHandler *handlers.StoreHandler,
	taskTypeHandler *handlers.TaskTypeHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// ---- protected
	r.Use(middleware.AuthMiddleware())
	r.POST("/logout", authHandler.Logout)
	r.Use(middleware.ReadOnlyGuard())

	// USERS (admin managed)
	users := r.Group("/users")
	{
		users.POST("/", userHandler.Create)
		users.GET("/", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.DELETE("/:id", userHandler.Delete)
	}

	// LEADS
	leads := r.Group("/leads")
	{
		leads.POST("/", leadHandler.Create)
		leads.GET("/", leadHandler.List)
		leads.GET("/:id", leadHandler.GetByID)
		leads.GET("/views/table", leadHandler.TableView)
		leads.GET("/views/kanban", leadHandler.KanbanView)
		leads.GET("/remarks/:status", leadHandler.RemarkSuggestions)
		leads.POST("/:id/status", leadHandler.UpdateStatus)
		leads.POST("/:id/move", leadHandler.Move)
	}

	// BOOKINGS
	bookings := r.Group("/bookings")
	{
		bookings.POST("/", bookingHandler.Create)
		bookings.GET("/", bookingHandler.List)
		bookings.GET("/slots", bookingHandler.Slots)
		bookings.GET("/options", bookingHandler.Options)
		bookings.GET("/:id", bookingHandler.GetByID)
		bookings.PUT("/:id", bookingHandler.Update)
		bookings.POST("/:id/status", bookingHandler.UpdateStatus)
		bookings.GET("/:id/receipt", bookingHandler.Receipt)
	}

	// CUSTOMERS
	customers := r.Group("/customers")
	{
		customers.POST("/", customerHandler.Create)
		customers.GET("/", customerHandler.List)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PUT("/:id", customerHandler.Update)
		customers.POST("/:id/vehicles", customerHandler.AddVehicle)
		customers.DELETE("/:id/vehicles/:vehicleId", customerHandler.RemoveVehicle)
	}

	// STORES
	stores := r.Group("/stores")
	{
		stores.POST("/", storeHandler.Create)
		stores.GET("/", storeHandler.List)
		stores.GET("/hubs", storeHandler.ListHubs)
		stores.GET("/:id", storeHandler.GetByID)
		stores.PUT("/:id", storeHandler.Update)
		stores.POST("/:id/capacity", storeHandler.SetCapacity)
	}

	// TASK TYPES (manager/admin)
	taskTypes := r.Group("/task-types",
		middleware.RequireRoles(authz.RoleStaff, authz.RoleManager, authz.RoleAdmin),
	)
	{
		taskTypes.POST("/", taskTypeHandler.Create)
		taskTypes.GET("/", taskTypeHandler.List)
		taskTypes.GET("/:id", taskTypeHandler.GetByID)
		taskTypes.PUT("/:id", taskTypeHandler.Update)
		taskTypes.DELETE("/:id", taskTypeHandler.Delete)
	}

	// REPORTS
	reports := r.Group("/reports",
		middleware.RequireRoles(authz.RoleViewer, authz.RoleStaff, authz.RoleManager, authz.RoleAdmin),
	)
	{
		reports.GET("/summary", reportHandler.Summary)
	}

	return r
}
