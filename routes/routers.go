package routes

import (
	"net/http"

	"jims/constants"
	"jims/controllers"
	"jims/middleware"
	"jims/services/logger"
	"jims/services/notification"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires every endpoint. All dependencies come in as
// arguments; controllers hold what they need.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {
	router.Use(middleware.SessionMiddleware())
	router.Use(middleware.RequestLogger(logger.NewDefaultLogger(logger.InfoLevel)))
	router.Use(middleware.ErrorHandler())

	authController := controllers.NewAuthController(db)
	employeeController := controllers.NewEmployeeController(db, redisCli)
	attendanceController := controllers.NewAttendanceController(db)
	inventoryController := controllers.NewInventoryController(db, redisCli, cld, notification.NewMelodyService(m))
	salesController := controllers.NewSalesController(db, redisCli)
	categoryController := controllers.NewCategoryController(db)
	gcashController := controllers.NewGCashController(db, redisCli)
	paymayaController := controllers.NewPayMayaController(db, redisCli)
	juanpayController := controllers.NewJuanPayController(db, redisCli)
	payrollController := controllers.NewPayrollController(db, redisCli)
	statsController := controllers.NewStatsController(db)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Service is healthy"})
	})

	api := router.Group("/api/v1")

	api.POST("/auth/login", authController.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		employees := authed.Group("/employees")
		{
			employees.GET("", employeeController.GetEmployees)
			employees.GET("/stats", statsController.GetEmployeeStats)
			employees.GET("/:id", employeeController.GetEmployeeByID)
		}

		attendance := authed.Group("/attendance")
		{
			attendance.GET("", attendanceController.GetAttendance)
			attendance.POST("/checkin", attendanceController.CheckIn)
			attendance.POST("/checkout", attendanceController.CheckOut)
		}

		inventory := authed.Group("/inventory")
		{
			inventory.GET("", inventoryController.GetInventory)
			inventory.GET("/search", inventoryController.SearchInventory)
			inventory.GET("/:id", inventoryController.GetItemByID)
			inventory.POST("", inventoryController.CreateItem)
			inventory.PUT("/:id", inventoryController.UpdateItem)
			inventory.DELETE("/:id", inventoryController.DeleteItem)
		}

		authed.POST("/img/upload", inventoryController.UploadImage)

		sales := authed.Group("/sales")
		{
			sales.GET("", salesController.GetSales)
			sales.GET("/stats", statsController.GetSalesStats)
			sales.GET("/:id", salesController.GetSaleByID)
			sales.POST("", salesController.CreateSale)
			sales.PUT("/:id", salesController.UpdateSale)
			sales.DELETE("/:id", salesController.DeleteSale)
		}

		categories := authed.Group("/categories")
		{
			categories.GET("", categoryController.GetCategories)
			categories.POST("", categoryController.CreateCategory)
			categories.PUT("/:id", categoryController.UpdateCategory)
			categories.DELETE("/:id", categoryController.DeleteCategory)
		}

		gcash := authed.Group("/gcash")
		{
			gcash.GET("", gcashController.GetRecords)
			gcash.POST("", gcashController.CreateRecord)
			gcash.PUT("/:id", gcashController.UpdateRecord)
			gcash.DELETE("/:id", gcashController.DeleteRecord)
		}

		// PayMaya has no delete route
		paymaya := authed.Group("/paymaya")
		{
			paymaya.GET("", paymayaController.GetRecords)
			paymaya.POST("", paymayaController.CreateRecord)
			paymaya.PUT("/:id", paymayaController.UpdateRecord)
		}

		juanpay := authed.Group("/juanpay")
		{
			juanpay.GET("", juanpayController.GetRecords)
			juanpay.POST("", juanpayController.CreateRecord)
			juanpay.PUT("/:id", juanpayController.UpdateRecord)
			juanpay.DELETE("/:id", juanpayController.DeleteRecord)
		}

		payroll := authed.Group("/payroll")
		{
			payroll.GET("", payrollController.GetPayroll)
			payroll.GET("/stats", statsController.GetPayrollStats)
		}
	}

	// Mutating employee and payroll routes are admin only
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(constants.RoleAdmin))
	{
		admin.POST("/employees", employeeController.CreateEmployee)
		admin.PUT("/employees/:id", employeeController.UpdateEmployee)
		admin.DELETE("/employees/:id", employeeController.DeleteEmployee)

		admin.POST("/payroll", payrollController.CreatePayroll)
		admin.DELETE("/payroll/:id", payrollController.DeletePayroll)
	}
}
