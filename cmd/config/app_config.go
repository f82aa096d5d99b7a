package config

import (
	"os"
	"time"

	"resto-pos-backend/internal/api/handlers"
	"resto-pos-backend/internal/api/routes"
	"resto-pos-backend/internal/middleware"
	"resto-pos-backend/internal/utils"
	"resto-pos-backend/pkg/dashboard"
	"resto-pos-backend/pkg/expense"
	"resto-pos-backend/pkg/food"
	"resto-pos-backend/pkg/jwt"
	"resto-pos-backend/pkg/purchase"
	"resto-pos-backend/pkg/receipt"
	"resto-pos-backend/pkg/report"
	"resto-pos-backend/pkg/sale"
	"resto-pos-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Nairobi",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	saleRepository := sale.NewSaleRepository(db)
	purchaseRepository := purchase.NewPurchaseRepository(db)
	expenseRepository := expense.NewExpenseRepository(db)
	reportRepository := report.NewReportRepository(db)
	dashboardRepository := dashboard.NewDashboardRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository)
	saleService := sale.NewSaleService(saleRepository)
	purchaseService := purchase.NewPurchaseService(purchaseRepository)
	expenseService := expense.NewExpenseService(expenseRepository)
	reportService := report.NewReportService(reportRepository)
	dashboardService := dashboard.NewDashboardService(dashboardRepository)
	receiptService := receipt.NewReceiptService(receiptRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	saleHandler := handlers.NewSaleHandler(saleService, validator)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, validator)
	expenseHandler := handlers.NewExpenseHandler(expenseService, validator)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		SaleHandler:      saleHandler,
		PurchaseHandler:  purchaseHandler,
		ExpenseHandler:   expenseHandler,
		ReportHandler:    reportHandler,
		DashboardHandler: dashboardHandler,
		ReceiptHandler:   receiptHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
