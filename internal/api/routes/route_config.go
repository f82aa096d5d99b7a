package routes

import (
	"resto-pos-backend/domain"
	"resto-pos-backend/internal/api/handlers"
	"resto-pos-backend/internal/middleware"
	"resto-pos-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	SaleHandler      handlers.SaleHandler
	PurchaseHandler  handlers.PurchaseHandler
	ExpenseHandler   handlers.ExpenseHandler
	ReportHandler    handlers.ReportHandler
	DashboardHandler handlers.DashboardHandler
	ReceiptHandler   handlers.ReceiptHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Sales()
	c.Purchases()
	c.Expenses()
	c.Reports()
	c.Dashboard()
	c.Receipts()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/forgot-password", c.UserHandler.ForgotPassword)
		user.Post("/reset-password", c.UserHandler.ResetPassword)

		// staff management is admin only
		admin := c.Middleware.AuthMiddleware(c.JWTService, domain.RoleAdmin)
		user.Post("", admin, c.UserHandler.CreateSalesperson)
		user.Get("", admin, c.UserHandler.GetBusinessUsers)
		user.Get("/:id", admin, c.UserHandler.GetUser)
		user.Put("/:id", admin, c.UserHandler.UpdateUser)
		user.Delete("/:id", admin, c.UserHandler.DeleteUser)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Sales() {
	sales := c.App.Group("/api/v1/sales", c.Middleware.AuthMiddleware(c.JWTService))

	sales.Post("", c.SaleHandler.ProcessSale)
	sales.Get("", c.SaleHandler.GetSales)
	sales.Get("/foods", c.SaleHandler.GetFoodsForSale)
}

func (c *Config) Purchases() {
	purchases := c.App.Group("/api/v1/purchases", c.Middleware.AuthMiddleware(c.JWTService))

	purchases.Post("", c.PurchaseHandler.AddPurchase)
	purchases.Get("", c.PurchaseHandler.GetPurchases)
	purchases.Put("/:id", c.PurchaseHandler.UpdatePurchase)
	purchases.Delete("/:id", c.PurchaseHandler.DeletePurchase)
}

func (c *Config) Expenses() {
	expenses := c.App.Group("/api/v1/expenses", c.Middleware.AuthMiddleware(c.JWTService))

	expenses.Post("", c.ExpenseHandler.AddExpense)
	expenses.Get("", c.ExpenseHandler.GetExpenses)
	expenses.Put("/:id", c.ExpenseHandler.UpdateExpense)
	expenses.Delete("/:id", c.ExpenseHandler.DeleteExpense)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))

	reports.Get("/:type", c.ReportHandler.GetReport)
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/v1/dashboard", c.Middleware.AuthMiddleware(c.JWTService))

	dashboard.Get("", c.DashboardHandler.GetStats)
	dashboard.Get("/business-name", c.DashboardHandler.GetBusinessName)
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts", c.Middleware.AuthMiddleware(c.JWTService))

	receipts.Get("", c.ReceiptHandler.GetReceipts)
	receipts.Post("", c.ReceiptHandler.AddReceipt)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
