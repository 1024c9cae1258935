package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/api/http/handlers"
	"github.com/spec-kit/facility-console/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Reports      *handlers.ReportsHandler
	Warehouse    *handlers.WarehouseHandler
	Purchases    *handlers.PurchasesHandler
	Dental       *handlers.DentalHandler
	Facilities   *handlers.FacilitiesHandler
	Suppliers    *handlers.SuppliersHandler
	Transactions *handlers.TransactionsHandler
	Staff        *handlers.StaffHandler
	Guard        *session.Guard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Get(session.LoginPath, cfg.Auth.LoginScreen)

	authGroup := app.Group("/auth")
	authGroup.Post("/logout", cfg.Auth.LogoutUnified)
	authGroup.Post("/clear", cfg.Auth.ForceClear)
	authGroup.Get("/session", cfg.Auth.Session)
	authGroup.Post("/:userType/login", cfg.Auth.Login)
	authGroup.Post("/:userType/logout", cfg.Auth.Logout)

	// Every console route re-verifies with the upstream per navigation.
	console := app.Group("/console", cfg.Guard.Handle)

	reports := console.Group("/reports")
	reports.Get("/", cfg.Reports.List)
	reports.Get("/types", cfg.Reports.Types)
	reports.Get("/summary", cfg.Reports.Summary)
	reports.Get("/:id", cfg.Reports.Get)
	reports.Post("/", cfg.Reports.Create)
	reports.Put("/:id", cfg.Reports.Update)
	reports.Delete("/:id", cfg.Reports.Delete)

	warehouse := console.Group("/warehouse")
	warehouse.Get("/items", cfg.Warehouse.ListItems)
	warehouse.Get("/items/:id", cfg.Warehouse.GetItem)
	warehouse.Post("/items", cfg.Warehouse.CreateItem)
	warehouse.Put("/items/:id", cfg.Warehouse.UpdateItem)
	warehouse.Delete("/items/:id", cfg.Warehouse.DeleteItem)
	warehouse.Get("/movements", cfg.Warehouse.ListMovements)
	warehouse.Post("/movements", cfg.Warehouse.CreateMovement)

	purchases := console.Group("/purchases")
	purchases.Get("/", cfg.Purchases.List)
	purchases.Get("/:id", cfg.Purchases.Get)
	purchases.Post("/", cfg.Purchases.Create)
	purchases.Put("/:id", cfg.Purchases.Update)
	purchases.Delete("/:id", cfg.Purchases.Delete)
	purchases.Patch("/:id/status", cfg.Purchases.UpdateStatus)

	dental := console.Group("/dental")
	dental.Get("/contracts", cfg.Dental.ListContracts)
	dental.Get("/contracts/:id", cfg.Dental.GetContract)
	dental.Post("/contracts", cfg.Dental.CreateContract)
	dental.Put("/contracts/:id", cfg.Dental.UpdateContract)
	dental.Delete("/contracts/:id", cfg.Dental.DeleteContract)
	dental.Get("/assets", cfg.Dental.ListAssets)
	dental.Get("/assets/:id", cfg.Dental.GetAsset)
	dental.Post("/assets", cfg.Dental.CreateAsset)
	dental.Put("/assets/:id", cfg.Dental.UpdateAsset)
	dental.Delete("/assets/:id", cfg.Dental.DeleteAsset)

	facilities := console.Group("/facilities")
	facilities.Get("/", cfg.Facilities.List)
	facilities.Get("/:id", cfg.Facilities.Get)
	facilities.Post("/", cfg.Facilities.Create)
	facilities.Put("/:id", cfg.Facilities.Update)
	facilities.Delete("/:id", cfg.Facilities.Delete)

	suppliers := console.Group("/suppliers")
	suppliers.Get("/", cfg.Suppliers.List)
	suppliers.Get("/:id", cfg.Suppliers.Get)
	suppliers.Post("/", cfg.Suppliers.Create)
	suppliers.Put("/:id", cfg.Suppliers.Update)
	suppliers.Delete("/:id", cfg.Suppliers.Delete)

	transactions := console.Group("/transactions")
	transactions.Get("/", cfg.Transactions.List)
	transactions.Get("/:id", cfg.Transactions.Get)
	transactions.Post("/", cfg.Transactions.Create)

	staff := console.Group("/staff")
	staff.Get("/", cfg.Staff.List)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Post("/", cfg.Staff.Create)
	staff.Put("/:id", cfg.Staff.Update)
	staff.Delete("/:id", cfg.Staff.Delete)
}
