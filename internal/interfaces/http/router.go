package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supervisor-bit/HairBook-New/internal/application/auth"
	"github.com/supervisor-bit/HairBook-New/internal/application/ledger"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
	"github.com/supervisor-bit/HairBook-New/internal/infrastructure/backup"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC  *usecase.MaterialUseCase
	ClientUC    *usecase.ClientUseCase
	OrderUC     *usecase.OrderUseCase
	VisitUC     *usecase.VisitUseCase
	CatalogUC   *usecase.CatalogUseCase
	SettingsUC  *usecase.SettingsUseCase
	HistoryUC   *usecase.HistoryUseCase
	Coordinator *ledger.Coordinator
	AuthUC      *auth.AuthUseCase
	Exporter    *backup.XMLExporter
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/setup", authHandler.Setup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/auth/password", authHandler.ChangePassword)

	// Materiales y su libro
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.Coordinator)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Post("/bulk", materialHandler.BulkImport)
	materials.Get("/low-stock", materialHandler.CheckLowStock)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)
	materials.Get("/:id/movements", materialHandler.ListMovements)
	materials.Post("/:id/movements", materialHandler.RecordMovement)

	materialGroups := protected.Group("/material-groups")
	materialGroups.Post("/", materialHandler.CreateGroup)
	materialGroups.Get("/", materialHandler.ListGroups)

	// Ventas y consumos
	saleHandler := NewSaleHandler(deps.Coordinator, deps.HistoryUC)
	protected.Post("/sales", saleHandler.RecordSale)
	protected.Get("/sales", saleHandler.SalesHistory)
	protected.Post("/usages", saleHandler.RecordUsage)

	// Órdenes de compra
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Coordinator)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Post("/:id/deliver", orderHandler.Deliver)
	orders.Get("/:id/pdf", orderHandler.DownloadPDF)
	orders.Delete("/:id", orderHandler.Delete)

	// Visitas
	visits := protected.Group("/visits")
	visitHandler := NewVisitHandler(deps.VisitUC, deps.Coordinator)
	visits.Post("/", visitHandler.Create)
	visits.Get("/", visitHandler.ListByClient)
	visits.Get("/:id", visitHandler.GetByID)
	visits.Put("/:id", visitHandler.Update)
	visits.Delete("/:id", visitHandler.Delete)
	visits.Post("/:id/close", visitHandler.Close)
	visits.Post("/:id/duplicate", visitHandler.Duplicate)
	visits.Post("/:id/services", visitHandler.AddService)
	visits.Delete("/:id/services/:serviceId", visitHandler.RemoveService)
	visits.Post("/:id/services/:serviceId/materials", visitHandler.AddMaterial)
	visits.Put("/:id/services/:serviceId/materials/:materialId", visitHandler.UpdateMaterial)
	visits.Delete("/:id/services/:serviceId/materials/:materialId", visitHandler.RemoveMaterial)

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Post("/:id/notes", clientHandler.AddNote)
	clients.Get("/:id/notes", clientHandler.ListNotes)
	clients.Delete("/:id/notes/:noteId", clientHandler.DeleteNote)
	clients.Get("/:id/home-products", clientHandler.ListHomeProducts)

	protected.Delete("/home-products/:productId", clientHandler.DeleteHomeProduct)

	clientGroups := protected.Group("/client-groups")
	clientGroups.Post("/", clientHandler.CreateGroup)
	clientGroups.Get("/", clientHandler.ListGroups)
	clientGroups.Put("/:id", clientHandler.RenameGroup)
	clientGroups.Delete("/:id", clientHandler.DeleteGroup)

	// Catálogo de servicios
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	serviceGroups := protected.Group("/service-groups")
	serviceGroups.Get("/", catalogHandler.ListGroups)
	serviceGroups.Post("/", catalogHandler.CreateGroup)
	serviceGroups.Delete("/:id", catalogHandler.DeleteGroup)
	serviceGroups.Post("/:id/services", catalogHandler.CreateService)
	protected.Delete("/services/:id", catalogHandler.DeleteService)

	// Ajustes y respaldo
	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.Exporter)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Save)
	protected.Get("/export", settingsHandler.Export)
}
