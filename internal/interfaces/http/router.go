package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comandas-api/internal/application/catalog"
	"github.com/jhoicas/Comandas-api/internal/application/inventory"
	"github.com/jhoicas/Comandas-api/internal/application/order"
	"github.com/jhoicas/Comandas-api/internal/application/session"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Manager    *session.Manager
	Cart       *order.Cart
	Lock       *order.TableLock
	Finalize   *order.FinalizeUseCase
	Board      *order.Board
	CatalogUC  *catalog.UseCase
	RegisterUC *inventory.RegisterUseCase
	Dispatcher Dispatcher
	Refresh    func(context.Context)
	Log        *logger.Logger
}

// Router registra las rutas de la API local del terminal.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión (público: aquí se entra sin sesión)
	sessionHandler := NewSessionHandler(deps.Manager)
	ses := api.Group("/session")
	ses.Get("/", sessionHandler.Current)
	ses.Get("/modules", sessionHandler.Modules)
	ses.Post("/perfil", sessionHandler.SelectProfile)
	ses.Post("/codigo", sessionHandler.SubmitCode)
	ses.Post("/login", sessionHandler.Login)
	ses.Post("/logout", sessionHandler.Logout)

	// Perfiles: listar es público (pantalla de selección); crear/borrar es de admin
	api.Get("/profiles", sessionHandler.ListProfiles)

	// Rutas protegidas (requieren actor confirmado)
	protected := api.Group("/", RequireSession(deps.Manager))

	protected.Post("/profiles", RequireModule("perfiles", deps.Manager), sessionHandler.AddProfile)
	protected.Delete("/profiles/:id", RequireModule("perfiles", deps.Manager), sessionHandler.DeleteProfile)

	// Catálogo (passthrough)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/products", catalogHandler.Products)
	protected.Get("/tables", catalogHandler.Tables)

	// Comanda y mesa
	cartHandler := NewCartHandler(deps.Cart, deps.Lock)
	comanda := protected.Group("/comanda")
	comanda.Get("/", cartHandler.Get)
	comanda.Delete("/", cartHandler.Clear)
	comanda.Post("/items", cartHandler.AddItem)
	comanda.Put("/items/:id", cartHandler.UpdateQuantity)
	comanda.Post("/items/:id/decrement", cartHandler.Decrement)
	comanda.Delete("/items/:id", cartHandler.RemoveItem)
	comanda.Post("/mesa", cartHandler.SelectTable)

	// Pedidos
	orderHandler := NewOrderHandler(deps.Finalize, deps.Board, deps.Manager, deps.Dispatcher, deps.Log)
	pedidos := protected.Group("/pedidos")
	pedidos.Post("/finalizar", orderHandler.Finalize)
	pedidos.Get("/pendientes", RequireModule("pendientes", deps.Manager), orderHandler.Pending)
	pedidos.Get("/mios", orderHandler.Mine)
	pedidos.Post("/:id/despachar", RequireModule("pendientes", deps.Manager), orderHandler.Dispatch)

	// Inventario (movimientos)
	inventoryHandler := NewInventoryHandler(deps.RegisterUC, deps.Refresh)
	protected.Post("/inventory/movements", RequireModule("inventario", deps.Manager), inventoryHandler.RegisterMovement)
}
