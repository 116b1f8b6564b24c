package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcalderon/inventario-movil/internal/application/auth"
	"github.com/jcalderon/inventario-movil/internal/application/catalog"
	"github.com/jcalderon/inventario-movil/internal/application/inventory"
	"github.com/jcalderon/inventario-movil/internal/application/proximity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ItemUC        *catalog.ItemUseCase
	LocationUC    *catalog.LocationUseCase
	NearbyUC      *proximity.NearbyUseCase
	ApplyMovement *inventory.ApplyMovementUseCase
	InventoryQ    *inventory.QueryUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Las lecturas son públicas; toda escritura
// pasa por el middleware de auth para quedar atribuida al actor del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Products
	itemHandler := NewItemHandler(deps.ItemUC)
	products := api.Group("/products")
	products.Post("/", protected, itemHandler.Create)
	products.Get("/", itemHandler.List)

	// Locations (registro, tracking y cercanía)
	locationHandler := NewLocationHandler(deps.LocationUC, deps.NearbyUC)
	locations := api.Group("/locations")
	locations.Post("/", protected, locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/near", locationHandler.Near)
	locations.Put("/:locationId/position", protected, locationHandler.UpdatePosition)

	// Inventory (libro de movimientos + lecturas)
	inventoryHandler := NewInventoryHandler(deps.ApplyMovement, deps.InventoryQ)
	invGroup := api.Group("/inventory")
	invGroup.Post("/movements", protected, inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/:id", inventoryHandler.GetMovement)
	invGroup.Get("/stock", inventoryHandler.ListStock)
}
