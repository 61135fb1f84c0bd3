package http

import (
	"context"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/Cargas-api/internal/application/auth"
	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/application/usecase"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/blob"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName  string
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	VehicleUC    *usecase.VehicleUseCase
	ProductUC    *usecase.ProductUseCase
	RegisterLoad LoadRegistrar
	LoadQuery    LoadQuerier
	Drafts       *carga.DraftStore
	Categories   CategoryEditor
	Files        blob.Store
	Metrics      nethttp.Handler // nil: sin /metrics
	Ready        func(ctx context.Context) error
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Ready != nil {
			if err := deps.Ready(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": deps.ServiceName, "error": err.Error()})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/users", adminOnly, authHandler.CreateUser)
	if deps.UserUC != nil {
		protected.Get("/users/me", NewUserHandler(deps.UserUC).Me)
	}

	loadHandler := NewLoadHandler(deps.RegisterLoad, deps.LoadQuery)

	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", adminOnly, vehicleHandler.Delete)
	vehicles.Get("/:id/stock", loadHandler.VehicleStock)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Borradores antes de /loads/:id para que "drafts" no se tome como ID.
	loads := protected.Group("/loads")
	draftHandler := NewDraftHandler(deps.Drafts)
	loads.Post("/drafts", draftHandler.Create)
	loads.Get("/drafts/:id", draftHandler.Get)
	loads.Post("/drafts/:id/events", draftHandler.Event)
	loads.Delete("/drafts/:id", draftHandler.Delete)
	loads.Post("/", loadHandler.Register)
	loads.Get("/", loadHandler.List)
	loads.Get("/:id", loadHandler.GetByID)
	loads.Get("/:id/export", loadHandler.Export)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Categories)
	categories.Get("/", categoryHandler.Get)
	categories.Post("/", adminOnly, categoryHandler.AddCategory)
	categories.Delete("/:rubro", adminOnly, categoryHandler.RemoveCategory)
	categories.Post("/:rubro/segments", adminOnly, categoryHandler.AddSubcategory)
	categories.Delete("/:rubro/segments/:segmento", adminOnly, categoryHandler.RemoveSubcategory)

	if deps.Files != nil {
		files := protected.Group("/files")
		fileHandler := NewFileHandler(deps.Files)
		files.Get("/", fileHandler.List)
		files.Get("/content", fileHandler.Content)
	}
}
