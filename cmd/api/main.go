package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Cargas-api/internal/application/auth"
	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/application/category"
	"github.com/jhoicas/Cargas-api/internal/application/usecase"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/backend"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/blob"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/blob/memory"
	blobs3 "github.com/jhoicas/Cargas-api/internal/infrastructure/blob/s3"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/export"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Cargas-api/internal/interfaces/http"
	"github.com/jhoicas/Cargas-api/pkg/config"
	"github.com/jhoicas/Cargas-api/pkg/logger"
)

const draftTTL = 2 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("blob_driver", cfg.Blob.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Postgres y almacenamiento se inicializan en paralelo; el arranque espera ambos
	// como máximo BACKEND_READY_TIMEOUT_SECONDS.
	dbHandle := backend.Start(ctx, "postgres", func(ctx context.Context) (*pgxpool.Pool, error) {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return pool, nil
	})
	blobHandle := backend.Start(ctx, "blob", func(ctx context.Context) (blob.Store, error) {
		if cfg.Blob.Driver == blob.DriverS3 {
			return blobs3.New(ctx, blobs3.Config{
				Region:          cfg.Blob.Region,
				Bucket:          cfg.Blob.Bucket,
				Endpoint:        cfg.Blob.Endpoint,
				AccessKeyID:     cfg.Blob.AccessKeyID,
				SecretAccessKey: cfg.Blob.SecretAccessKey,
				PathStyle:       cfg.Blob.PathStyle,
			})
		}
		return memory.New(), nil
	})

	pool, err := dbHandle.Await(ctx, cfg.Backend.ReadyTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := blobHandle.Await(ctx, cfg.Backend.ReadyTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de objetos")
	}

	userRepo := postgres.NewUserRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	loadRepo := postgres.NewLoadRepository(pool)
	stockRepo := postgres.NewVehicleStockRepository(pool)
	categoryRepo := postgres.NewCategoryConfigRepository(pool)

	categoryEditor := category.NewEditor(categoryRepo, log.Component("categorias"))
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryEditor)

	recorder := metrics.NewRecorder()
	exporter := export.NewService(store, cfg.Export.CSVEncoding)
	registerOpts := []carga.Option{
		carga.WithRecorder(recorder),
		carga.WithLogger(log.Component("cargas")),
	}
	if cfg.Export.Store {
		registerOpts = append(registerOpts, carga.WithExporter(exporter))
	}
	registerLoadUC := carga.NewRegisterLoadUseCase(vehicleRepo, productRepo, loadRepo, stockRepo, registerOpts...)
	loadQueryUC := carga.NewLoadQueryUseCase(loadRepo, stockRepo, vehicleRepo, exporter)
	drafts := carga.NewDraftStore(registerLoadUC, draftTTL)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.Admin.Email != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Nombre)
		if err != nil {
			log.Fatal().Err(err).Msg("crear administrador inicial")
		}
		if created {
			log.Info().Str("email", cfg.Admin.Email).Msg("administrador inicial creado")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF de cargas grandes
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cargas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:  cfg.App.Name,
		AuthUC:       authUC,
		UserUC:       usecase.NewUserUseCase(userRepo),
		VehicleUC:    vehicleUC,
		ProductUC:    productUC,
		RegisterLoad: registerLoadUC,
		LoadQuery:    loadQueryUC,
		Drafts:       drafts,
		Categories:   categoryEditor,
		Files:        store,
		Metrics:      recorder.Handler(),
		Ready:        pool.Ping,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
