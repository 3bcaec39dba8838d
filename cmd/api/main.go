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

	"github.com/jhoicas/Comandas-api/internal/application/catalog"
	"github.com/jhoicas/Comandas-api/internal/application/inventory"
	"github.com/jhoicas/Comandas-api/internal/application/order"
	appsession "github.com/jhoicas/Comandas-api/internal/application/session"
	"github.com/jhoicas/Comandas-api/internal/application/state"
	"github.com/jhoicas/Comandas-api/internal/domain/repository"
	"github.com/jhoicas/Comandas-api/internal/infrastructure/backend"
	"github.com/jhoicas/Comandas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Comandas-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Comandas-api/internal/interfaces/http"
	"github.com/jhoicas/Comandas-api/pkg/config"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando terminal de comandas")

	ctx := context.Background()

	// Tiers de estado: efímero en memoria, durable según driver.
	ephemeral := storage.NewMemory()
	var durable repository.StateStore
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		durable = postgres.NewStateStore(pool, cfg.App.Name)
	default:
		rdb, err := storage.ConnectRedis(ctx, cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		durable = rdb
	}
	tiers := state.Tiers{Ephemeral: ephemeral, Durable: durable}

	// El cliente toma el token de la sesión en cada petición; la sesión se
	// construye después con el mismo cliente como puerto de red.
	var manager *appsession.Manager
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), func() string {
		if manager == nil {
			return ""
		}
		return manager.Current().Token
	}, log)

	manager = appsession.NewManager(tiers, client, client, client, log)
	manager.RestoreSession(ctx)
	if s := manager.Current(); s.Confirmed {
		log.Info().Str("actor", s.ActorNombre()).Str("rol", manager.Role()).Msg("sesión restaurada")
	}

	cart := order.NewCart(ctx, durable, log)
	lock := &order.TableLock{}
	finalizeUC := order.NewFinalizeUseCase(cart, lock, client, log)
	board := order.NewBoard(client, log)
	catalogUC := catalog.NewUseCase(client)
	registerUC := inventory.NewRegisterUseCase(client, log)

	// Refresco de stock tras registrar un movimiento: la vista relee
	// /api/products, aquí solo se precalienta la consulta.
	refresh := func(ctx context.Context) {
		if _, err := catalogUC.Products(ctx); err != nil {
			log.Debug().Err(err).Msg("precalentar catálogo tras movimiento")
		}
	}

	// Sondeos en segundo plano; se cancelan en el apagado.
	pollCtx, cancelPolls := context.WithCancel(context.Background())
	defer cancelPolls()
	go order.Poller{Interval: cfg.Poll.Pending(), Refresh: board.RefreshPending}.Run(pollCtx)
	go order.Poller{Interval: cfg.Poll.MyOrders(), Refresh: board.RefreshMine}.Run(pollCtx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comandas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Manager:    manager,
		Cart:       cart,
		Lock:       lock,
		Finalize:   finalizeUC,
		Board:      board,
		CatalogUC:  catalogUC,
		RegisterUC: registerUC,
		Dispatcher: client,
		Refresh:    refresh,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando terminal...")
	cancelPolls()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("terminal detenido")
}
