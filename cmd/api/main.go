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
	"github.com/google/uuid"

	_ "github.com/jhoicas/smart-distribution/docs"
	"github.com/jhoicas/smart-distribution/internal/application/board"
	"github.com/jhoicas/smart-distribution/internal/application/forms"
	"github.com/jhoicas/smart-distribution/internal/application/session"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/internal/domain/repository"
	infrapdf "github.com/jhoicas/smart-distribution/internal/infrastructure/pdf"
	"github.com/jhoicas/smart-distribution/internal/infrastructure/postgres"
	"github.com/jhoicas/smart-distribution/internal/infrastructure/scheduler"
	"github.com/jhoicas/smart-distribution/internal/infrastructure/storage"
	"github.com/jhoicas/smart-distribution/internal/infrastructure/webhook"
	httpRouter "github.com/jhoicas/smart-distribution/internal/interfaces/http"
	"github.com/jhoicas/smart-distribution/pkg/config"
	"github.com/jhoicas/smart-distribution/pkg/format"
	"github.com/jhoicas/smart-distribution/pkg/logger"
)

// journalCapacity envíos retenidos por el diario en memoria.
const journalCapacity = 200

// @title          Smart Distribution API
// @version        1.0
// @description    API local del tablero de distribución: sesión del dispositivo, vistas por rol con refresco automático y formularios hacia el backend de automatización.
// @BasePath       /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacenamiento durable de la identidad y diario de envíos
	var (
		store   repository.KeyValueStore
		journal repository.SubmissionRepository
	)
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
		store = postgres.NewKVStore(pool)
		journal = postgres.NewSubmissionRepository(pool)
	case config.StorageFile:
		store = storage.NewFileStore(cfg.Storage.Path)
		journal = storage.NewMemoryJournal(journalCapacity)
	default:
		store = storage.NewMemoryStore()
		journal = storage.NewMemoryJournal(journalCapacity)
	}

	formatter, err := format.New(cfg.App.Locale)
	if err != nil {
		log.Fatal().Err(err).Msg("locale")
	}

	secret := cfg.JWT.Secret
	if secret == "" {
		// Sin secreto configurado los tokens solo valen mientras el proceso viva.
		secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío: se usa un secreto efímero")
	}

	sessionUC := session.NewUseCase(store, entity.DefaultRoster(), session.JWTConfig{
		Secret:     secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	if ident, err := sessionUC.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("restaurar sesión")
	} else if ident == nil {
		log.Info().Msg("sin sesión guardada: se requiere login")
	}

	fetcher := webhook.NewClient(cfg.Webhook.BaseURL, cfg.Webhook.Timeout, log)
	sched := scheduler.New(log)
	sched.Start()

	formsUC := forms.NewUseCase(fetcher, journal, nil, log)
	dashboard := board.New(sessionUC, fetcher, sched, log)
	// Los borradores pertenecen a la identidad que los armó.
	sessionUC.OnChange(func(_, _ *entity.Identity) { formsUC.Reset() })

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Smart Distribution API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC: sessionUC,
		FormsUC:   formsUC,
		Board:     dashboard,
		Reports:   infrapdf.NewMarotoReportGenerator(),
		Formatter: formatter,
		Location:  time.Local,
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
	if n := dashboard.UnmountAll(); n > 0 {
		log.Info().Int("views", n).Msg("vistas desmontadas")
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("detener refresco automático")
	}

	log.Info().Msg("aplicación detenida")
}
