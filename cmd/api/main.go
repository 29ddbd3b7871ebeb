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
	"github.com/jhoicas/portaria-api/internal/application/auth"
	"github.com/jhoicas/portaria-api/internal/application/usecase"
	appvisit "github.com/jhoicas/portaria-api/internal/application/visit"
	infrapdf "github.com/jhoicas/portaria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/portaria-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/portaria-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/portaria-api/internal/interfaces/http"
	"github.com/jhoicas/portaria-api/pkg/config"
	"github.com/jhoicas/portaria-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	visitorRepo := postgres.NewVisitorRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	companionRepo := postgres.NewCompanionRepository(pool)
	badgeRepo := postgres.NewBadgeRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché opcional de visitas activas. Sin Redis la API funciona igual.
	var visitsCache appvisit.ActiveVisitsCache
	if client := infraredis.NewClient(cfg.Redis); client != nil {
		defer client.Close()
		ttl := time.Duration(cfg.Redis.TTLSeconds) * time.Second
		visitsCache = infraredis.NewActiveVisitsCache(client, ttl)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de visitas activas habilitado")
	}

	authUC := auth.NewAuthUseCase(companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.DefaultAdmin{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})

	// Bootstrap idempotente del administrador por defecto.
	created, err := authUC.EnsureDefaultAdmin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap del administrador")
	}
	if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("administrador por defecto creado")
	}

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	visitorUC := usecase.NewVisitorUseCase(visitorRepo, companyRepo, planRepo)
	roomUC := usecase.NewRoomUseCase(roomRepo, companyRepo, planRepo)
	visitUC := appvisit.NewVisitUseCase(visitRepo, companionRepo, badgeRepo, visitorRepo, roomRepo, txRunner, visitsCache)
	badgePDFUC := appvisit.NewBadgePDFUseCase(visitUC, infrapdf.NewMarotoBadgeGenerator())
	reportUC := usecase.NewReportUseCase(reportRepo)
	planUC := usecase.NewPlanUseCase(planRepo)

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
		Title:    "Portaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CompanyUC: companyUC,
		VisitorUC: visitorUC,
		RoomUC:    roomUC,
		VisitUC:   visitUC,
		BadgePDF:  badgePDFUC,
		ReportUC:  reportUC,
		PlanUC:    planUC,
		JWTSecret: cfg.JWT.Secret,
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
