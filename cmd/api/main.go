package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/afiliaciones-api/docs"
	"github.com/jhoicas/afiliaciones-api/internal/application/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/application/auth"
	"github.com/jhoicas/afiliaciones-api/internal/application/catalog"
	"github.com/jhoicas/afiliaciones-api/internal/application/client"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/application/report"
	"github.com/jhoicas/afiliaciones-api/internal/application/unsubscription"
	"github.com/jhoicas/afiliaciones-api/internal/infrastructure/csvimport"
	infrapdf "github.com/jhoicas/afiliaciones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/afiliaciones-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/afiliaciones-api/internal/interfaces/http"
	"github.com/jhoicas/afiliaciones-api/pkg/config"
	"github.com/jhoicas/afiliaciones-api/pkg/logger"
)

// @title                      Afiliaciones API
// @version                    1.0
// @description                Gestión de afiliaciones mensuales a seguridad social por oficina.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	loc, _ := cfg.App.Location()
	log.Info().
		Str("env", cfg.App.Env).
		Str("tz", loc.String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	clock := ports.NewSystemClock(loc)
	txRunner := postgres.NewTxRunner(pool)
	affiliationRepo := postgres.NewAffiliationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	affiliationUC := affiliation.NewAffiliationUseCase(txRunner, affiliationRepo, userRepo, clock)
	bulkImporter := affiliation.NewBulkImporter(txRunner, userRepo, csvimport.NewReader(), clock, cfg.Import.MaxRows)
	unsubscriptionUC := unsubscription.NewUnsubscriptionUseCase(postgres.NewUnsubscriptionRepository(pool), affiliationRepo, clock)
	clientUC := client.NewClientUseCase(txRunner, clock)
	listsUC := catalog.NewListsUseCase(postgres.NewCatalogRepository(pool))

	// PDF: planilla mensual por oficina
	reportUC := report.NewReportUseCase(
		postgres.NewReportRepository(pool), affiliationRepo, postgres.NewOfficeRepository(pool),
		userRepo, infrapdf.NewMarotoRosterGenerator(), clock,
	)
	authUC := auth.NewAuthUseCase(userRepo, txRunner, clock, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Afiliaciones API",
	}))

	app.Get("/health", httpRouter.HealthHandler(cfg.App.Name, pool))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AffiliationUC:    affiliationUC,
		BulkImporter:     bulkImporter,
		UnsubscriptionUC: unsubscriptionUC,
		ClientUC:         clientUC,
		ListsUC:          listsUC,
		ReportUC:         reportUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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
