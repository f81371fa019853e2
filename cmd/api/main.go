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

	appagibilita "github.com/okestra/agibilita-api/internal/application/agibilita"
	"github.com/okestra/agibilita-api/internal/application/anagrafica"
	"github.com/okestra/agibilita-api/internal/application/fatturazione"
	appric "github.com/okestra/agibilita-api/internal/application/riconciliazione"
	infrapdf "github.com/okestra/agibilita-api/internal/infrastructure/pdf"
	"github.com/okestra/agibilita-api/internal/infrastructure/postgres"
	infrasdi "github.com/okestra/agibilita-api/internal/infrastructure/sdi"
	httpRouter "github.com/okestra/agibilita-api/internal/interfaces/http"
	"github.com/okestra/agibilita-api/pkg/config"
	"github.com/okestra/agibilita-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("caricamento configurazione: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("avvio applicazione")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connessione a PostgreSQL")
	}
	defer pool.Close()

	artistaRepo := postgres.NewArtistaRepository(pool)
	localeRepo := postgres.NewLocaleRepository(pool)
	committenteRepo := postgres.NewCommittenteRepository(pool)
	agibilitaRepo := postgres.NewAgibilitaRepository(pool)
	fatturaRepo := postgres.NewFatturaRepository(pool)
	movimentoRepo := postgres.NewMovimentoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	artistaUC := anagrafica.NewArtistaUseCase(artistaRepo)
	localeUC := anagrafica.NewLocaleUseCase(localeRepo)
	committenteUC := anagrafica.NewCommittenteUseCase(committenteRepo)
	agibilitaUC := appagibilita.NewUseCase(agibilitaRepo, artistaRepo, localeRepo, committenteRepo)

	xmlBuilder := infrasdi.NewFatturaPABuilder()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	easyfattExporter := infrasdi.NewEasyfattExporter()

	emettiFatturaUC := fatturazione.NewEmettiFatturaUseCase(
		txRunner, committenteRepo, agibilitaRepo, artistaRepo, fatturaRepo,
		xmlBuilder, cfg.Agenzia, cfg.SDI,
	)
	exportFatturaUC := fatturazione.NewExportUseCase(
		fatturaRepo, committenteRepo, pdfGenerator, easyfattExporter, cfg.Agenzia,
	)
	riconciliazioneUC := appric.NewUseCase(txRunner, movimentoRepo, fatturaRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in locale: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Agibilità API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ArtistaUC:       artistaUC,
		LocaleUC:        localeUC,
		CommittenteUC:   committenteUC,
		AgibilitaUC:     agibilitaUC,
		EmettiFattura:   emettiFatturaUC,
		ExportFattura:   exportFatturaUC,
		Riconciliazione: riconciliazioneUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP terminato")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("segnale di arresto ricevuto, chiusura del server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arresto del server")
	}

	log.Info().Msg("applicazione fermata")
}
