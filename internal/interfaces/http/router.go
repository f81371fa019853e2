package http

import (
	"github.com/gofiber/fiber/v2"

	appagibilita "github.com/okestra/agibilita-api/internal/application/agibilita"
	"github.com/okestra/agibilita-api/internal/application/anagrafica"
	"github.com/okestra/agibilita-api/internal/application/fatturazione"
	appric "github.com/okestra/agibilita-api/internal/application/riconciliazione"
)

// RouterDeps dipendenze per il router.
type RouterDeps struct {
	ArtistaUC       *anagrafica.ArtistaUseCase
	LocaleUC        *anagrafica.LocaleUseCase
	CommittenteUC   *anagrafica.CommittenteUseCase
	AgibilitaUC     *appagibilita.UseCase
	EmettiFattura   *fatturazione.EmettiFatturaUseCase
	ExportFattura   *fatturazione.ExportUseCase
	Riconciliazione *appric.UseCase
}

// Router registra le rotte dell'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Validazioni (pure, lato form)
	validazioni := api.Group("/validazioni")
	validazioneHandler := NewValidazioneHandler()
	validazioni.Post("/codice-fiscale", validazioneHandler.CodiceFiscale)
	validazioni.Post("/partita-iva", validazioneHandler.PartitaIVA)
	validazioni.Post("/iban", validazioneHandler.IBAN)

	// Artisti
	artisti := api.Group("/artisti")
	artistaHandler := NewArtistaHandler(deps.ArtistaUC)
	artisti.Post("/", artistaHandler.Create)
	artisti.Get("/", artistaHandler.List)
	artisti.Post("/codice-fiscale", artistaHandler.CalcolaCodiceFiscale)
	artisti.Get("/:id", artistaHandler.GetByID)
	artisti.Put("/:id", artistaHandler.Update)
	artisti.Delete("/:id", artistaHandler.Delete)
	artisti.Get("/:id/completezza", artistaHandler.Completezza)

	// Locali
	locali := api.Group("/locali")
	localeHandler := NewLocaleHandler(deps.LocaleUC)
	locali.Post("/", localeHandler.Create)
	locali.Get("/", localeHandler.List)
	locali.Get("/:id", localeHandler.GetByID)
	locali.Put("/:id", localeHandler.Update)
	locali.Delete("/:id", localeHandler.Delete)

	// Committenti
	committenti := api.Group("/committenti")
	committenteHandler := NewCommittenteHandler(deps.CommittenteUC)
	committenti.Post("/", committenteHandler.Create)
	committenti.Get("/", committenteHandler.List)
	committenti.Get("/:id", committenteHandler.GetByID)
	committenti.Put("/:id", committenteHandler.Update)
	committenti.Delete("/:id", committenteHandler.Delete)

	// Agibilità
	agibilita := api.Group("/agibilita")
	agibilitaHandler := NewAgibilitaHandler(deps.AgibilitaUC)
	agibilita.Post("/", agibilitaHandler.Create)
	agibilita.Get("/", agibilitaHandler.List)
	agibilita.Get("/:id", agibilitaHandler.GetByID)
	agibilita.Post("/:id/invia", agibilitaHandler.Invia)
	agibilita.Post("/:id/chiudi", agibilitaHandler.Chiudi)
	agibilita.Get("/:id/compensi", agibilitaHandler.Compensi)

	// Fatture
	fatture := api.Group("/fatture")
	fatturaHandler := NewFatturaHandler(deps.EmettiFattura, deps.ExportFattura)
	fatture.Post("/", fatturaHandler.Create)
	fatture.Get("/", fatturaHandler.List)
	fatture.Get("/easyfatt", fatturaHandler.Easyfatt)
	fatture.Get("/:id", fatturaHandler.GetByID)
	fatture.Get("/:id/xml", fatturaHandler.XML)
	fatture.Get("/:id/pdf", fatturaHandler.PDF)

	// Riconciliazione bancaria
	riconciliazione := api.Group("/riconciliazione")
	riconciliazioneHandler := NewRiconciliazioneHandler(deps.Riconciliazione)
	riconciliazione.Post("/movimenti", riconciliazioneHandler.Importa)
	riconciliazione.Get("/movimenti", riconciliazioneHandler.List)
	riconciliazione.Get("/suggerimenti", riconciliazioneHandler.Suggerimenti)
	riconciliazione.Post("/movimenti/:id/conferma", riconciliazioneHandler.Conferma)
	riconciliazione.Post("/movimenti/:id/ignora", riconciliazioneHandler.Ignora)
}
