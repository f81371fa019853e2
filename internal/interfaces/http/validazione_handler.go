package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okestra/agibilita-api/internal/application/dto"
	"github.com/okestra/agibilita-api/pkg/fiscale"
)

// ValidazioneHandler espone le validazioni fiscali per i form: gli esiti sono
// sempre 200, l'invalidità è un dato, non un errore HTTP.
type ValidazioneHandler struct{}

// NewValidazioneHandler costruisce il handler.
func NewValidazioneHandler() *ValidazioneHandler {
	return &ValidazioneHandler{}
}

// CodiceFiscale godoc
// @Summary      Valida un codice fiscale e ne deriva i dati anagrafici
// @Tags         validazioni
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidazioneRequest  true  "Valore da validare"
// @Success      200   {object}  dto.ValidazioneCodiceFiscaleResponse
// @Router       /api/validazioni/codice-fiscale [post]
func (h *ValidazioneHandler) CodiceFiscale(c *fiber.Ctx) error {
	var in dto.ValidazioneRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	esito := fiscale.ValidaCodiceFiscale(in.Valore)
	out := dto.ValidazioneCodiceFiscaleResponse{
		Valido: esito.Valido,
		Motivo: string(esito.Motivo),
	}
	if esito.Valido {
		out.Sesso = esito.Sesso
		out.DataNascita = esito.DataNascita.Format("2006-01-02")
		out.Eta = esito.Eta
		out.Maggiorenne = esito.Maggiorenne
	}
	return c.JSON(out)
}

// PartitaIVA godoc
// @Summary      Valida una partita IVA
// @Tags         validazioni
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidazioneRequest  true  "Valore da validare"
// @Success      200   {object}  dto.ValidazioneResponse
// @Router       /api/validazioni/partita-iva [post]
func (h *ValidazioneHandler) PartitaIVA(c *fiber.Ctx) error {
	var in dto.ValidazioneRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	esito := fiscale.ValidaPartitaIVA(in.Valore)
	return c.JSON(dto.ValidazioneResponse{
		Valido: esito.Valido,
		Motivo: string(esito.Motivo),
	})
}

// IBAN godoc
// @Summary      Valida un IBAN
// @Tags         validazioni
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidazioneRequest  true  "Valore da validare"
// @Success      200   {object}  dto.ValidazioneIBANResponse
// @Router       /api/validazioni/iban [post]
func (h *ValidazioneHandler) IBAN(c *fiber.Ctx) error {
	var in dto.ValidazioneRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	esito := fiscale.ValidaIBAN(in.Valore)
	return c.JSON(dto.ValidazioneIBANResponse{
		Valido: esito.Valido,
		Motivo: string(esito.Motivo),
		Paese:  esito.Paese,
	})
}
