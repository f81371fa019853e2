package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okestra/agibilita-api/internal/application/dto"
	appric "github.com/okestra/agibilita-api/internal/application/riconciliazione"
)

// RiconciliazioneHandler gestisce import e abbinamento dei movimenti bancari.
type RiconciliazioneHandler struct {
	uc *appric.UseCase
}

// NewRiconciliazioneHandler costruisce il handler.
func NewRiconciliazioneHandler(uc *appric.UseCase) *RiconciliazioneHandler {
	return &RiconciliazioneHandler{uc: uc}
}

// Importa godoc
// @Summary      Importa un lotto di movimenti da estratto conto
// @Tags         riconciliazione
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportaMovimentiRequest  true  "Movimenti"
// @Success      201   {array}  dto.MovimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/riconciliazione/movimenti [post]
func (h *RiconciliazioneHandler) Importa(c *fiber.Ctx) error {
	var in dto.ImportaMovimentiRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	out, err := h.uc.ImportaMovimenti(in)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Elenco movimenti (filtro ?stato=)
// @Tags         riconciliazione
// @Produce      json
// @Param        stato   query  string  false  "Stato movimento"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.MovimentoResponse
// @Router       /api/riconciliazione/movimenti [get]
func (h *RiconciliazioneHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("stato"), pagina(c))
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// Suggerimenti godoc
// @Summary      Suggerimenti di abbinamento movimento-fattura
// @Tags         riconciliazione
// @Produce      json
// @Success      200  {array}  riconciliazione.Suggerimento
// @Router       /api/riconciliazione/suggerimenti [get]
func (h *RiconciliazioneHandler) Suggerimenti(c *fiber.Ctx) error {
	out, err := h.uc.Suggerimenti()
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// Conferma godoc
// @Summary      Conferma l'abbinamento di un movimento a una fattura
// @Tags         riconciliazione
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID movimento"
// @Param        body  body  dto.ConfermaAbbinamentoRequest  true  "Fattura da abbinare"
// @Success      200   {object}  dto.MovimentoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/riconciliazione/movimenti/{id}/conferma [post]
func (h *RiconciliazioneHandler) Conferma(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	var in dto.ConfermaAbbinamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	out, err := h.uc.ConfermaAbbinamento(c.Context(), id, in.FatturaID)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// Ignora godoc
// @Summary      Marca un movimento come non pertinente
// @Tags         riconciliazione
// @Produce      json
// @Param        id  path  string  true  "ID movimento"
// @Success      200  {object}  dto.MovimentoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/riconciliazione/movimenti/{id}/ignora [post]
func (h *RiconciliazioneHandler) Ignora(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.uc.Ignora(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}
