package http

import (
	"github.com/gofiber/fiber/v2"

	appagibilita "github.com/okestra/agibilita-api/internal/application/agibilita"
	"github.com/okestra/agibilita-api/internal/application/dto"
)

// AgibilitaHandler gestisce le richieste HTTP per le pratiche di agibilità.
type AgibilitaHandler struct {
	uc *appagibilita.UseCase
}

// NewAgibilitaHandler costruisce il handler.
func NewAgibilitaHandler(uc *appagibilita.UseCase) *AgibilitaHandler {
	return &AgibilitaHandler{uc: uc}
}

// Create godoc
// @Summary      Apri pratica di agibilità
// @Tags         agibilita
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAgibilitaRequest  true  "Dati pratica"
// @Success      201   {object}  dto.AgibilitaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/agibilita [post]
func (h *AgibilitaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgibilitaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Dettaglio pratica
// @Tags         agibilita
// @Produce      json
// @Param        id   path  string  true  "ID pratica"
// @Success      200  {object}  dto.AgibilitaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agibilita/{id} [get]
func (h *AgibilitaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	if out == nil {
		return nonTrovato(c, "pratica non trovata")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Elenco pratiche (filtro ?stato=)
// @Tags         agibilita
// @Produce      json
// @Param        stato   query  string  false  "Stato pratica"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.AgibilitaResponse
// @Router       /api/agibilita [get]
func (h *AgibilitaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("stato"), pagina(c))
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// Invia godoc
// @Summary      Marca la pratica come trasmessa all'INPS
// @Tags         agibilita
// @Produce      json
// @Param        id   path  string  true  "ID pratica"
// @Success      200  {object}  dto.AgibilitaResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/agibilita/{id}/invia [post]
func (h *AgibilitaHandler) Invia(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.uc.Invia(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// Chiudi godoc
// @Summary      Chiudi la pratica (evento svolto, fatturabile)
// @Tags         agibilita
// @Produce      json
// @Param        id   path  string  true  "ID pratica"
// @Success      200  {object}  dto.AgibilitaResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/agibilita/{id}/chiudi [post]
func (h *AgibilitaHandler) Chiudi(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.uc.Chiudi(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// Compensi godoc
// @Summary      Anteprima dei compensi per artista
// @Tags         agibilita
// @Produce      json
// @Param        id   path  string  true  "ID pratica"
// @Success      200  {object}  dto.CompensiPreviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agibilita/{id}/compensi [get]
func (h *AgibilitaHandler) Compensi(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.uc.AnteprimaCompensi(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}
