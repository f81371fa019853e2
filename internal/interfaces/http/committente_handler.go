package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okestra/agibilita-api/internal/application/anagrafica"
	"github.com/okestra/agibilita-api/internal/application/dto"
)

// CommittenteHandler gestisce le richieste HTTP per i committenti.
type CommittenteHandler struct {
	uc *anagrafica.CommittenteUseCase
}

// NewCommittenteHandler costruisce il handler.
func NewCommittenteHandler(uc *anagrafica.CommittenteUseCase) *CommittenteHandler {
	return &CommittenteHandler{uc: uc}
}

// Create godoc
// @Summary      Inserisci committente
// @Tags         committenti
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCommittenteRequest  true  "Dati committente"
// @Success      201   {object}  dto.CommittenteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/committenti [post]
func (h *CommittenteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommittenteRequest
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
// @Summary      Dettaglio committente
// @Tags         committenti
// @Produce      json
// @Param        id   path  string  true  "ID committente"
// @Success      200  {object}  dto.CommittenteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/committenti/{id} [get]
func (h *CommittenteHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	if out == nil {
		return nonTrovato(c, "committente non trovato")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Elenco committenti
// @Tags         committenti
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.CommittenteResponse
// @Router       /api/committenti [get]
func (h *CommittenteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pagina(c))
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna committente
// @Tags         committenti
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID committente"
// @Param        body  body  dto.UpdateCommittenteRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.CommittenteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/committenti/{id} [put]
func (h *CommittenteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	var in dto.UpdateCommittenteRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return erroreHTTP(c, err)
	}
	if out == nil {
		return nonTrovato(c, "committente non trovato")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina committente
// @Tags         committenti
// @Param        id  path  string  true  "ID committente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/committenti/{id} [delete]
func (h *CommittenteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return erroreHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
