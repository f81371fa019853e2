package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okestra/agibilita-api/internal/application/anagrafica"
	"github.com/okestra/agibilita-api/internal/application/dto"
)

// LocaleHandler gestisce le richieste HTTP per i locali.
type LocaleHandler struct {
	uc *anagrafica.LocaleUseCase
}

// NewLocaleHandler costruisce il handler.
func NewLocaleHandler(uc *anagrafica.LocaleUseCase) *LocaleHandler {
	return &LocaleHandler{uc: uc}
}

// Create godoc
// @Summary      Inserisci locale
// @Tags         locali
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocaleRequest  true  "Dati locale"
// @Success      201   {object}  dto.LocaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locali [post]
func (h *LocaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocaleRequest
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
// @Summary      Dettaglio locale
// @Tags         locali
// @Produce      json
// @Param        id   path  string  true  "ID locale"
// @Success      200  {object}  dto.LocaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locali/{id} [get]
func (h *LocaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	if out == nil {
		return nonTrovato(c, "locale non trovato")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Elenco locali
// @Tags         locali
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.LocaleResponse
// @Router       /api/locali [get]
func (h *LocaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pagina(c))
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna locale
// @Tags         locali
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID locale"
// @Param        body  body  dto.UpdateLocaleRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.LocaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locali/{id} [put]
func (h *LocaleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	var in dto.UpdateLocaleRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return erroreHTTP(c, err)
	}
	if out == nil {
		return nonTrovato(c, "locale non trovato")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina locale
// @Tags         locali
// @Param        id  path  string  true  "ID locale"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locali/{id} [delete]
func (h *LocaleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return erroreHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
