package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okestra/agibilita-api/internal/application/anagrafica"
	"github.com/okestra/agibilita-api/internal/application/dto"
)

// ArtistaHandler gestisce le richieste HTTP per il roster artisti.
type ArtistaHandler struct {
	uc *anagrafica.ArtistaUseCase
}

// NewArtistaHandler costruisce il handler.
func NewArtistaHandler(uc *anagrafica.ArtistaUseCase) *ArtistaHandler {
	return &ArtistaHandler{uc: uc}
}

// Create godoc
// @Summary      Inserisci artista in roster
// @Tags         artisti
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArtistaRequest  true  "Anagrafica artista"
// @Success      201   {object}  dto.ArtistaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/artisti [post]
func (h *ArtistaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArtistaRequest
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
// @Summary      Dettaglio artista
// @Tags         artisti
// @Produce      json
// @Param        id   path  string  true  "ID artista"
// @Success      200  {object}  dto.ArtistaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/artisti/{id} [get]
func (h *ArtistaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	if out == nil {
		return nonTrovato(c, "artista non trovato")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Elenco artisti (filtro testuale con ?q=)
// @Tags         artisti
// @Produce      json
// @Param        q       query  string  false  "Testo di ricerca"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.ArtistaResponse
// @Router       /api/artisti [get]
func (h *ArtistaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"), pagina(c))
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna artista
// @Tags         artisti
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID artista"
// @Param        body  body  dto.UpdateArtistaRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.ArtistaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/artisti/{id} [put]
func (h *ArtistaHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	var in dto.UpdateArtistaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return erroreHTTP(c, err)
	}
	if out == nil {
		return nonTrovato(c, "artista non trovato")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina artista
// @Tags         artisti
// @Param        id  path  string  true  "ID artista"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/artisti/{id} [delete]
func (h *ArtistaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return erroreHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Completezza godoc
// @Summary      Controllo completezza anagrafica per l'agibilità
// @Tags         artisti
// @Produce      json
// @Param        id   path  string  true  "ID artista"
// @Success      200  {object}  artisti.Completezza
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/artisti/{id}/completezza [get]
func (h *ArtistaHandler) Completezza(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.uc.Completezza(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// CalcolaCodiceFiscale godoc
// @Summary      Calcola il codice fiscale dai dati anagrafici
// @Tags         artisti
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalcolaCodiceFiscaleRequest  true  "Dati anagrafici"
// @Success      200   {object}  dto.CalcolaCodiceFiscaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/artisti/codice-fiscale [post]
func (h *ArtistaHandler) CalcolaCodiceFiscale(c *fiber.Ctx) error {
	var in dto.CalcolaCodiceFiscaleRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	out, err := h.uc.CalcolaCodiceFiscale(in)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}
