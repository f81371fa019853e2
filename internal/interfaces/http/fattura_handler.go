package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okestra/agibilita-api/internal/application/dto"
	"github.com/okestra/agibilita-api/internal/application/fatturazione"
)

// FatturaHandler gestisce emissione, consultazione ed export delle fatture.
type FatturaHandler struct {
	emetti *fatturazione.EmettiFatturaUseCase
	export *fatturazione.ExportUseCase
}

// NewFatturaHandler costruisce il handler.
func NewFatturaHandler(emetti *fatturazione.EmettiFatturaUseCase, export *fatturazione.ExportUseCase) *FatturaHandler {
	return &FatturaHandler{emetti: emetti, export: export}
}

// Create godoc
// @Summary      Emetti fattura da agibilità chiuse
// @Tags         fatture
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmettiFatturaRequest  true  "Parametri di emissione"
// @Success      201   {object}  dto.FatturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fatture [post]
func (h *FatturaHandler) Create(c *fiber.Ctx) error {
	var in dto.EmettiFatturaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoNonValido(c)
	}
	out, err := h.emetti.EmettiFattura(c.Context(), in)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Dettaglio fattura con righe
// @Tags         fatture
// @Produce      json
// @Param        id   path  string  true  "ID fattura"
// @Success      200  {object}  dto.FatturaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fatture/{id} [get]
func (h *FatturaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	out, err := h.export.GetByID(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Elenco fatture (filtro ?anno=)
// @Tags         fatture
// @Produce      json
// @Param        anno    query  int  false  "Anno"
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.FatturaResponse
// @Router       /api/fatture [get]
func (h *FatturaHandler) List(c *fiber.Ctx) error {
	out, err := h.export.List(c.QueryInt("anno", 0), pagina(c))
	if err != nil {
		return erroreHTTP(c, err)
	}
	return c.JSON(out)
}

// XML godoc
// @Summary      Scarica il file FatturaPA
// @Tags         fatture
// @Produce      application/xml
// @Param        id  path  string  true  "ID fattura"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fatture/{id}/xml [get]
func (h *FatturaHandler) XML(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	contenuto, nome, err := h.export.XML(id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(contenuto)
}

// PDF godoc
// @Summary      Scarica la copia di cortesia in PDF
// @Tags         fatture
// @Produce      application/pdf
// @Param        id  path  string  true  "ID fattura"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fatture/{id}/pdf [get]
func (h *FatturaHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idMancante(c)
	}
	contenuto, err := h.export.PDF(c.Context(), id)
	if err != nil {
		return erroreHTTP(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(contenuto)
}

// Easyfatt godoc
// @Summary      Esporta le fatture dell'anno nel tracciato Danea Easyfatt
// @Tags         fatture
// @Produce      application/xml
// @Param        anno  query  int  true  "Anno da esportare"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/fatture/easyfatt [get]
func (h *FatturaHandler) Easyfatt(c *fiber.Ctx) error {
	contenuto, err := h.export.Easyfatt(c.QueryInt("anno", 0))
	if err != nil {
		return erroreHTTP(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="easyfatt.xml"`)
	return c.Send(contenuto)
}
