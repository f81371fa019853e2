package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/okestra/agibilita-api/internal/application/dto"
	"github.com/okestra/agibilita-api/internal/domain"
	"github.com/okestra/agibilita-api/internal/domain/fatture"
)

// erroreHTTP traduce gli errori di dominio nello status e nel corpo JSON.
// Tutti i handler passano di qui per mantenere uniformi i codici.
func erroreHTTP(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dati non validi"})
	case errors.Is(err, fatture.ErrFatturaNonValida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FATTURA_NON_VALIDA", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "risorsa non trovata"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "risorsa già esistente"})
	case errors.Is(err, domain.ErrAgibilitaChiusa):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "AGIBILITA_FATTURATA", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "stato non compatibile con l'operazione"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operazione non consentita"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func corpoNonValido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo della richiesta non valido"})
}

func idMancante(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obbligatorio"})
}

func nonTrovato(c *fiber.Ctx, messaggio string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: messaggio})
}

func pagina(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	p.DefaultPage()
	return p
}
