package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okestra/agibilita-api/internal/application/dto"
)

func appValidazioni() *fiber.App {
	app := fiber.New()
	h := NewValidazioneHandler()
	g := app.Group("/api/validazioni")
	g.Post("/codice-fiscale", h.CodiceFiscale)
	g.Post("/partita-iva", h.PartitaIVA)
	g.Post("/iban", h.IBAN)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, out any) int {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestValidazioneCodiceFiscale(t *testing.T) {
	app := appValidazioni()

	var out dto.ValidazioneCodiceFiscaleResponse
	status := postJSON(t, app, "/api/validazioni/codice-fiscale",
		dto.ValidazioneRequest{Valore: "RSSMRA85T10A562S"}, &out)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, out.Valido)
	assert.Equal(t, "M", out.Sesso)
	assert.Equal(t, "1985-12-10", out.DataNascita)
	assert.True(t, out.Maggiorenne)
}

func TestValidazioneCodiceFiscale_NonValido(t *testing.T) {
	app := appValidazioni()

	var out dto.ValidazioneCodiceFiscaleResponse
	status := postJSON(t, app, "/api/validazioni/codice-fiscale",
		dto.ValidazioneRequest{Valore: "RSSMRA85T10A562X"}, &out)

	// L'invalidità non è un errore HTTP: sempre 200 con l'esito nel corpo.
	assert.Equal(t, fiber.StatusOK, status)
	assert.False(t, out.Valido)
	assert.Equal(t, "ChecksumMismatch", out.Motivo)
	assert.Empty(t, out.Sesso)
}

func TestValidazionePartitaIVA(t *testing.T) {
	app := appValidazioni()

	var out dto.ValidazioneResponse
	status := postJSON(t, app, "/api/validazioni/partita-iva",
		dto.ValidazioneRequest{Valore: "12345678903"}, &out)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, out.Valido)
}

func TestValidazioneIBAN(t *testing.T) {
	app := appValidazioni()

	var out dto.ValidazioneIBANResponse
	status := postJSON(t, app, "/api/validazioni/iban",
		dto.ValidazioneRequest{Valore: "IT60X0542811101000000123456"}, &out)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, out.Valido)
	assert.Equal(t, "IT", out.Paese)
}

func TestValidazioneIBAN_ChecksumErrato(t *testing.T) {
	app := appValidazioni()

	var out dto.ValidazioneIBANResponse
	status := postJSON(t, app, "/api/validazioni/iban",
		dto.ValidazioneRequest{Valore: "IT60X0542811101000000123457"}, &out)

	assert.Equal(t, fiber.StatusOK, status)
	assert.False(t, out.Valido)
	assert.Equal(t, "ChecksumMismatch", out.Motivo)
	assert.Empty(t, out.Paese)
}
