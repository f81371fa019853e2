package riconciliazione_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/riconciliazione"
)

func fattureAperte() []riconciliazione.FatturaAperta {
	return []riconciliazione.FatturaAperta{
		{ID: "f1", Numerazione: "12/2026", Totale: decimal.NewFromFloat(353.80),
			Data: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "f2", Numerazione: "13/2026", Totale: decimal.NewFromFloat(1220.00),
			Data: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
	}
}

func movimento(id, causale string, importo float64) entity.MovimentoBancario {
	return entity.MovimentoBancario{
		ID:          id,
		Importo:     decimal.NewFromFloat(importo),
		Descrizione: causale,
		Stato:       entity.MovimentoDaRiconciliare,
	}
}

func TestSuggerisci_ImportoECausale(t *testing.T) {
	mov := movimento("m1", "BONIFICO SALDO FATT. 12/2026 COMUNE DI BARI", 353.80)

	sugg := riconciliazione.SuggerisciAbbinamenti([]entity.MovimentoBancario{mov}, fattureAperte())

	require.Len(t, sugg, 1)
	require.NotEmpty(t, sugg[0].Candidate)
	migliore := sugg[0].Candidate[0]
	assert.Equal(t, "f1", migliore.FatturaID)
	assert.Equal(t, 100, migliore.Confidenza)
	assert.ElementsMatch(t, []string{"importo", "causale"}, migliore.Criteri)
}

func TestSuggerisci_SoloImporto(t *testing.T) {
	mov := movimento("m1", "BONIFICO SEPA SENZA RIFERIMENTI", 1220.00)

	sugg := riconciliazione.SuggerisciAbbinamenti([]entity.MovimentoBancario{mov}, fattureAperte())

	require.Len(t, sugg, 1)
	assert.Equal(t, "f2", sugg[0].Candidate[0].FatturaID)
	assert.Equal(t, 60, sugg[0].Candidate[0].Confidenza)
}

func TestSuggerisci_SoloCausale(t *testing.T) {
	// Incasso parziale: l'importo non coincide ma la causale cita la fattura.
	mov := movimento("m1", "ACCONTO FATTURA 13-2026", 500.00)

	sugg := riconciliazione.SuggerisciAbbinamenti([]entity.MovimentoBancario{mov}, fattureAperte())

	require.Len(t, sugg, 1)
	assert.Equal(t, "f2", sugg[0].Candidate[0].FatturaID)
	assert.Equal(t, 40, sugg[0].Candidate[0].Confidenza)
}

func TestSuggerisci_NumerazioneSimileNonConfusa(t *testing.T) {
	// "112/2026" in causale non deve abbinarsi alla fattura "12/2026".
	mov := movimento("m1", "PAGAMENTO FATT 112/2026", 100.00)

	sugg := riconciliazione.SuggerisciAbbinamenti([]entity.MovimentoBancario{mov}, fattureAperte())
	assert.Empty(t, sugg)
}

func TestSuggerisci_SottoSoglia(t *testing.T) {
	mov := movimento("m1", "COMMISSIONI TRIMESTRALI", 4.50)
	sugg := riconciliazione.SuggerisciAbbinamenti([]entity.MovimentoBancario{mov}, fattureAperte())
	assert.Empty(t, sugg)
}

func TestSuggerisci_IgnoraGiaRiconciliati(t *testing.T) {
	mov := movimento("m1", "SALDO FATT. 12/2026", 353.80)
	mov.Stato = entity.MovimentoRiconciliato

	sugg := riconciliazione.SuggerisciAbbinamenti([]entity.MovimentoBancario{mov}, fattureAperte())
	assert.Empty(t, sugg)
}

func TestSuggerisci_OrdinePerConfidenza(t *testing.T) {
	aperte := append(fattureAperte(), riconciliazione.FatturaAperta{
		ID: "f3", Numerazione: "14/2026", Totale: decimal.NewFromFloat(353.80),
	})
	// Stesso importo di f1 e f3, ma la causale cita la 14/2026.
	mov := movimento("m1", "SALDO 14/2026", 353.80)

	sugg := riconciliazione.SuggerisciAbbinamenti([]entity.MovimentoBancario{mov}, aperte)

	require.Len(t, sugg, 1)
	require.Len(t, sugg[0].Candidate, 2)
	assert.Equal(t, "f3", sugg[0].Candidate[0].FatturaID)
	assert.Equal(t, 100, sugg[0].Candidate[0].Confidenza)
	assert.Equal(t, "f1", sugg[0].Candidate[1].FatturaID)
	assert.Equal(t, 60, sugg[0].Candidate[1].Confidenza)
}
