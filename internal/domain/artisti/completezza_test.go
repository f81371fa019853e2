package artisti_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okestra/agibilita-api/internal/domain/artisti"
	"github.com/okestra/agibilita-api/internal/domain/entity"
)

func artistaCompleto() *entity.Artista {
	nascita := time.Date(1985, time.December, 10, 0, 0, 0, 0, time.UTC)
	return &entity.Artista{
		Nome: "Mario", Cognome: "Rossi",
		CodiceFiscale: "RSSMRA85T10A562S",
		DataNascita:   &nascita,
		LuogoNascita:  "Bari",
		Indirizzo:     "Via Roma 1",
		TipoContratto: entity.ContrattoOccasionale,
	}
}

func TestVerificaCompletezza_Completo(t *testing.T) {
	esito := artisti.VerificaCompletezza(artistaCompleto())

	assert.True(t, esito.Completa)
	assert.Equal(t, 100, esito.Percentuale)

	// I facoltativi non compilati compaiono comunque nella lista per il form.
	for _, m := range esito.CampiMancanti {
		assert.False(t, m.Obbligatorio, "campo %s non dovrebbe risultare obbligatorio", m.Campo)
	}
}

func TestVerificaCompletezza_CampiMancanti(t *testing.T) {
	a := artistaCompleto()
	a.CodiceFiscale = ""
	a.Indirizzo = ""

	esito := artisti.VerificaCompletezza(a)

	assert.False(t, esito.Completa)
	assert.Less(t, esito.Percentuale, 100)

	mancanti := map[string]bool{}
	for _, m := range esito.CampiMancanti {
		if m.Obbligatorio {
			mancanti[m.Campo] = true
		}
	}
	assert.True(t, mancanti["codice_fiscale"])
	assert.True(t, mancanti["indirizzo"])
}

func TestVerificaCompletezza_ExtraUE(t *testing.T) {
	// Extra UE: il codice fiscale non è richiesto, ma servono documento
	// estero e nazionalità.
	a := artistaCompleto()
	a.ExtraUE = true
	a.CodiceFiscale = ""

	esito := artisti.VerificaCompletezza(a)
	require.False(t, esito.Completa)

	a.DocumentoEstero = "X1234567"
	a.Nazionalita = "Albania"
	esito = artisti.VerificaCompletezza(a)
	assert.True(t, esito.Completa)
	assert.Equal(t, 100, esito.Percentuale)
}

func TestVerificaCompletezza_CodiceFiscaleErrato(t *testing.T) {
	// Tutti i campi compilati ma CF con checksum errato: non completa.
	a := artistaCompleto()
	a.CodiceFiscale = "RSSMRA85T10A562T"

	esito := artisti.VerificaCompletezza(a)
	assert.False(t, esito.Completa)
	assert.Equal(t, 100, esito.Percentuale, "la percentuale conta solo la compilazione")
}

func TestVerificaCompletezza_Vuoto(t *testing.T) {
	esito := artisti.VerificaCompletezza(&entity.Artista{})
	assert.False(t, esito.Completa)
	assert.Equal(t, 0, esito.Percentuale)
	assert.NotEmpty(t, esito.CampiMancanti)
}

func TestVerificaCompletezza_Pura(t *testing.T) {
	a := artistaCompleto()
	prima := artisti.VerificaCompletezza(a)
	seconda := artisti.VerificaCompletezza(a)
	assert.Equal(t, prima, seconda)
}
