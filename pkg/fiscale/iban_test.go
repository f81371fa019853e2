package fiscale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okestra/agibilita-api/pkg/fiscale"
)

func TestValidaIBAN_Italiano(t *testing.T) {
	esito := fiscale.ValidaIBAN("IT60X0542811101000000123456")
	require.True(t, esito.Valido)
	assert.Equal(t, "IT", esito.Paese)
}

func TestValidaIBAN_Estero(t *testing.T) {
	// Gli artisti extra UE possono avere conti esteri: il mod-97 è universale.
	esito := fiscale.ValidaIBAN("DE89370400440532013000")
	require.True(t, esito.Valido)
	assert.Equal(t, "DE", esito.Paese)
}

func TestValidaIBAN_ConSpazi(t *testing.T) {
	// Formato "a blocchi" tipico del copia-incolla dall'home banking.
	esito := fiscale.ValidaIBAN("IT60 X054 2811 1010 0000 0123 456")
	assert.True(t, esito.Valido)
}

func TestValidaIBAN_Errori(t *testing.T) {
	casi := []struct {
		nome   string
		input  string
		motivo fiscale.Motivo
	}{
		{"troppo corto", "IT60X05428", fiscale.MotivoTroppoCorto},
		{"vuoto", "", fiscale.MotivoTroppoCorto},
		{"cifre scambiate", "IT60X0542811101000000124356", fiscale.MotivoChecksumErrato},
		{"checksum errato", "IT61X0542811101000000123456", fiscale.MotivoChecksumErrato},
		{"carattere non ammesso", "IT60X05428111010000001234-6", fiscale.MotivoFormatoErrato},
	}
	for _, c := range casi {
		t.Run(c.nome, func(t *testing.T) {
			esito := fiscale.ValidaIBAN(c.input)
			assert.False(t, esito.Valido)
			assert.Equal(t, c.motivo, esito.Motivo)
			assert.Empty(t, esito.Paese)
		})
	}
}
