package fiscale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okestra/agibilita-api/pkg/fiscale"
)

func TestValidaPartitaIVA(t *testing.T) {
	casi := []struct {
		nome   string
		input  string
		valido bool
		motivo fiscale.Motivo
	}{
		// 12345678903: dispari 1+3+5+7+9=25, pari 4+8+3+7+0=22, 47 → (10-7)%10=3
		{"valida", "12345678903", true, ""},
		{"valida con zeri iniziali", "00743110157", true, ""},
		{"vuota è valida (campo facoltativo)", "", true, ""},
		{"cifra di controllo errata", "12345678904", false, fiscale.MotivoChecksumErrato},
		{"troppo corta", "1234567890", false, fiscale.MotivoLunghezzaErrata},
		{"troppo lunga", "123456789031", false, fiscale.MotivoLunghezzaErrata},
		{"non numerica", "1234567890a", false, fiscale.MotivoNonNumerico},
	}
	for _, c := range casi {
		t.Run(c.nome, func(t *testing.T) {
			esito := fiscale.ValidaPartitaIVA(c.input)
			assert.Equal(t, c.valido, esito.Valido)
			assert.Equal(t, c.motivo, esito.Motivo)
		})
	}
}

// Incrementare di 1 (mod 10) la cifra di controllo di una partita IVA valida
// deve sempre produrre un numero non valido.
func TestValidaPartitaIVA_IncrementoCifraControllo(t *testing.T) {
	valide := []string{"12345678903", "00743110157"}
	for _, pi := range valide {
		mutata := pi[:10] + string(byte('0'+(pi[10]-'0'+1)%10))
		assert.False(t, fiscale.ValidaPartitaIVA(mutata).Valido, "mutata: %s", mutata)
	}
}
