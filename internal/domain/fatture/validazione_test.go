package fatture_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/fatture"
)

func fatturaQuadrata() (*entity.Fattura, []entity.FatturaRiga, *entity.Committente) {
	esito := fatture.GeneraRighe(fatture.Parametri{
		Modalita:          entity.RigheDirittiInclusi,
		Eventi:            dueEventi(),
		DirittiPerArtista: decimal.NewFromInt(20),
		AliquotaIVA:       decimal.NewFromInt(22),
	})
	f := &entity.Fattura{
		Numero: 1, Anno: 2026,
		Imponibile:  esito.Imponibile,
		IVA:         esito.IVA,
		Totale:      esito.Totale,
		AliquotaIVA: decimal.NewFromInt(22),
	}
	c := &entity.Committente{RagioneSociale: "Comune di Bari", PartitaIVA: "12345678903"}
	return f, esito.Righe, c
}

func TestValidaFattura_Quadrata(t *testing.T) {
	f, righe, c := fatturaQuadrata()
	assert.NoError(t, fatture.ValidaFattura(f, righe, c))
}

func TestValidaFattura_TotaleManomesso(t *testing.T) {
	f, righe, c := fatturaQuadrata()
	f.Totale = f.Totale.Add(decimal.NewFromFloat(0.01))

	err := fatture.ValidaFattura(f, righe, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, fatture.ErrFatturaNonValida)
}

func TestValidaFattura_SplitPayment(t *testing.T) {
	f, righe, c := fatturaQuadrata()
	f.SplitPayment = true

	// Con split payment il totale deve essere il solo imponibile.
	require.Error(t, fatture.ValidaFattura(f, righe, c))
	f.Totale = f.Imponibile
	assert.NoError(t, fatture.ValidaFattura(f, righe, c))
}

func TestValidaFattura_RigaIncoerente(t *testing.T) {
	f, righe, c := fatturaQuadrata()
	righe[0].Totale = righe[0].Totale.Sub(decimal.NewFromInt(1))

	err := fatture.ValidaFattura(f, righe, c)
	assert.ErrorIs(t, err, fatture.ErrFatturaNonValida)
}

func TestValidaFattura_CommittenteSenzaIdentificativi(t *testing.T) {
	f, righe, _ := fatturaQuadrata()
	err := fatture.ValidaFattura(f, righe, &entity.Committente{RagioneSociale: "Sagra senza dati"})
	assert.Error(t, err)
}

func TestValidaFattura_PartitaIVACommittenteErrata(t *testing.T) {
	f, righe, c := fatturaQuadrata()
	c.PartitaIVA = "12345678904"
	assert.Error(t, fatture.ValidaFattura(f, righe, c))
}

func TestValidaFattura_SenzaRighe(t *testing.T) {
	f, _, c := fatturaQuadrata()
	assert.Error(t, fatture.ValidaFattura(f, nil, c))
}
