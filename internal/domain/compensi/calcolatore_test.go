package compensi_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/okestra/agibilita-api/internal/domain/compensi"
	"github.com/okestra/agibilita-api/internal/domain/entity"
)

func TestCalcola_OccasionaleRitenutaDefault(t *testing.T) {
	// 100 netti al 20%: lordo 100/0.8 = 125, ritenuta 25.
	c := compensi.Calcola(compensi.Input{
		Netto:         decimal.NewFromInt(100),
		TipoContratto: entity.ContrattoOccasionale,
	})
	assert.Equal(t, "100.00", c.Netto.StringFixed(2))
	assert.Equal(t, "125.00", c.Lordo.StringFixed(2))
	assert.Equal(t, "25.00", c.Ritenuta.StringFixed(2))
}

func TestCalcola_PartitaIVA(t *testing.T) {
	// Chi fattura in proprio incassa il lordo: nessuna ritenuta.
	c := compensi.Calcola(compensi.Input{
		Netto:         decimal.NewFromInt(500),
		TipoContratto: entity.ContrattoPartitaIVA,
	})
	assert.True(t, c.Lordo.Equal(c.Netto))
	assert.True(t, c.Ritenuta.IsZero())
}

func TestCalcola_FlagPartitaIVAPrevale(t *testing.T) {
	// Contratto occasionale ma partita IVA presente in anagrafica: niente ritenuta.
	c := compensi.Calcola(compensi.Input{
		Netto:         decimal.NewFromInt(200),
		TipoContratto: entity.ContrattoOccasionale,
		PartitaIVA:    true,
	})
	assert.Equal(t, "200.00", c.Lordo.StringFixed(2))
	assert.True(t, c.Ritenuta.IsZero())
}

func TestCalcola_AliquotaPersonalizzata(t *testing.T) {
	// Ritenuta al 30% (es. artisti non residenti): 70 netti → 100 lordi.
	c := compensi.Calcola(compensi.Input{
		Netto:            decimal.NewFromInt(70),
		TipoContratto:    entity.ContrattoOccasionale,
		AliquotaRitenuta: decimal.NewFromFloat(0.30),
	})
	assert.Equal(t, "100.00", c.Lordo.StringFixed(2))
	assert.Equal(t, "30.00", c.Ritenuta.StringFixed(2))
}

func TestCalcola_NettoZero(t *testing.T) {
	// Qualsiasi contratto: netto zero non deve produrre divisioni degeneri.
	for _, contratto := range []string{
		entity.ContrattoOccasionale,
		entity.ContrattoPartitaIVA,
		entity.ContrattoCollaborazione,
		entity.ContrattoDipendente,
	} {
		c := compensi.Calcola(compensi.Input{Netto: decimal.Zero, TipoContratto: contratto})
		assert.True(t, c.Netto.IsZero(), contratto)
		assert.True(t, c.Lordo.IsZero(), contratto)
		assert.True(t, c.Ritenuta.IsZero(), contratto)
	}
}

func TestCalcola_ArrotondamentoSoloInUscita(t *testing.T) {
	// 33.33 / 0.8 = 41.6625 → lordo 41.66, ritenuta 8.33 (41.6625-33.33=8.3325).
	c := compensi.Calcola(compensi.Input{
		Netto:         decimal.NewFromFloat(33.33),
		TipoContratto: entity.ContrattoOccasionale,
	})
	assert.Equal(t, "41.66", c.Lordo.StringFixed(2))
	assert.Equal(t, "8.33", c.Ritenuta.StringFixed(2))
}

func TestCalcola_Deterministico(t *testing.T) {
	in := compensi.Input{Netto: decimal.NewFromFloat(123.45), TipoContratto: entity.ContrattoOccasionale}
	prima := compensi.Calcola(in)
	seconda := compensi.Calcola(in)
	assert.True(t, prima.Lordo.Equal(seconda.Lordo))
	assert.True(t, prima.Ritenuta.Equal(seconda.Ritenuta))
}
