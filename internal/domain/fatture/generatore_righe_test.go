package fatture_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/fatture"
)

// ──────────────────────────────────────────────────────────────────────────────
// Scenario di riferimento: due agibilità con un artista ciascuna, 100 € netti
// senza partita IVA (⇒ 125 € lordi al 20%), diritti di agenzia 20 €/artista,
// IVA 22%.
//
//	Diritti inclusi:  2 × (125 + 20) = 290.00 imponibile
//	IVA:              290.00 × 22% = 63.80
//	Totale ordinario: 353.80 (con Split Payment il totale resta 290.00)
// ──────────────────────────────────────────────────────────────────────────────

func dueEventi() []fatture.Evento {
	return []fatture.Evento{
		{Descrizione: "Concerto Teatro Petruzzelli", Partecipazioni: []fatture.Partecipazione{
			{NomeArtista: "Mario Rossi", Lordo: decimal.NewFromInt(125)},
		}},
		{Descrizione: "Serata Club 84", Partecipazioni: []fatture.Partecipazione{
			{NomeArtista: "Duo Venti", Lordo: decimal.NewFromInt(125)},
		}},
	}
}

func TestGeneraRighe_DirittiInclusi(t *testing.T) {
	esito := fatture.GeneraRighe(fatture.Parametri{
		Modalita:          entity.RigheDirittiInclusi,
		Eventi:            dueEventi(),
		DirittiPerArtista: decimal.NewFromInt(20),
		AliquotaIVA:       decimal.NewFromInt(22),
	})

	require.Len(t, esito.Righe, 2)
	assert.Equal(t, 1, esito.Righe[0].Numero)
	assert.Equal(t, 2, esito.Righe[1].Numero, "la numerazione avanza sull'intera fattura")
	assert.Equal(t, "Mario Rossi — compenso e gestione pratica", esito.Righe[0].Descrizione)
	assert.Equal(t, "145.00", esito.Righe[0].PrezzoUnitario.StringFixed(2))
	assert.Equal(t, "145.00", esito.Righe[0].Totale.StringFixed(2))

	assert.Equal(t, "290.00", esito.Imponibile.StringFixed(2))
	assert.Equal(t, "63.80", esito.IVA.StringFixed(2))
	assert.Equal(t, "353.80", esito.Totale.StringFixed(2))
}

func TestGeneraRighe_SplitPayment(t *testing.T) {
	// Stesso scenario, committente PA: l'IVA resta esposta ma fuori dal totale.
	esito := fatture.GeneraRighe(fatture.Parametri{
		Modalita:          entity.RigheDirittiInclusi,
		Eventi:            dueEventi(),
		DirittiPerArtista: decimal.NewFromInt(20),
		AliquotaIVA:       decimal.NewFromInt(22),
		SplitPayment:      true,
	})

	assert.Equal(t, "290.00", esito.Imponibile.StringFixed(2))
	assert.Equal(t, "63.80", esito.IVA.StringFixed(2))
	assert.Equal(t, "290.00", esito.Totale.StringFixed(2))
}

func TestGeneraRighe_DirittiSeparati(t *testing.T) {
	esito := fatture.GeneraRighe(fatture.Parametri{
		Modalita:          entity.RigheDirittiSeparati,
		Eventi:            dueEventi(),
		DirittiPerArtista: decimal.NewFromInt(20),
		AliquotaIVA:       decimal.NewFromInt(22),
	})

	// Una riga per artista più la riga diritti in coda.
	require.Len(t, esito.Righe, 3)
	assert.Equal(t, "125.00", esito.Righe[0].Totale.StringFixed(2), "solo il lordo, diritti esclusi")

	diritti := esito.Righe[2]
	assert.Equal(t, 3, diritti.Numero)
	assert.Equal(t, "2", diritti.Quantita.String(), "quantità = numero di artisti")
	assert.Equal(t, "20.00", diritti.PrezzoUnitario.StringFixed(2))
	assert.Equal(t, "40.00", diritti.Totale.StringFixed(2))

	// I totali coincidono con la modalità a diritti inclusi.
	assert.Equal(t, "290.00", esito.Imponibile.StringFixed(2))
	assert.Equal(t, "353.80", esito.Totale.StringFixed(2))
}

func TestGeneraRighe_DirittiSeparatiSenzaDiritti(t *testing.T) {
	// Diritti a zero: la riga finale non va emessa.
	esito := fatture.GeneraRighe(fatture.Parametri{
		Modalita:    entity.RigheDirittiSeparati,
		Eventi:      dueEventi(),
		AliquotaIVA: decimal.NewFromInt(22),
	})
	assert.Len(t, esito.Righe, 2)
}

func TestGeneraRighe_VoceUnica(t *testing.T) {
	esito := fatture.GeneraRighe(fatture.Parametri{
		Modalita:          entity.RigheVoceUnica,
		Eventi:            dueEventi(),
		DirittiPerArtista: decimal.NewFromInt(20),
		AliquotaIVA:       decimal.NewFromInt(22),
	})

	require.Len(t, esito.Righe, 1, "sempre una sola riga con input non vuoto")
	riga := esito.Righe[0]
	assert.Equal(t, fatture.DescrizioneGenericaDefault, riga.Descrizione)
	assert.Equal(t, "1", riga.Quantita.String())
	assert.Equal(t, "290.00", riga.PrezzoUnitario.StringFixed(2))
	assert.Equal(t, "290.00", esito.Imponibile.StringFixed(2))
}

func TestGeneraRighe_VoceUnicaDescrizionePersonalizzata(t *testing.T) {
	esito := fatture.GeneraRighe(fatture.Parametri{
		Modalita:            entity.RigheVoceUnica,
		Eventi:              dueEventi(),
		AliquotaIVA:         decimal.NewFromInt(22),
		DescrizioneGenerica: "Rassegna estiva 2026 — direzione artistica",
	})
	require.Len(t, esito.Righe, 1)
	assert.Equal(t, "Rassegna estiva 2026 — direzione artistica", esito.Righe[0].Descrizione)
}

func TestGeneraRighe_InputVuoto(t *testing.T) {
	// Nessun evento: zero righe e totali a zero, mai un errore. Il blocco
	// dell'emissione spetta al chiamante.
	for _, modalita := range []string{entity.RigheVoceUnica, entity.RigheDirittiInclusi, entity.RigheDirittiSeparati} {
		esito := fatture.GeneraRighe(fatture.Parametri{
			Modalita:          modalita,
			DirittiPerArtista: decimal.NewFromInt(20),
			AliquotaIVA:       decimal.NewFromInt(22),
		})
		assert.Empty(t, esito.Righe, modalita)
		assert.True(t, esito.Imponibile.IsZero(), modalita)
		assert.True(t, esito.IVA.IsZero(), modalita)
		assert.True(t, esito.Totale.IsZero(), modalita)
	}
}

func TestGeneraRighe_NomeDArtePreferito(t *testing.T) {
	// Il nome esposto in riga è quello passato dal chiamante, che preferisce
	// il nome d'arte quando presente (entity.Artista.NomeInFattura).
	a := entity.Artista{Nome: "Mario", Cognome: "Rossi", NomeDArte: "DJ Màd"}
	esito := fatture.GeneraRighe(fatture.Parametri{
		Modalita: entity.RigheDirittiInclusi,
		Eventi: []fatture.Evento{{Partecipazioni: []fatture.Partecipazione{
			{NomeArtista: a.NomeInFattura(), Lordo: decimal.NewFromInt(100)},
		}}},
		AliquotaIVA: decimal.NewFromInt(22),
	})
	require.Len(t, esito.Righe, 1)
	assert.Equal(t, "DJ Màd — compenso e gestione pratica", esito.Righe[0].Descrizione)
}

// Rigenerare con gli stessi input deve riprodurre righe e numerazione
// identiche: il cambio di modalità nel gestionale rigenera tutto e scarta le
// modifiche manuali (comportamento documentato, non un difetto).
func TestGeneraRighe_RigenerazioneIdempotente(t *testing.T) {
	p := fatture.Parametri{
		Modalita:          entity.RigheDirittiSeparati,
		Eventi:            dueEventi(),
		DirittiPerArtista: decimal.NewFromInt(20),
		AliquotaIVA:       decimal.NewFromInt(22),
	}
	prima := fatture.GeneraRighe(p)
	seconda := fatture.GeneraRighe(p)

	require.Equal(t, len(prima.Righe), len(seconda.Righe))
	for i := range prima.Righe {
		assert.Equal(t, prima.Righe[i].Numero, seconda.Righe[i].Numero)
		assert.Equal(t, prima.Righe[i].Descrizione, seconda.Righe[i].Descrizione)
		assert.True(t, prima.Righe[i].Totale.Equal(seconda.Righe[i].Totale))
	}
	assert.True(t, prima.Totale.Equal(seconda.Totale))
}
