package fiscale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okestra/agibilita-api/pkg/fiscale"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vettori di prova verificati a mano con la tabella pari/dispari dell'Agenzia
// delle Entrate:
//
//	RSSMRA85T10A562S  → Mario Rossi, M, 10/12/1985 (somma 122, 122 mod 26 = 18 = S)
//	BNCMRA91D50F205S  → Maria Bianchi, F, 10/04/1991 (giorno 50 ⇒ F, 50-40=10)
//	RSSGNN10A01H501U  → nato 01/01/2010, minorenne alla data di riferimento
//
// L'età viene calcolata rispetto a una data fissa per rendere i test stabili.
// ──────────────────────────────────────────────────────────────────────────────

var oggi = time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

func TestValidaCodiceFiscale_ValidoUomo(t *testing.T) {
	esito := fiscale.ValidaCodiceFiscaleAl("RSSMRA85T10A562S", oggi)

	require.True(t, esito.Valido, "il codice fiscale di prova deve essere valido")
	assert.Empty(t, esito.Motivo)
	assert.Equal(t, "M", esito.Sesso)
	assert.Equal(t, time.Date(1985, time.December, 10, 0, 0, 0, 0, time.UTC), esito.DataNascita)
	assert.Equal(t, 40, esito.Eta, "compleanno non ancora raggiunto nel 2026")
	assert.True(t, esito.Maggiorenne)
}

func TestValidaCodiceFiscale_ValidaDonna(t *testing.T) {
	esito := fiscale.ValidaCodiceFiscaleAl("BNCMRA91D50F205S", oggi)

	require.True(t, esito.Valido)
	assert.Equal(t, "F", esito.Sesso, "giorno > 40 identifica il sesso femminile")
	assert.Equal(t, time.Date(1991, time.April, 10, 0, 0, 0, 0, time.UTC), esito.DataNascita)
	assert.Equal(t, 35, esito.Eta)
}

func TestValidaCodiceFiscale_Minorenne(t *testing.T) {
	esito := fiscale.ValidaCodiceFiscaleAl("RSSGNN10A01H501U", oggi)

	require.True(t, esito.Valido)
	assert.Equal(t, time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), esito.DataNascita,
		"anno 10 deve ricadere nel 2000, non nel 1900")
	assert.Equal(t, 16, esito.Eta)
	assert.False(t, esito.Maggiorenne)
}

func TestValidaCodiceFiscale_MinuscoleESpazi(t *testing.T) {
	// I form inviano spesso input non normalizzato: deve essere accettato.
	esito := fiscale.ValidaCodiceFiscaleAl("  rssmra85t10a562s ", oggi)
	assert.True(t, esito.Valido)
}

func TestValidaCodiceFiscale_Errori(t *testing.T) {
	casi := []struct {
		nome   string
		input  string
		motivo fiscale.Motivo
	}{
		{"vuoto", "", fiscale.MotivoLunghezzaErrata},
		{"troppo corto", "RSSMRA85T10", fiscale.MotivoLunghezzaErrata},
		{"troppo lungo", "RSSMRA85T10A562SX", fiscale.MotivoLunghezzaErrata},
		{"struttura errata", "R5SMRA85T10A562S", fiscale.MotivoFormatoErrato},
		{"carattere di controllo errato", "RSSMRA85T10A562T", fiscale.MotivoChecksumErrato},
		{"cifra mutata", "RSSMRA85T11A562S", fiscale.MotivoChecksumErrato},
	}
	for _, c := range casi {
		t.Run(c.nome, func(t *testing.T) {
			esito := fiscale.ValidaCodiceFiscaleAl(c.input, oggi)
			assert.False(t, esito.Valido)
			assert.Equal(t, c.motivo, esito.Motivo)
		})
	}
}

// Ogni mutazione di un singolo carattere di un codice valido deve invalidarlo
// (proprietà garantita dal carattere di controllo).
func TestValidaCodiceFiscale_MutazioneSingola(t *testing.T) {
	const valido = "RSSMRA85T10A562S"
	for i := 0; i < 15; i++ {
		mutato := []byte(valido)
		if mutato[i] >= '0' && mutato[i] <= '9' {
			mutato[i] = '0' + (mutato[i]-'0'+1)%10
		} else {
			mutato[i] = 'A' + (mutato[i]-'A'+1)%26
		}
		esito := fiscale.ValidaCodiceFiscaleAl(string(mutato), oggi)
		assert.False(t, esito.Valido, "mutazione in posizione %d deve invalidare: %s", i, mutato)
	}
}

func TestCalcolaCodiceFiscale(t *testing.T) {
	casi := []struct {
		nome    string
		dati    fiscale.DatiAnagrafici
		atteso  string
	}{
		{
			nome: "uomo",
			dati: fiscale.DatiAnagrafici{
				Cognome: "Rossi", Nome: "Mario", Sesso: "M",
				DataNascita:     time.Date(1985, time.December, 10, 0, 0, 0, 0, time.UTC),
				CodiceCatastale: "A562",
			},
			atteso: "RSSMRA85T10A562S",
		},
		{
			nome: "donna con giorno +40",
			dati: fiscale.DatiAnagrafici{
				Cognome: "Bianchi", Nome: "Maria", Sesso: "F",
				DataNascita:     time.Date(1991, time.April, 10, 0, 0, 0, 0, time.UTC),
				CodiceCatastale: "F205",
			},
			atteso: "BNCMRA91D50F205S",
		},
	}
	for _, c := range casi {
		t.Run(c.nome, func(t *testing.T) {
			cf, err := fiscale.CalcolaCodiceFiscale(c.dati)
			require.NoError(t, err)
			assert.Equal(t, c.atteso, cf)

			// Il codice calcolato deve sempre superare la validazione.
			assert.True(t, fiscale.ValidaCodiceFiscaleAl(cf, oggi).Valido)
		})
	}
}

func TestCalcolaCodiceFiscale_NomeConQuattroConsonanti(t *testing.T) {
	// Con 4+ consonanti nel nome si prendono la 1ª, la 3ª e la 4ª.
	cf, err := fiscale.CalcolaCodiceFiscale(fiscale.DatiAnagrafici{
		Cognome: "Verdi", Nome: "Gianfranco", Sesso: "M",
		DataNascita:     time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		CodiceCatastale: "H501",
	})
	require.NoError(t, err)
	assert.Equal(t, "GFR", cf[3:6])
}

func TestCalcolaCodiceFiscale_Diacritici(t *testing.T) {
	// Grafie accentate vanno normalizzate prima dell'estrazione delle consonanti.
	cf, err := fiscale.CalcolaCodiceFiscale(fiscale.DatiAnagrafici{
		Cognome: "Pérez", Nome: "José", Sesso: "M",
		DataNascita:     time.Date(1980, time.June, 15, 0, 0, 0, 0, time.UTC),
		CodiceCatastale: "Z131",
	})
	require.NoError(t, err)
	assert.Equal(t, "PRZ", cf[:3])
	assert.Equal(t, "JSO", cf[3:6])
}

func TestCalcolaCodiceFiscale_DatiIncompleti(t *testing.T) {
	_, err := fiscale.CalcolaCodiceFiscale(fiscale.DatiAnagrafici{Cognome: "Rossi"})
	assert.Error(t, err)
}
