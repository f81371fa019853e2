// Package riconciliazione abbina i movimenti bancari importati alle fatture
// emesse ancora da incassare. Produce suggerimenti ordinati per confidenza:
// la conferma dell'abbinamento resta un'azione manuale dell'operatore.
package riconciliazione

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okestra/agibilita-api/internal/domain/entity"
)

// Punteggi dei criteri di abbinamento. Un importo identico pesa più del
// riferimento in causale, che le banche spesso troncano o riscrivono.
const (
	punteggioImporto  = 60
	punteggioCausale  = 40
	sogliaSuggerimento = 40
)

// FatturaAperta è la vista minima di una fattura da incassare.
type FatturaAperta struct {
	ID          string
	Numerazione string // "N/AAAA"
	Totale      decimal.Decimal
	Data        time.Time
}

// Candidata è una fattura proposta per un movimento, con confidenza 0-100.
type Candidata struct {
	FatturaID   string   `json:"fattura_id"`
	Numerazione string   `json:"numerazione"`
	Confidenza  int      `json:"confidenza"`
	Criteri     []string `json:"criteri"` // "importo", "causale"
}

// Suggerimento raccoglie le candidate per un singolo movimento.
type Suggerimento struct {
	MovimentoID string      `json:"movimento_id"`
	Candidate   []Candidata `json:"candidate"`
}

var nonCifre = regexp.MustCompile(`[^0-9/]+`)

// SuggerisciAbbinamenti valuta ogni movimento da riconciliare contro le
// fatture aperte. Funzione pura: l'ordine dei suggerimenti segue l'ordine
// dei movimenti in input, le candidate sono ordinate per confidenza
// decrescente (a parità, per numerazione) sotto la soglia vengono scartate.
func SuggerisciAbbinamenti(movimenti []entity.MovimentoBancario, aperte []FatturaAperta) []Suggerimento {
	var out []Suggerimento
	for _, mov := range movimenti {
		if mov.Stato != entity.MovimentoDaRiconciliare {
			continue
		}
		var candidate []Candidata
		for _, fat := range aperte {
			c := valuta(mov, fat)
			if c.Confidenza >= sogliaSuggerimento {
				candidate = append(candidate, c)
			}
		}
		sort.SliceStable(candidate, func(i, j int) bool {
			if candidate[i].Confidenza != candidate[j].Confidenza {
				return candidate[i].Confidenza > candidate[j].Confidenza
			}
			return candidate[i].Numerazione < candidate[j].Numerazione
		})
		if len(candidate) > 0 {
			out = append(out, Suggerimento{MovimentoID: mov.ID, Candidate: candidate})
		}
	}
	return out
}

// valuta applica i criteri di abbinamento a una coppia movimento-fattura.
func valuta(mov entity.MovimentoBancario, fat FatturaAperta) Candidata {
	c := Candidata{FatturaID: fat.ID, Numerazione: fat.Numerazione}

	if mov.Importo.Round(2).Equal(fat.Totale.Round(2)) {
		c.Confidenza += punteggioImporto
		c.Criteri = append(c.Criteri, "importo")
	}
	if causaleCitaFattura(mov.Descrizione, fat.Numerazione) {
		c.Confidenza += punteggioCausale
		c.Criteri = append(c.Criteri, "causale")
	}
	return c
}

// causaleCitaFattura cerca la numerazione nella causale del bonifico,
// tollerando i separatori che le banche sostituiscono ("12/2026", "12-2026",
// "12 2026").
func causaleCitaFattura(causale, numerazione string) bool {
	if causale == "" || numerazione == "" {
		return false
	}
	normalizzata := nonCifre.ReplaceAllString(strings.NewReplacer("-", "/", " ", "/").Replace(causale), "/")
	// Delimitatori espliciti per non confondere "112/2026" con "12/2026".
	return strings.Contains("/"+normalizzata+"/", "/"+numerazione+"/")
}
