// Package compensi implementa il calcolo netto → lordo dei compensi artistici
// con ritenuta d'acconto (servizio di dominio, funzioni pure).
package compensi

import (
	"github.com/shopspring/decimal"

	"github.com/okestra/agibilita-api/internal/domain/entity"
)

// AliquotaRitenutaDefault è la ritenuta d'acconto del 20% prevista per i
// redditi di lavoro autonomo occasionale (art. 25 DPR 600/73).
var AliquotaRitenutaDefault = decimal.NewFromFloat(0.20)

// Input per il calcolo di un singolo compenso.
type Input struct {
	Netto            decimal.Decimal
	TipoContratto    string          // costanti entity.Contratto*
	PartitaIVA       bool            // true se l'artista fattura in proprio
	AliquotaRitenuta decimal.Decimal // zero ⇒ si applica il default del 20%
}

// Compenso è l'esito del calcolo: importi arrotondati a 2 decimali.
type Compenso struct {
	Netto    decimal.Decimal
	Lordo    decimal.Decimal
	Ritenuta decimal.Decimal
}

// Calcola deriva lordo e ritenuta dal netto pattuito.
//
// Artista con partita IVA: fattura in proprio il lordo, nessuna ritenuta,
// quindi lordo == netto. Altrimenti (prestazione occasionale):
//
//	lordo = netto / (1 - aliquota)
//	ritenuta = lordo - netto
//
// L'arrotondamento avviene solo sugli importi in uscita, mai sui valori
// intermedi, per non accumulare errori nelle sommatorie a valle.
func Calcola(in Input) Compenso {
	netto := in.Netto.Round(2)

	// Netto zero: nessuna divisione, tutto a zero per ogni tipo di contratto.
	if in.Netto.IsZero() {
		return Compenso{Netto: netto, Lordo: decimal.Zero.Round(2), Ritenuta: decimal.Zero.Round(2)}
	}

	if in.PartitaIVA || in.TipoContratto == entity.ContrattoPartitaIVA {
		return Compenso{Netto: netto, Lordo: netto, Ritenuta: decimal.Zero.Round(2)}
	}

	aliquota := in.AliquotaRitenuta
	if aliquota.IsZero() {
		aliquota = AliquotaRitenutaDefault
	}

	lordo := in.Netto.Div(decimal.NewFromInt(1).Sub(aliquota))
	ritenuta := lordo.Sub(in.Netto)
	return Compenso{
		Netto:    netto,
		Lordo:    lordo.Round(2),
		Ritenuta: ritenuta.Round(2),
	}
}
