package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stati di riconciliazione di un movimento bancario.
const (
	MovimentoDaRiconciliare = "DA_RICONCILIARE"
	MovimentoRiconciliato   = "RICONCILIATO"
	MovimentoIgnorato       = "IGNORATO" // movimenti non pertinenti (commissioni, giroconti)
)

// MovimentoBancario rappresenta una riga di estratto conto importata per la
// riconciliazione degli incassi con le fatture emesse.
type MovimentoBancario struct {
	ID          string
	Data        time.Time
	Importo     decimal.Decimal // positivo per gli accrediti
	Descrizione string          // causale così come arriva dalla banca
	Stato       string          // vedi costanti Movimento*
	FatturaID   string          // valorizzato quando riconciliato
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
