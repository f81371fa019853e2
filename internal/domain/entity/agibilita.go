package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stati di un'agibilità.
const (
	AgibilitaBozza     = "BOZZA"     // in compilazione
	AgibilitaInviata   = "INVIATA"   // richiesta trasmessa all'INPS
	AgibilitaChiusa    = "CHIUSA"    // evento svolto, pronta per la fatturazione
	AgibilitaFatturata = "FATTURATA" // righe già emesse in fattura
)

// Agibilita rappresenta la pratica di agibilità INPS per un evento:
// committente, locale, data e artisti coinvolti con i rispettivi compensi.
type Agibilita struct {
	ID            string
	CommittenteID string
	LocaleID      string
	DataEvento    time.Time
	Descrizione   string
	Stato         string // vedi costanti Agibilita*
	FatturaID     string // valorizzato quando lo stato è FATTURATA
	Artisti       []AgibilitaArtista
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AgibilitaArtista è la partecipazione di un artista a un'agibilità con il
// compenso pattuito. Netto è il pattuito; Lordo e Ritenuta sono derivati dal
// calcolo compensi al momento dell'emissione e denormalizzati qui.
type AgibilitaArtista struct {
	ID          string
	AgibilitaID string
	ArtistaID   string
	Netto       decimal.Decimal
	Lordo       decimal.Decimal
	Ritenuta    decimal.Decimal
}
