package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Modalità di generazione delle righe di fattura.
const (
	RigheVoceUnica       = "VOCE_UNICA"                 // una sola riga generica
	RigheDirittiInclusi  = "DETTAGLIO_DIRITTI_INCLUSI"  // una riga per artista, diritti inclusi
	RigheDirittiSeparati = "DETTAGLIO_DIRITTI_SEPARATI" // righe artista + riga diritti finale
)

// Stati di trasmissione verso il Sistema di Interscambio (SDI).
const (
	SDIStatoBozza      = "BOZZA"       // salvata, XML non ancora generato
	SDIStatoGenerata   = "GENERATA"    // XML FatturaPA generato
	SDIStatoTrasmessa  = "TRASMESSA"   // inviata allo SDI, esito in attesa
	SDIStatoConsegnata = "CONSEGNATA"  // ricevuta di consegna SDI
	SDIStatoScartata   = "SCARTATA"    // notifica di scarto SDI
)

// Fattura rappresenta la testata di una fattura emessa al committente.
type Fattura struct {
	ID            string
	CommittenteID string
	Numero        int
	Anno          int
	Data          time.Time
	ModalitaRighe string // vedi costanti Righe*
	Imponibile    decimal.Decimal
	IVA           decimal.Decimal
	Totale        decimal.Decimal
	AliquotaIVA   decimal.Decimal // percentuale (es. 22)
	SplitPayment  bool
	SDIStato      string
	XML           string // FatturaPA generata (contenuto completo)
	SDIErrori     string // messaggi di scarto SDI
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Numerazione restituisce il numero in formato "N/AAAA" (es. "12/2026").
func (f *Fattura) Numerazione() string {
	return strconv.Itoa(f.Numero) + "/" + strconv.Itoa(f.Anno)
}

// FatturaRiga rappresenta una riga di dettaglio della fattura.
// Invariante: Totale == (Quantita * PrezzoUnitario) arrotondato a 2 decimali.
type FatturaRiga struct {
	ID             string
	FatturaID      string
	Numero         int // progressivo sull'intera fattura, mai azzerato
	Descrizione    string
	Quantita       decimal.Decimal
	PrezzoUnitario decimal.Decimal
	Totale         decimal.Decimal
	AliquotaIVA    decimal.Decimal
}
