package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmettiFatturaRequest dati per l'emissione di una fattura da agibilità chiuse.
type EmettiFatturaRequest struct {
	CommittenteID       string          `json:"committente_id" validate:"required"`
	AgibilitaIDs        []string        `json:"agibilita_ids" validate:"required,min=1"`
	Modalita            string          `json:"modalita"`
	DirittiPerArtista   decimal.Decimal `json:"diritti_per_artista"`
	AliquotaIVA         decimal.Decimal `json:"aliquota_iva"`
	DescrizioneGenerica string          `json:"descrizione_generica"`
	Data                *time.Time      `json:"data"`
}

// FatturaResponse testata e righe della fattura emessa.
type FatturaResponse struct {
	ID            string                `json:"id"`
	CommittenteID string                `json:"committente_id"`
	Numero        int                   `json:"numero"`
	Anno          int                   `json:"anno"`
	Numerazione   string                `json:"numerazione"`
	Data          time.Time             `json:"data"`
	ModalitaRighe string                `json:"modalita_righe"`
	Imponibile    decimal.Decimal       `json:"imponibile"`
	IVA           decimal.Decimal       `json:"iva"`
	Totale        decimal.Decimal       `json:"totale"`
	AliquotaIVA   decimal.Decimal       `json:"aliquota_iva"`
	SplitPayment  bool                  `json:"split_payment"`
	SDIStato      string                `json:"sdi_stato"`
	Righe         []FatturaRigaResponse `json:"righe,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// FatturaRigaResponse riga di dettaglio.
type FatturaRigaResponse struct {
	Numero         int             `json:"numero"`
	Descrizione    string          `json:"descrizione"`
	Quantita       decimal.Decimal `json:"quantita"`
	PrezzoUnitario decimal.Decimal `json:"prezzo_unitario"`
	Totale         decimal.Decimal `json:"totale"`
	AliquotaIVA    decimal.Decimal `json:"aliquota_iva"`
}
