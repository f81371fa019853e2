package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAgibilitaRequest dati per l'apertura di una pratica di agibilità.
type CreateAgibilitaRequest struct {
	CommittenteID string                  `json:"committente_id" validate:"required"`
	LocaleID      string                  `json:"locale_id" validate:"required"`
	DataEvento    time.Time               `json:"data_evento" validate:"required"`
	Descrizione   string                  `json:"descrizione"`
	Artisti       []AgibilitaArtistaInput `json:"artisti" validate:"required,min=1"`
}

// AgibilitaArtistaInput partecipazione di un artista con il netto pattuito.
type AgibilitaArtistaInput struct {
	ArtistaID string          `json:"artista_id" validate:"required"`
	Netto     decimal.Decimal `json:"netto"`
}

// AgibilitaResponse pratica restituita dall'API.
type AgibilitaResponse struct {
	ID            string                     `json:"id"`
	CommittenteID string                     `json:"committente_id"`
	LocaleID      string                     `json:"locale_id"`
	DataEvento    time.Time                  `json:"data_evento"`
	Descrizione   string                     `json:"descrizione,omitempty"`
	Stato         string                     `json:"stato"`
	FatturaID     string                     `json:"fattura_id,omitempty"`
	Artisti       []AgibilitaArtistaResponse `json:"artisti"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// AgibilitaArtistaResponse partecipazione con i compensi denormalizzati.
type AgibilitaArtistaResponse struct {
	ID        string          `json:"id"`
	ArtistaID string          `json:"artista_id"`
	Netto     decimal.Decimal `json:"netto"`
	Lordo     decimal.Decimal `json:"lordo"`
	Ritenuta  decimal.Decimal `json:"ritenuta"`
}

// CompensoArtistaResponse anteprima di calcolo per un artista della pratica.
type CompensoArtistaResponse struct {
	ArtistaID     string          `json:"artista_id"`
	NomeInFattura string          `json:"nome_in_fattura"`
	TipoContratto string          `json:"tipo_contratto"`
	Netto         decimal.Decimal `json:"netto"`
	Lordo         decimal.Decimal `json:"lordo"`
	Ritenuta      decimal.Decimal `json:"ritenuta"`
}

// CompensiPreviewResponse anteprima dei compensi dell'intera pratica.
type CompensiPreviewResponse struct {
	AgibilitaID    string                    `json:"agibilita_id"`
	Compensi       []CompensoArtistaResponse `json:"compensi"`
	TotaleNetto    decimal.Decimal           `json:"totale_netto"`
	TotaleLordo    decimal.Decimal           `json:"totale_lordo"`
	TotaleRitenute decimal.Decimal           `json:"totale_ritenute"`
}
