package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportaMovimentiRequest lotto di righe di estratto conto da importare.
type ImportaMovimentiRequest struct {
	Movimenti []MovimentoInput `json:"movimenti" validate:"required,min=1"`
}

// MovimentoInput singola riga di estratto conto.
type MovimentoInput struct {
	Data        time.Time       `json:"data" validate:"required"`
	Importo     decimal.Decimal `json:"importo"`
	Descrizione string          `json:"descrizione"`
}

// MovimentoResponse movimento bancario restituito dall'API.
type MovimentoResponse struct {
	ID          string          `json:"id"`
	Data        time.Time       `json:"data"`
	Importo     decimal.Decimal `json:"importo"`
	Descrizione string          `json:"descrizione"`
	Stato       string          `json:"stato"`
	FatturaID   string          `json:"fattura_id,omitempty"`
}

// ConfermaAbbinamentoRequest conferma manuale di un abbinamento suggerito.
type ConfermaAbbinamentoRequest struct {
	FatturaID string `json:"fattura_id" validate:"required"`
}
