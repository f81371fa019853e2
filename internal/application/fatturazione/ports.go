package fatturazione

import (
	"context"

	"github.com/okestra/agibilita-api/internal/domain/repository"
)

// TxRunner esegue l'emissione dentro una transazione: numerazione, testata,
// righe e passaggio di stato delle agibilità devono riuscire o fallire insieme.
type TxRunner interface {
	RunEmissione(ctx context.Context, fn func(
		fatturaRepo repository.FatturaRepository,
		agibilitaRepo repository.AgibilitaRepository,
	) error) error
}
