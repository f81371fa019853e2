package riconciliazione

import (
	"context"

	"github.com/okestra/agibilita-api/internal/domain/repository"
)

// TxRunner esegue la conferma di un abbinamento dentro una transazione:
// il movimento cambia stato e la fattura resta coerente in un colpo solo.
type TxRunner interface {
	RunAbbinamento(ctx context.Context, fn func(
		movimentoRepo repository.MovimentoBancarioRepository,
		fatturaRepo repository.FatturaRepository,
	) error) error
}
