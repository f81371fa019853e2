package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okestra/agibilita-api/internal/application/fatturazione"
	"github.com/okestra/agibilita-api/internal/application/riconciliazione"
	"github.com/okestra/agibilita-api/internal/domain/repository"
)

var _ fatturazione.TxRunner = (*TxRunner)(nil)
var _ riconciliazione.TxRunner = (*TxRunner)(nil)

// TxRunner esegue callback dentro una transazione PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner costruisce il runner con il pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunEmissione apre una transazione con i repo necessari all'emissione di una
// fattura (numerazione, testata, righe, aggiornamento agibilità) e fa Commit
// o Rollback.
func (r *TxRunner) RunEmissione(ctx context.Context, fn func(
	fatturaRepo repository.FatturaRepository,
	agibilitaRepo repository.AgibilitaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	fatturaRepo := NewFatturaRepository(tx)
	agibilitaRepo := NewAgibilitaRepository(tx)

	if err := fn(fatturaRepo, agibilitaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAbbinamento apre una transazione con i repo necessari alla conferma di
// un abbinamento movimento-fattura.
func (r *TxRunner) RunAbbinamento(ctx context.Context, fn func(
	movimentoRepo repository.MovimentoBancarioRepository,
	fatturaRepo repository.FatturaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movimentoRepo := NewMovimentoRepository(tx)
	fatturaRepo := NewFatturaRepository(tx)

	if err := fn(movimentoRepo, fatturaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
