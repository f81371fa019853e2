package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okestra/agibilita-api/internal/domain"
	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/repository"
)

var _ repository.MovimentoBancarioRepository = (*MovimentoRepo)(nil)

const movimentoColonne = `id, data, importo, descrizione, stato, fattura_id, created_at, updated_at`

// MovimentoRepo implementazione di MovimentoBancarioRepository.
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// CreateBatch inserisce un lotto di movimenti importati da estratto conto.
func (r *MovimentoRepo) CreateBatch(movimenti []*entity.MovimentoBancario) error {
	query := `
		INSERT INTO movimenti_bancari (` + movimentoColonne + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, m := range movimenti {
		_, err := r.q.Exec(context.Background(), query,
			m.ID, m.Data, m.Importo, m.Descrizione, m.Stato,
			nullIfEmpty(m.FatturaID), m.CreatedAt, m.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert movimento: %w", err)
		}
	}
	return nil
}

// GetByID ottiene un movimento. Restituisce (nil, nil) se non trovato.
func (r *MovimentoRepo) GetByID(id string) (*entity.MovimentoBancario, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+movimentoColonne+` FROM movimenti_bancari WHERE id = $1`, id)
	return scanMovimento(row)
}

// ListByStato elenca i movimenti, opzionalmente filtrati per stato.
func (r *MovimentoRepo) ListByStato(stato string, limit, offset int) ([]*entity.MovimentoBancario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movimentoColonne+` FROM movimenti_bancari
		 WHERE ($1 = '' OR stato = $1)
		 ORDER BY data DESC, id LIMIT $2 OFFSET $3`,
		stato, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimenti: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimentoBancario
	for rows.Next() {
		m, err := scanMovimento(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update aggiorna stato e fattura abbinata del movimento.
func (r *MovimentoRepo) Update(m *entity.MovimentoBancario) error {
	query := `
		UPDATE movimenti_bancari SET stato = $2, fattura_id = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Stato, nullIfEmpty(m.FatturaID), m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update movimento: %w", err)
	}
	return nil
}

func scanMovimento(row pgx.Row) (*entity.MovimentoBancario, error) {
	var m entity.MovimentoBancario
	var fatturaID *string
	err := row.Scan(&m.ID, &m.Data, &m.Importo, &m.Descrizione, &m.Stato,
		&fatturaID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimento: %w", err)
	}
	m.FatturaID = emptyIfNull(fatturaID)
	return &m, nil
}
