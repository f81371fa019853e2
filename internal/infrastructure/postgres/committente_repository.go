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

var _ repository.CommittenteRepository = (*CommittenteRepo)(nil)

const committenteColonne = `id, ragione_sociale, codice_fiscale, partita_iva, indirizzo, citta,
	provincia, cap, pec, codice_destinatario, split_payment, email, telefono, created_at, updated_at`

// CommittenteRepo implementazione di CommittenteRepository (usabile con pool o tx).
type CommittenteRepo struct {
	q Querier
}

// NewCommittenteRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewCommittenteRepository(q Querier) *CommittenteRepo {
	return &CommittenteRepo{q: q}
}

// Create persiste un nuovo committente.
func (r *CommittenteRepo) Create(c *entity.Committente) error {
	query := `
		INSERT INTO committenti (` + committenteColonne + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.RagioneSociale, nullIfEmpty(c.CodiceFiscale), nullIfEmpty(c.PartitaIVA),
		nullIfEmpty(c.Indirizzo), nullIfEmpty(c.Citta), nullIfEmpty(c.Provincia), nullIfEmpty(c.CAP),
		nullIfEmpty(c.PEC), nullIfEmpty(c.CodiceDestinatario), c.SplitPayment,
		nullIfEmpty(c.Email), nullIfEmpty(c.Telefono), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert committente: %w", err)
	}
	return nil
}

// GetByID ottiene un committente per ID.
func (r *CommittenteRepo) GetByID(id string) (*entity.Committente, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+committenteColonne+` FROM committenti WHERE id = $1`, id)
	return scanCommittente(row)
}

// GetByPartitaIVA ottiene un committente per partita IVA.
func (r *CommittenteRepo) GetByPartitaIVA(piva string) (*entity.Committente, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+committenteColonne+` FROM committenti WHERE partita_iva = $1`, piva)
	return scanCommittente(row)
}

// List elenca i committenti con paginazione.
func (r *CommittenteRepo) List(limit, offset int) ([]*entity.Committente, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+committenteColonne+` FROM committenti ORDER BY ragione_sociale LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list committenti: %w", err)
	}
	defer rows.Close()
	var list []*entity.Committente
	for rows.Next() {
		c, err := scanCommittente(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update aggiorna un committente.
func (r *CommittenteRepo) Update(c *entity.Committente) error {
	query := `
		UPDATE committenti SET ragione_sociale = $2, codice_fiscale = $3, partita_iva = $4,
			indirizzo = $5, citta = $6, provincia = $7, cap = $8, pec = $9,
			codice_destinatario = $10, split_payment = $11, email = $12, telefono = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.RagioneSociale, nullIfEmpty(c.CodiceFiscale), nullIfEmpty(c.PartitaIVA),
		nullIfEmpty(c.Indirizzo), nullIfEmpty(c.Citta), nullIfEmpty(c.Provincia), nullIfEmpty(c.CAP),
		nullIfEmpty(c.PEC), nullIfEmpty(c.CodiceDestinatario), c.SplitPayment,
		nullIfEmpty(c.Email), nullIfEmpty(c.Telefono), c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update committente: %w", err)
	}
	return nil
}

// Delete elimina un committente per ID.
func (r *CommittenteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM committenti WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete committente: %w", err)
	}
	return nil
}

func scanCommittente(row pgx.Row) (*entity.Committente, error) {
	var c entity.Committente
	var cf, piva, indirizzo, citta, provincia, cap, pec, codDest, email, tel *string
	err := row.Scan(&c.ID, &c.RagioneSociale, &cf, &piva, &indirizzo, &citta, &provincia, &cap,
		&pec, &codDest, &c.SplitPayment, &email, &tel, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get committente: %w", err)
	}
	c.CodiceFiscale = emptyIfNull(cf)
	c.PartitaIVA = emptyIfNull(piva)
	c.Indirizzo = emptyIfNull(indirizzo)
	c.Citta = emptyIfNull(citta)
	c.Provincia = emptyIfNull(provincia)
	c.CAP = emptyIfNull(cap)
	c.PEC = emptyIfNull(pec)
	c.CodiceDestinatario = emptyIfNull(codDest)
	c.Email = emptyIfNull(email)
	c.Telefono = emptyIfNull(tel)
	return &c, nil
}
