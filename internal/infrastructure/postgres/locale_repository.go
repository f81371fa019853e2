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

var _ repository.LocaleRepository = (*LocaleRepo)(nil)

const localeColonne = `id, nome, indirizzo, citta, provincia, cap, codice_fiscale, partita_iva,
	telefono, email, created_at, updated_at`

// LocaleRepo implementazione di LocaleRepository (usabile con pool o tx).
type LocaleRepo struct {
	q Querier
}

// NewLocaleRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewLocaleRepository(q Querier) *LocaleRepo {
	return &LocaleRepo{q: q}
}

// Create persiste un nuovo locale.
func (r *LocaleRepo) Create(l *entity.Locale) error {
	query := `
		INSERT INTO locali (` + localeColonne + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Nome, nullIfEmpty(l.Indirizzo), nullIfEmpty(l.Citta), nullIfEmpty(l.Provincia),
		nullIfEmpty(l.CAP), nullIfEmpty(l.CodiceFiscale), nullIfEmpty(l.PartitaIVA),
		nullIfEmpty(l.Telefono), nullIfEmpty(l.Email), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert locale: %w", err)
	}
	return nil
}

// GetByID ottiene un locale per ID.
func (r *LocaleRepo) GetByID(id string) (*entity.Locale, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+localeColonne+` FROM locali WHERE id = $1`, id)
	return scanLocale(row)
}

// List elenca i locali con paginazione.
func (r *LocaleRepo) List(limit, offset int) ([]*entity.Locale, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+localeColonne+` FROM locali ORDER BY nome LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locali: %w", err)
	}
	defer rows.Close()
	var list []*entity.Locale
	for rows.Next() {
		l, err := scanLocale(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Update aggiorna un locale.
func (r *LocaleRepo) Update(l *entity.Locale) error {
	query := `
		UPDATE locali SET nome = $2, indirizzo = $3, citta = $4, provincia = $5, cap = $6,
			codice_fiscale = $7, partita_iva = $8, telefono = $9, email = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Nome, nullIfEmpty(l.Indirizzo), nullIfEmpty(l.Citta), nullIfEmpty(l.Provincia),
		nullIfEmpty(l.CAP), nullIfEmpty(l.CodiceFiscale), nullIfEmpty(l.PartitaIVA),
		nullIfEmpty(l.Telefono), nullIfEmpty(l.Email), l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update locale: %w", err)
	}
	return nil
}

// Delete elimina un locale per ID.
func (r *LocaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locali WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete locale: %w", err)
	}
	return nil
}

func scanLocale(row pgx.Row) (*entity.Locale, error) {
	var l entity.Locale
	var indirizzo, citta, provincia, cap, cf, piva, tel, email *string
	err := row.Scan(&l.ID, &l.Nome, &indirizzo, &citta, &provincia, &cap, &cf, &piva,
		&tel, &email, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get locale: %w", err)
	}
	l.Indirizzo = emptyIfNull(indirizzo)
	l.Citta = emptyIfNull(citta)
	l.Provincia = emptyIfNull(provincia)
	l.CAP = emptyIfNull(cap)
	l.CodiceFiscale = emptyIfNull(cf)
	l.PartitaIVA = emptyIfNull(piva)
	l.Telefono = emptyIfNull(tel)
	l.Email = emptyIfNull(email)
	return &l, nil
}
