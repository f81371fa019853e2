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

var _ repository.ArtistaRepository = (*ArtistaRepo)(nil)

const artistaColonne = `id, nome, cognome, nome_darte, sesso, codice_fiscale, partita_iva, iban,
	data_nascita, luogo_nascita, indirizzo, citta, tipo_contratto, extra_ue,
	documento_estero, nazionalita, email, telefono, created_at, updated_at`

// ArtistaRepo implementazione di ArtistaRepository (usabile con pool o tx).
type ArtistaRepo struct {
	q Querier
}

// NewArtistaRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewArtistaRepository(q Querier) *ArtistaRepo {
	return &ArtistaRepo{q: q}
}

// Create persiste un nuovo artista.
func (r *ArtistaRepo) Create(a *entity.Artista) error {
	query := `
		INSERT INTO artisti (` + artistaColonne + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Nome, a.Cognome, nullIfEmpty(a.NomeDArte), nullIfEmpty(a.Sesso),
		nullIfEmpty(a.CodiceFiscale), nullIfEmpty(a.PartitaIVA), nullIfEmpty(a.IBAN),
		a.DataNascita, nullIfEmpty(a.LuogoNascita), nullIfEmpty(a.Indirizzo), nullIfEmpty(a.Citta),
		a.TipoContratto, a.ExtraUE, nullIfEmpty(a.DocumentoEstero), nullIfEmpty(a.Nazionalita),
		nullIfEmpty(a.Email), nullIfEmpty(a.Telefono), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert artista: %w", err)
	}
	return nil
}

// GetByID ottiene un artista per ID.
func (r *ArtistaRepo) GetByID(id string) (*entity.Artista, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+artistaColonne+` FROM artisti WHERE id = $1`, id)
	return scanArtista(row)
}

// GetByCodiceFiscale ottiene un artista per codice fiscale (unico in roster).
func (r *ArtistaRepo) GetByCodiceFiscale(cf string) (*entity.Artista, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+artistaColonne+` FROM artisti WHERE codice_fiscale = $1`, cf)
	return scanArtista(row)
}

// List elenca gli artisti con paginazione, ordinati per cognome.
func (r *ArtistaRepo) List(limit, offset int) ([]*entity.Artista, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+artistaColonne+` FROM artisti ORDER BY cognome, nome LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list artisti: %w", err)
	}
	return scanArtisti(rows)
}

// Search cerca per nome, cognome o nome d'arte (ricerca dei form).
func (r *ArtistaRepo) Search(testo string, limit, offset int) ([]*entity.Artista, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+artistaColonne+` FROM artisti
		 WHERE nome ILIKE '%' || $1 || '%' OR cognome ILIKE '%' || $1 || '%' OR nome_darte ILIKE '%' || $1 || '%'
		 ORDER BY cognome, nome LIMIT $2 OFFSET $3`,
		testo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search artisti: %w", err)
	}
	return scanArtisti(rows)
}

// Update aggiorna un artista.
func (r *ArtistaRepo) Update(a *entity.Artista) error {
	query := `
		UPDATE artisti SET nome = $2, cognome = $3, nome_darte = $4, sesso = $5,
			codice_fiscale = $6, partita_iva = $7, iban = $8, data_nascita = $9,
			luogo_nascita = $10, indirizzo = $11, citta = $12, tipo_contratto = $13,
			extra_ue = $14, documento_estero = $15, nazionalita = $16,
			email = $17, telefono = $18, updated_at = $19
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Nome, a.Cognome, nullIfEmpty(a.NomeDArte), nullIfEmpty(a.Sesso),
		nullIfEmpty(a.CodiceFiscale), nullIfEmpty(a.PartitaIVA), nullIfEmpty(a.IBAN),
		a.DataNascita, nullIfEmpty(a.LuogoNascita), nullIfEmpty(a.Indirizzo), nullIfEmpty(a.Citta),
		a.TipoContratto, a.ExtraUE, nullIfEmpty(a.DocumentoEstero), nullIfEmpty(a.Nazionalita),
		nullIfEmpty(a.Email), nullIfEmpty(a.Telefono), a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update artista: %w", err)
	}
	return nil
}

// Delete elimina un artista per ID.
func (r *ArtistaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM artisti WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artista: %w", err)
	}
	return nil
}

func scanArtista(row pgx.Row) (*entity.Artista, error) {
	var a entity.Artista
	var nomeDArte, sesso, cf, piva, iban, luogo, indirizzo, citta, doc, naz, email, tel *string
	err := row.Scan(
		&a.ID, &a.Nome, &a.Cognome, &nomeDArte, &sesso, &cf, &piva, &iban,
		&a.DataNascita, &luogo, &indirizzo, &citta, &a.TipoContratto, &a.ExtraUE,
		&doc, &naz, &email, &tel, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get artista: %w", err)
	}
	a.NomeDArte = emptyIfNull(nomeDArte)
	a.Sesso = emptyIfNull(sesso)
	a.CodiceFiscale = emptyIfNull(cf)
	a.PartitaIVA = emptyIfNull(piva)
	a.IBAN = emptyIfNull(iban)
	a.LuogoNascita = emptyIfNull(luogo)
	a.Indirizzo = emptyIfNull(indirizzo)
	a.Citta = emptyIfNull(citta)
	a.DocumentoEstero = emptyIfNull(doc)
	a.Nazionalita = emptyIfNull(naz)
	a.Email = emptyIfNull(email)
	a.Telefono = emptyIfNull(tel)
	return &a, nil
}

func scanArtisti(rows pgx.Rows) ([]*entity.Artista, error) {
	defer rows.Close()
	var list []*entity.Artista
	for rows.Next() {
		a, err := scanArtista(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
