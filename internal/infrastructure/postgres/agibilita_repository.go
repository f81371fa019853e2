package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/repository"
)

var _ repository.AgibilitaRepository = (*AgibilitaRepo)(nil)

const agibilitaColonne = `id, committente_id, locale_id, data_evento, descrizione, stato,
	fattura_id, created_at, updated_at`

// AgibilitaRepo implementazione di AgibilitaRepository (usabile con pool o tx).
type AgibilitaRepo struct {
	q Querier
}

// NewAgibilitaRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewAgibilitaRepository(q Querier) *AgibilitaRepo {
	return &AgibilitaRepo{q: q}
}

// Create persiste l'agibilità con gli artisti collegati.
func (r *AgibilitaRepo) Create(a *entity.Agibilita) error {
	query := `
		INSERT INTO agibilita (` + agibilitaColonne + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CommittenteID, a.LocaleID, a.DataEvento, nullIfEmpty(a.Descrizione),
		a.Stato, nullIfEmpty(a.FatturaID), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert agibilita: %w", err)
	}
	for i := range a.Artisti {
		aa := &a.Artisti[i]
		if err := r.createArtista(aa); err != nil {
			return err
		}
	}
	return nil
}

func (r *AgibilitaRepo) createArtista(aa *entity.AgibilitaArtista) error {
	query := `
		INSERT INTO agibilita_artisti (id, agibilita_id, artista_id, netto, lordo, ritenuta)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		aa.ID, aa.AgibilitaID, aa.ArtistaID, aa.Netto, aa.Lordo, aa.Ritenuta)
	if err != nil {
		return fmt.Errorf("insert agibilita_artista: %w", err)
	}
	return nil
}

// GetByID ottiene l'agibilità con gli artisti collegati.
func (r *AgibilitaRepo) GetByID(id string) (*entity.Agibilita, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+agibilitaColonne+` FROM agibilita WHERE id = $1`, id)
	a, err := scanAgibilita(row)
	if err != nil || a == nil {
		return a, err
	}
	if err := r.caricaArtisti(a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListByIDs carica un insieme di agibilità (con artisti) preservando
// l'ordine degli ID richiesti: la fatturazione dipende dall'ordine di input.
func (r *AgibilitaRepo) ListByIDs(ids []string) ([]*entity.Agibilita, error) {
	out := make([]*entity.Agibilita, 0, len(ids))
	for _, id := range ids {
		a, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		if a != nil {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListByCommittente elenca le agibilità di un committente, opzionalmente per stato.
func (r *AgibilitaRepo) ListByCommittente(committenteID, stato string, limit, offset int) ([]*entity.Agibilita, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+agibilitaColonne+` FROM agibilita
		 WHERE committente_id = $1 AND ($2 = '' OR stato = $2)
		 ORDER BY data_evento DESC LIMIT $3 OFFSET $4`,
		committenteID, stato, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agibilita: %w", err)
	}
	return r.scanConArtisti(rows)
}

// List elenca le agibilità, opzionalmente filtrate per stato.
func (r *AgibilitaRepo) List(stato string, limit, offset int) ([]*entity.Agibilita, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+agibilitaColonne+` FROM agibilita
		 WHERE ($1 = '' OR stato = $1)
		 ORDER BY data_evento DESC LIMIT $2 OFFSET $3`,
		stato, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agibilita: %w", err)
	}
	return r.scanConArtisti(rows)
}

// Update aggiorna la testata dell'agibilità (stato, fattura, descrizione).
func (r *AgibilitaRepo) Update(a *entity.Agibilita) error {
	query := `
		UPDATE agibilita SET committente_id = $2, locale_id = $3, data_evento = $4,
			descrizione = $5, stato = $6, fattura_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CommittenteID, a.LocaleID, a.DataEvento, nullIfEmpty(a.Descrizione),
		a.Stato, nullIfEmpty(a.FatturaID), a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agibilita: %w", err)
	}
	return nil
}

// UpdateArtista aggiorna i compensi denormalizzati di una partecipazione.
func (r *AgibilitaRepo) UpdateArtista(aa *entity.AgibilitaArtista) error {
	query := `
		UPDATE agibilita_artisti SET netto = $2, lordo = $3, ritenuta = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, aa.ID, aa.Netto, aa.Lordo, aa.Ritenuta)
	if err != nil {
		return fmt.Errorf("update agibilita_artista: %w", err)
	}
	return nil
}

func (r *AgibilitaRepo) caricaArtisti(a *entity.Agibilita) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, agibilita_id, artista_id, netto, lordo, ritenuta
		 FROM agibilita_artisti WHERE agibilita_id = $1 ORDER BY id`, a.ID)
	if err != nil {
		return fmt.Errorf("list agibilita_artisti: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var aa entity.AgibilitaArtista
		if err := rows.Scan(&aa.ID, &aa.AgibilitaID, &aa.ArtistaID, &aa.Netto, &aa.Lordo, &aa.Ritenuta); err != nil {
			return fmt.Errorf("scan agibilita_artista: %w", err)
		}
		a.Artisti = append(a.Artisti, aa)
	}
	return rows.Err()
}

func (r *AgibilitaRepo) scanConArtisti(rows pgx.Rows) ([]*entity.Agibilita, error) {
	var list []*entity.Agibilita
	for rows.Next() {
		a, err := scanAgibilita(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		list = append(list, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list agibilita: %w", err)
	}
	// Gli artisti si caricano dopo la chiusura del cursore: un Querier
	// (pool o tx) non supporta query annidate sulla stessa connessione.
	for _, a := range list {
		if err := r.caricaArtisti(a); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func scanAgibilita(row pgx.Row) (*entity.Agibilita, error) {
	var a entity.Agibilita
	var descrizione, fatturaID *string
	err := row.Scan(&a.ID, &a.CommittenteID, &a.LocaleID, &a.DataEvento, &descrizione,
		&a.Stato, &fatturaID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agibilita: %w", err)
	}
	a.Descrizione = emptyIfNull(descrizione)
	a.FatturaID = emptyIfNull(fatturaID)
	return &a, nil
}
