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

var _ repository.FatturaRepository = (*FatturaRepo)(nil)

const fatturaColonne = `id, committente_id, numero, anno, data, modalita_righe,
	imponibile, iva, totale, aliquota_iva, split_payment, sdi_stato, xml, sdi_errori,
	created_at, updated_at`

// FatturaRepo implementazione di FatturaRepository (usabile con pool o tx).
type FatturaRepo struct {
	q Querier
}

// NewFatturaRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewFatturaRepository(q Querier) *FatturaRepo {
	return &FatturaRepo{q: q}
}

// Create persiste la testata della fattura.
func (r *FatturaRepo) Create(f *entity.Fattura) error {
	query := `
		INSERT INTO fatture (` + fatturaColonne + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.CommittenteID, f.Numero, f.Anno, f.Data, f.ModalitaRighe,
		f.Imponibile, f.IVA, f.Totale, f.AliquotaIVA, f.SplitPayment,
		f.SDIStato, nullIfEmpty(f.XML), nullIfEmpty(f.SDIErrori),
		f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fattura: %w", err)
	}
	return nil
}

// CreateRiga persiste una riga di dettaglio.
func (r *FatturaRepo) CreateRiga(riga *entity.FatturaRiga) error {
	query := `
		INSERT INTO fattura_righe (id, fattura_id, numero, descrizione,
			quantita, prezzo_unitario, totale, aliquota_iva)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		riga.ID, riga.FatturaID, riga.Numero, riga.Descrizione,
		riga.Quantita, riga.PrezzoUnitario, riga.Totale, riga.AliquotaIVA)
	if err != nil {
		return fmt.Errorf("insert fattura_riga: %w", err)
	}
	return nil
}

// GetByID ottiene una fattura. Restituisce (nil, nil) se non trovata.
func (r *FatturaRepo) GetByID(id string) (*entity.Fattura, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+fatturaColonne+` FROM fatture WHERE id = $1`, id)
	return scanFattura(row)
}

// GetRigheByFatturaID elenca le righe in ordine di numero progressivo.
func (r *FatturaRepo) GetRigheByFatturaID(fatturaID string) ([]entity.FatturaRiga, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, fattura_id, numero, descrizione, quantita, prezzo_unitario, totale, aliquota_iva
		 FROM fattura_righe WHERE fattura_id = $1 ORDER BY numero`, fatturaID)
	if err != nil {
		return nil, fmt.Errorf("list fattura_righe: %w", err)
	}
	defer rows.Close()
	var righe []entity.FatturaRiga
	for rows.Next() {
		var riga entity.FatturaRiga
		if err := rows.Scan(&riga.ID, &riga.FatturaID, &riga.Numero, &riga.Descrizione,
			&riga.Quantita, &riga.PrezzoUnitario, &riga.Totale, &riga.AliquotaIVA); err != nil {
			return nil, fmt.Errorf("scan fattura_riga: %w", err)
		}
		righe = append(righe, riga)
	}
	return righe, rows.Err()
}

// ProssimoNumero riserva il progressivo successivo per l'anno. Il blocco
// sulla tabella contatori serializza le emissioni concorrenti: va chiamato
// dentro la transazione di emissione.
func (r *FatturaRepo) ProssimoNumero(anno int) (int, error) {
	var numero int
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO fattura_contatori (anno, ultimo_numero)
		VALUES ($1, 1)
		ON CONFLICT (anno) DO UPDATE SET ultimo_numero = fattura_contatori.ultimo_numero + 1
		RETURNING ultimo_numero`, anno).Scan(&numero)
	if err != nil {
		return 0, fmt.Errorf("prossimo numero fattura: %w", err)
	}
	return numero, nil
}

// List elenca le fatture, opzionalmente filtrate per anno (0 = tutte).
func (r *FatturaRepo) List(anno int, limit, offset int) ([]*entity.Fattura, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+fatturaColonne+` FROM fatture
		 WHERE ($1 = 0 OR anno = $1)
		 ORDER BY anno DESC, numero DESC LIMIT $2 OFFSET $3`,
		anno, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fatture: %w", err)
	}
	return scanFatture(rows)
}

// ListNonIncassate elenca le fatture emesse non ancora riconciliate con un
// movimento bancario. Alimenta i suggerimenti di riconciliazione.
func (r *FatturaRepo) ListNonIncassate() ([]*entity.Fattura, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+fatturaColonne+` FROM fatture f
		 WHERE f.sdi_stato <> $1
		   AND NOT EXISTS (
			SELECT 1 FROM movimenti_bancari m
			WHERE m.fattura_id = f.id AND m.stato = $2)
		 ORDER BY f.anno, f.numero`,
		entity.SDIStatoScartata, entity.MovimentoRiconciliato)
	if err != nil {
		return nil, fmt.Errorf("list fatture non incassate: %w", err)
	}
	return scanFatture(rows)
}

// Update aggiorna la testata della fattura (stato SDI, XML, errori).
func (r *FatturaRepo) Update(f *entity.Fattura) error {
	query := `
		UPDATE fatture SET modalita_righe = $2, imponibile = $3, iva = $4, totale = $5,
			aliquota_iva = $6, split_payment = $7, sdi_stato = $8, xml = $9,
			sdi_errori = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.ModalitaRighe, f.Imponibile, f.IVA, f.Totale,
		f.AliquotaIVA, f.SplitPayment, f.SDIStato, nullIfEmpty(f.XML),
		nullIfEmpty(f.SDIErrori), f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fattura: %w", err)
	}
	return nil
}

func scanFattura(row pgx.Row) (*entity.Fattura, error) {
	var f entity.Fattura
	var xml, sdiErrori *string
	err := row.Scan(&f.ID, &f.CommittenteID, &f.Numero, &f.Anno, &f.Data, &f.ModalitaRighe,
		&f.Imponibile, &f.IVA, &f.Totale, &f.AliquotaIVA, &f.SplitPayment,
		&f.SDIStato, &xml, &sdiErrori, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fattura: %w", err)
	}
	f.XML = emptyIfNull(xml)
	f.SDIErrori = emptyIfNull(sdiErrori)
	return &f, nil
}

func scanFatture(rows pgx.Rows) ([]*entity.Fattura, error) {
	defer rows.Close()
	var list []*entity.Fattura
	for rows.Next() {
		f, err := scanFattura(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
