package repository

import "github.com/okestra/agibilita-api/internal/domain/entity"

// FatturaRepository definisce la porta di persistenza per Fattura e righe.
type FatturaRepository interface {
	Create(f *entity.Fattura) error
	CreateRiga(r *entity.FatturaRiga) error
	GetByID(id string) (*entity.Fattura, error)
	GetRigheByFatturaID(fatturaID string) ([]entity.FatturaRiga, error)
	// ProssimoNumero riserva il progressivo successivo per l'anno indicato.
	// Va chiamato dentro la transazione di emissione per evitare buchi o
	// doppioni di numerazione.
	ProssimoNumero(anno int) (int, error)
	List(anno int, limit, offset int) ([]*entity.Fattura, error)
	ListNonIncassate() ([]*entity.Fattura, error)
	Update(f *entity.Fattura) error
}
