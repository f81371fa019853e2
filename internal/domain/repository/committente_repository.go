package repository

import "github.com/okestra/agibilita-api/internal/domain/entity"

// CommittenteRepository definisce la porta di persistenza per Committente.
type CommittenteRepository interface {
	Create(c *entity.Committente) error
	GetByID(id string) (*entity.Committente, error)
	GetByPartitaIVA(piva string) (*entity.Committente, error)
	List(limit, offset int) ([]*entity.Committente, error)
	Update(c *entity.Committente) error
	Delete(id string) error
}
