package repository

import "github.com/okestra/agibilita-api/internal/domain/entity"

// AgibilitaRepository definisce la porta di persistenza per Agibilita.
// GetByID e ListByIDs caricano anche gli artisti collegati.
type AgibilitaRepository interface {
	Create(a *entity.Agibilita) error
	GetByID(id string) (*entity.Agibilita, error)
	ListByIDs(ids []string) ([]*entity.Agibilita, error)
	ListByCommittente(committenteID string, stato string, limit, offset int) ([]*entity.Agibilita, error)
	List(stato string, limit, offset int) ([]*entity.Agibilita, error)
	Update(a *entity.Agibilita) error
	UpdateArtista(aa *entity.AgibilitaArtista) error
}
