package repository

import "github.com/okestra/agibilita-api/internal/domain/entity"

// MovimentoBancarioRepository definisce la porta di persistenza per i
// movimenti bancari importati.
type MovimentoBancarioRepository interface {
	CreateBatch(movimenti []*entity.MovimentoBancario) error
	GetByID(id string) (*entity.MovimentoBancario, error)
	ListByStato(stato string, limit, offset int) ([]*entity.MovimentoBancario, error)
	Update(m *entity.MovimentoBancario) error
}
