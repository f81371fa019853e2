package repository

import "github.com/okestra/agibilita-api/internal/domain/entity"

// ArtistaRepository definisce la porta di persistenza per Artista.
type ArtistaRepository interface {
	Create(a *entity.Artista) error
	GetByID(id string) (*entity.Artista, error)
	GetByCodiceFiscale(cf string) (*entity.Artista, error)
	List(limit, offset int) ([]*entity.Artista, error)
	Search(testo string, limit, offset int) ([]*entity.Artista, error)
	Update(a *entity.Artista) error
	Delete(id string) error
}
