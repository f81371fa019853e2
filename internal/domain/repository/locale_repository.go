package repository

import "github.com/okestra/agibilita-api/internal/domain/entity"

// LocaleRepository definisce la porta di persistenza per Locale.
type LocaleRepository interface {
	Create(l *entity.Locale) error
	GetByID(id string) (*entity.Locale, error)
	List(limit, offset int) ([]*entity.Locale, error)
	Update(l *entity.Locale) error
	Delete(id string) error
}
