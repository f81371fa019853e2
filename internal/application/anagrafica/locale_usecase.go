package anagrafica

import (
	"time"

	"github.com/google/uuid"

	"github.com/okestra/agibilita-api/internal/application/dto"
	"github.com/okestra/agibilita-api/internal/domain"
	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/repository"
	"github.com/okestra/agibilita-api/pkg/fiscale"
)

// LocaleUseCase casi d'uso CRUD per i locali degli eventi.
type LocaleUseCase struct {
	repo repository.LocaleRepository
}

// NewLocaleUseCase costruisce il caso d'uso.
func NewLocaleUseCase(repo repository.LocaleRepository) *LocaleUseCase {
	return &LocaleUseCase{repo: repo}
}

// Create inserisce un locale.
func (uc *LocaleUseCase) Create(in dto.CreateLocaleRequest) (*dto.LocaleResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if !fiscale.ValidaPartitaIVA(in.PartitaIVA).Valido {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	l := &entity.Locale{
		ID:            uuid.New().String(),
		Nome:          in.Nome,
		Indirizzo:     in.Indirizzo,
		Citta:         in.Citta,
		Provincia:     in.Provincia,
		CAP:           in.CAP,
		CodiceFiscale: in.CodiceFiscale,
		PartitaIVA:    in.PartitaIVA,
		Telefono:      in.Telefono,
		Email:         in.Email,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return toLocaleResponse(l), nil
}

// GetByID ottiene un locale per ID.
func (uc *LocaleUseCase) GetByID(id string) (*dto.LocaleResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}
	return toLocaleResponse(l), nil
}

// List elenca i locali.
func (uc *LocaleUseCase) List(page dto.PageRequest) ([]*dto.LocaleResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocaleResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLocaleResponse(l))
	}
	return out, nil
}

// Update aggiorna un locale (campi nil invariati).
func (uc *LocaleUseCase) Update(id string, in dto.UpdateLocaleRequest) (*dto.LocaleResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}
	applica(&l.Nome, in.Nome)
	applica(&l.Indirizzo, in.Indirizzo)
	applica(&l.Citta, in.Citta)
	applica(&l.Provincia, in.Provincia)
	applica(&l.CAP, in.CAP)
	applica(&l.CodiceFiscale, in.CodiceFiscale)
	applica(&l.PartitaIVA, in.PartitaIVA)
	applica(&l.Telefono, in.Telefono)
	applica(&l.Email, in.Email)

	if !fiscale.ValidaPartitaIVA(l.PartitaIVA).Valido {
		return nil, domain.ErrInvalidInput
	}
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(l); err != nil {
		return nil, err
	}
	return toLocaleResponse(l), nil
}

// Delete elimina un locale.
func (uc *LocaleUseCase) Delete(id string) error {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toLocaleResponse(l *entity.Locale) *dto.LocaleResponse {
	return &dto.LocaleResponse{
		ID:            l.ID,
		Nome:          l.Nome,
		Indirizzo:     l.Indirizzo,
		Citta:         l.Citta,
		Provincia:     l.Provincia,
		CAP:           l.CAP,
		CodiceFiscale: l.CodiceFiscale,
		PartitaIVA:    l.PartitaIVA,
		Telefono:      l.Telefono,
		Email:         l.Email,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}
