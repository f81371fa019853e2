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

// CommittenteUseCase casi d'uso CRUD per i committenti.
type CommittenteUseCase struct {
	repo repository.CommittenteRepository
}

// NewCommittenteUseCase costruisce il caso d'uso.
func NewCommittenteUseCase(repo repository.CommittenteRepository) *CommittenteUseCase {
	return &CommittenteUseCase{repo: repo}
}

// Create inserisce un committente. Serve almeno un identificativo fiscale:
// senza partita IVA o codice fiscale la fattura non è emettibile.
func (uc *CommittenteUseCase) Create(in dto.CreateCommittenteRequest) (*dto.CommittenteResponse, error) {
	if in.RagioneSociale == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PartitaIVA == "" && in.CodiceFiscale == "" {
		return nil, domain.ErrInvalidInput
	}
	if !fiscale.ValidaPartitaIVA(in.PartitaIVA).Valido {
		return nil, domain.ErrInvalidInput
	}
	if in.PartitaIVA != "" {
		existing, _ := uc.repo.GetByPartitaIVA(in.PartitaIVA)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	c := &entity.Committente{
		ID:                 uuid.New().String(),
		RagioneSociale:     in.RagioneSociale,
		CodiceFiscale:      in.CodiceFiscale,
		PartitaIVA:         in.PartitaIVA,
		Indirizzo:          in.Indirizzo,
		Citta:              in.Citta,
		Provincia:          in.Provincia,
		CAP:                in.CAP,
		PEC:                in.PEC,
		CodiceDestinatario: in.CodiceDestinatario,
		SplitPayment:       in.SplitPayment,
		Email:              in.Email,
		Telefono:           in.Telefono,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCommittenteResponse(c), nil
}

// GetByID ottiene un committente per ID.
func (uc *CommittenteUseCase) GetByID(id string) (*dto.CommittenteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCommittenteResponse(c), nil
}

// List elenca i committenti.
func (uc *CommittenteUseCase) List(page dto.PageRequest) ([]*dto.CommittenteResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CommittenteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCommittenteResponse(c))
	}
	return out, nil
}

// Update aggiorna un committente (campi nil invariati).
func (uc *CommittenteUseCase) Update(id string, in dto.UpdateCommittenteRequest) (*dto.CommittenteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	applica(&c.RagioneSociale, in.RagioneSociale)
	applica(&c.CodiceFiscale, in.CodiceFiscale)
	applica(&c.PartitaIVA, in.PartitaIVA)
	applica(&c.Indirizzo, in.Indirizzo)
	applica(&c.Citta, in.Citta)
	applica(&c.Provincia, in.Provincia)
	applica(&c.CAP, in.CAP)
	applica(&c.PEC, in.PEC)
	applica(&c.CodiceDestinatario, in.CodiceDestinatario)
	if in.SplitPayment != nil {
		c.SplitPayment = *in.SplitPayment
	}
	applica(&c.Email, in.Email)
	applica(&c.Telefono, in.Telefono)

	if c.PartitaIVA == "" && c.CodiceFiscale == "" {
		return nil, domain.ErrInvalidInput
	}
	if !fiscale.ValidaPartitaIVA(c.PartitaIVA).Valido {
		return nil, domain.ErrInvalidInput
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCommittenteResponse(c), nil
}

// Delete elimina un committente.
func (uc *CommittenteUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCommittenteResponse(c *entity.Committente) *dto.CommittenteResponse {
	return &dto.CommittenteResponse{
		ID:                 c.ID,
		RagioneSociale:     c.RagioneSociale,
		CodiceFiscale:      c.CodiceFiscale,
		PartitaIVA:         c.PartitaIVA,
		Indirizzo:          c.Indirizzo,
		Citta:              c.Citta,
		Provincia:          c.Provincia,
		CAP:                c.CAP,
		PEC:                c.PEC,
		CodiceDestinatario: c.CodiceDestinatario,
		SplitPayment:       c.SplitPayment,
		Email:              c.Email,
		Telefono:           c.Telefono,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
