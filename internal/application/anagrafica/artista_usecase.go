package anagrafica

import (
	"time"

	"github.com/google/uuid"

	"github.com/okestra/agibilita-api/internal/application/dto"
	"github.com/okestra/agibilita-api/internal/domain"
	"github.com/okestra/agibilita-api/internal/domain/artisti"
	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/repository"
	"github.com/okestra/agibilita-api/pkg/fiscale"
)

// ArtistaUseCase casi d'uso CRUD per il roster artisti, più controllo di
// completezza e calcolo del codice fiscale per i form.
type ArtistaUseCase struct {
	repo repository.ArtistaRepository
}

// NewArtistaUseCase costruisce il caso d'uso.
func NewArtistaUseCase(repo repository.ArtistaRepository) *ArtistaUseCase {
	return &ArtistaUseCase{repo: repo}
}

// Create inserisce un artista in roster. Gli identificativi fiscali, se
// presenti, devono superare la validazione strutturale.
func (uc *ArtistaUseCase) Create(in dto.CreateArtistaRequest) (*dto.ArtistaResponse, error) {
	if in.Nome == "" || in.Cognome == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validaIdentificativi(in.CodiceFiscale, in.PartitaIVA, in.IBAN); err != nil {
		return nil, err
	}
	if in.CodiceFiscale != "" {
		existing, _ := uc.repo.GetByCodiceFiscale(in.CodiceFiscale)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	a := &entity.Artista{
		ID:              uuid.New().String(),
		Nome:            in.Nome,
		Cognome:         in.Cognome,
		NomeDArte:       in.NomeDArte,
		Sesso:           in.Sesso,
		CodiceFiscale:   in.CodiceFiscale,
		PartitaIVA:      in.PartitaIVA,
		IBAN:            in.IBAN,
		DataNascita:     in.DataNascita,
		LuogoNascita:    in.LuogoNascita,
		Indirizzo:       in.Indirizzo,
		Citta:           in.Citta,
		TipoContratto:   in.TipoContratto,
		ExtraUE:         in.ExtraUE,
		DocumentoEstero: in.DocumentoEstero,
		Nazionalita:     in.Nazionalita,
		Email:           in.Email,
		Telefono:        in.Telefono,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toArtistaResponse(a), nil
}

// GetByID ottiene un artista per ID.
func (uc *ArtistaUseCase) GetByID(id string) (*dto.ArtistaResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toArtistaResponse(a), nil
}

// List elenca il roster; con testo non vuoto filtra per nome, cognome o
// nome d'arte.
func (uc *ArtistaUseCase) List(testo string, page dto.PageRequest) ([]*dto.ArtistaResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Artista
		err  error
	)
	if testo != "" {
		list, err = uc.repo.Search(testo, page.Limit, page.Offset)
	} else {
		list, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ArtistaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toArtistaResponse(a))
	}
	return out, nil
}

// Update aggiorna un artista (campi nil invariati).
func (uc *ArtistaUseCase) Update(id string, in dto.UpdateArtistaRequest) (*dto.ArtistaResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	applica(&a.Nome, in.Nome)
	applica(&a.Cognome, in.Cognome)
	applica(&a.NomeDArte, in.NomeDArte)
	applica(&a.Sesso, in.Sesso)
	applica(&a.CodiceFiscale, in.CodiceFiscale)
	applica(&a.PartitaIVA, in.PartitaIVA)
	applica(&a.IBAN, in.IBAN)
	if in.DataNascita != nil {
		a.DataNascita = in.DataNascita
	}
	applica(&a.LuogoNascita, in.LuogoNascita)
	applica(&a.Indirizzo, in.Indirizzo)
	applica(&a.Citta, in.Citta)
	applica(&a.TipoContratto, in.TipoContratto)
	if in.ExtraUE != nil {
		a.ExtraUE = *in.ExtraUE
	}
	applica(&a.DocumentoEstero, in.DocumentoEstero)
	applica(&a.Nazionalita, in.Nazionalita)
	applica(&a.Email, in.Email)
	applica(&a.Telefono, in.Telefono)

	if err := validaIdentificativi(a.CodiceFiscale, a.PartitaIVA, a.IBAN); err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toArtistaResponse(a), nil
}

// Delete elimina un artista dal roster.
func (uc *ArtistaUseCase) Delete(id string) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Completezza verifica quali campi anagrafici mancano per l'agibilità.
func (uc *ArtistaUseCase) Completezza(id string) (*artisti.Completezza, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	c := artisti.VerificaCompletezza(a)
	return &c, nil
}

// CalcolaCodiceFiscale deriva il codice fiscale dai dati anagrafici, per il
// precompilamento dei form.
func (uc *ArtistaUseCase) CalcolaCodiceFiscale(in dto.CalcolaCodiceFiscaleRequest) (*dto.CalcolaCodiceFiscaleResponse, error) {
	cf, err := fiscale.CalcolaCodiceFiscale(fiscale.DatiAnagrafici{
		Cognome:         in.Cognome,
		Nome:            in.Nome,
		Sesso:           in.Sesso,
		DataNascita:     in.DataNascita,
		CodiceCatastale: in.CodiceCatastale,
	})
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &dto.CalcolaCodiceFiscaleResponse{CodiceFiscale: cf}, nil
}

// validaIdentificativi applica le validazioni strutturali ai campi fiscali
// facoltativi: si rifiutano solo valori presenti e malformati.
func validaIdentificativi(cf, piva, iban string) error {
	if cf != "" && !fiscale.ValidaCodiceFiscale(cf).Valido {
		return domain.ErrInvalidInput
	}
	if !fiscale.ValidaPartitaIVA(piva).Valido {
		return domain.ErrInvalidInput
	}
	if iban != "" && !fiscale.ValidaIBAN(iban).Valido {
		return domain.ErrInvalidInput
	}
	return nil
}

func applica(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func toArtistaResponse(a *entity.Artista) *dto.ArtistaResponse {
	return &dto.ArtistaResponse{
		ID:              a.ID,
		Nome:            a.Nome,
		Cognome:         a.Cognome,
		NomeDArte:       a.NomeDArte,
		Sesso:           a.Sesso,
		CodiceFiscale:   a.CodiceFiscale,
		PartitaIVA:      a.PartitaIVA,
		IBAN:            a.IBAN,
		DataNascita:     a.DataNascita,
		LuogoNascita:    a.LuogoNascita,
		Indirizzo:       a.Indirizzo,
		Citta:           a.Citta,
		TipoContratto:   a.TipoContratto,
		ExtraUE:         a.ExtraUE,
		DocumentoEstero: a.DocumentoEstero,
		Nazionalita:     a.Nazionalita,
		Email:           a.Email,
		Telefono:        a.Telefono,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
