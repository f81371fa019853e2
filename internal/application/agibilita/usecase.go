package agibilita

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/okestra/agibilita-api/internal/application/dto"
	"github.com/okestra/agibilita-api/internal/domain"
	"github.com/okestra/agibilita-api/internal/domain/compensi"
	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/repository"
)

// UseCase gestisce il ciclo di vita delle pratiche di agibilità:
// apertura, invio, chiusura e anteprima dei compensi.
type UseCase struct {
	repo            repository.AgibilitaRepository
	artistaRepo     repository.ArtistaRepository
	localeRepo      repository.LocaleRepository
	committenteRepo repository.CommittenteRepository
}

// NewUseCase costruisce il caso d'uso.
func NewUseCase(
	repo repository.AgibilitaRepository,
	artistaRepo repository.ArtistaRepository,
	localeRepo repository.LocaleRepository,
	committenteRepo repository.CommittenteRepository,
) *UseCase {
	return &UseCase{
		repo:            repo,
		artistaRepo:     artistaRepo,
		localeRepo:      localeRepo,
		committenteRepo: committenteRepo,
	}
}

// Create apre una pratica in stato BOZZA. Committente, locale e tutti gli
// artisti devono esistere; i netti negativi vengono rifiutati.
func (uc *UseCase) Create(in dto.CreateAgibilitaRequest) (*dto.AgibilitaResponse, error) {
	if in.CommittenteID == "" || in.LocaleID == "" || len(in.Artisti) == 0 {
		return nil, domain.ErrInvalidInput
	}
	committente, err := uc.committenteRepo.GetByID(in.CommittenteID)
	if err != nil || committente == nil {
		return nil, domain.ErrNotFound
	}
	locale, err := uc.localeRepo.GetByID(in.LocaleID)
	if err != nil || locale == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	a := &entity.Agibilita{
		ID:            uuid.New().String(),
		CommittenteID: in.CommittenteID,
		LocaleID:      in.LocaleID,
		DataEvento:    in.DataEvento,
		Descrizione:   in.Descrizione,
		Stato:         entity.AgibilitaBozza,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, art := range in.Artisti {
		if art.Netto.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		artista, err := uc.artistaRepo.GetByID(art.ArtistaID)
		if err != nil || artista == nil {
			return nil, domain.ErrNotFound
		}
		a.Artisti = append(a.Artisti, entity.AgibilitaArtista{
			ID:          uuid.New().String(),
			AgibilitaID: a.ID,
			ArtistaID:   art.ArtistaID,
			Netto:       art.Netto.Round(2),
			Lordo:       decimal.Zero,
			Ritenuta:    decimal.Zero,
		})
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAgibilitaResponse(a), nil
}

// GetByID ottiene una pratica per ID.
func (uc *UseCase) GetByID(id string) (*dto.AgibilitaResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAgibilitaResponse(a), nil
}

// List elenca le pratiche, opzionalmente per stato.
func (uc *UseCase) List(stato string, page dto.PageRequest) ([]*dto.AgibilitaResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(stato, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AgibilitaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAgibilitaResponse(a))
	}
	return out, nil
}

// Invia marca la pratica come trasmessa all'INPS. Solo le bozze si inviano.
func (uc *UseCase) Invia(id string) (*dto.AgibilitaResponse, error) {
	return uc.transizione(id, entity.AgibilitaBozza, entity.AgibilitaInviata)
}

// Chiudi marca l'evento come svolto: la pratica diventa fatturabile.
func (uc *UseCase) Chiudi(id string) (*dto.AgibilitaResponse, error) {
	return uc.transizione(id, entity.AgibilitaInviata, entity.AgibilitaChiusa)
}

func (uc *UseCase) transizione(id, da, a string) (*dto.AgibilitaResponse, error) {
	pratica, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pratica == nil {
		return nil, domain.ErrNotFound
	}
	if pratica.Stato == entity.AgibilitaFatturata {
		return nil, domain.ErrAgibilitaChiusa
	}
	if pratica.Stato != da {
		return nil, domain.ErrConflict
	}
	pratica.Stato = a
	pratica.UpdatedAt = time.Now()
	if err := uc.repo.Update(pratica); err != nil {
		return nil, err
	}
	return toAgibilitaResponse(pratica), nil
}

// AnteprimaCompensi calcola lordo e ritenuta per ogni artista della pratica
// senza persistere nulla: serve ai preventivi prima dell'emissione.
func (uc *UseCase) AnteprimaCompensi(id string) (*dto.CompensiPreviewResponse, error) {
	pratica, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pratica == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.CompensiPreviewResponse{
		AgibilitaID:    pratica.ID,
		TotaleNetto:    decimal.Zero,
		TotaleLordo:    decimal.Zero,
		TotaleRitenute: decimal.Zero,
	}
	for _, aa := range pratica.Artisti {
		artista, err := uc.artistaRepo.GetByID(aa.ArtistaID)
		if err != nil || artista == nil {
			return nil, domain.ErrNotFound
		}
		c := compensi.Calcola(compensi.Input{
			Netto:         aa.Netto,
			TipoContratto: artista.TipoContratto,
			PartitaIVA:    artista.HaPartitaIVA(),
		})
		out.Compensi = append(out.Compensi, dto.CompensoArtistaResponse{
			ArtistaID:     artista.ID,
			NomeInFattura: artista.NomeInFattura(),
			TipoContratto: artista.TipoContratto,
			Netto:         c.Netto,
			Lordo:         c.Lordo,
			Ritenuta:      c.Ritenuta,
		})
		out.TotaleNetto = out.TotaleNetto.Add(c.Netto)
		out.TotaleLordo = out.TotaleLordo.Add(c.Lordo)
		out.TotaleRitenute = out.TotaleRitenute.Add(c.Ritenuta)
	}
	return out, nil
}

func toAgibilitaResponse(a *entity.Agibilita) *dto.AgibilitaResponse {
	out := &dto.AgibilitaResponse{
		ID:            a.ID,
		CommittenteID: a.CommittenteID,
		LocaleID:      a.LocaleID,
		DataEvento:    a.DataEvento,
		Descrizione:   a.Descrizione,
		Stato:         a.Stato,
		FatturaID:     a.FatturaID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	for _, aa := range a.Artisti {
		out.Artisti = append(out.Artisti, dto.AgibilitaArtistaResponse{
			ID:        aa.ID,
			ArtistaID: aa.ArtistaID,
			Netto:     aa.Netto,
			Lordo:     aa.Lordo,
			Ritenuta:  aa.Ritenuta,
		})
	}
	return out
}
