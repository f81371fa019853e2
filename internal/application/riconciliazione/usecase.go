package riconciliazione

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/okestra/agibilita-api/internal/application/dto"
	"github.com/okestra/agibilita-api/internal/domain"
	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/repository"
	"github.com/okestra/agibilita-api/internal/domain/riconciliazione"
)

// UseCase riconcilia i movimenti bancari importati con le fatture emesse:
// import del lotto, suggerimenti di abbinamento e conferma manuale.
type UseCase struct {
	txRunner      TxRunner
	movimentoRepo repository.MovimentoBancarioRepository
	fatturaRepo   repository.FatturaRepository
}

// NewUseCase costruisce il caso d'uso.
func NewUseCase(
	txRunner TxRunner,
	movimentoRepo repository.MovimentoBancarioRepository,
	fatturaRepo repository.FatturaRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		movimentoRepo: movimentoRepo,
		fatturaRepo:   fatturaRepo,
	}
}

// ImportaMovimenti inserisce un lotto di righe di estratto conto in stato
// DA_RICONCILIARE. I movimenti in uscita (importo non positivo) si ignorano:
// qui si riconciliano solo gli incassi.
func (uc *UseCase) ImportaMovimenti(in dto.ImportaMovimentiRequest) ([]*dto.MovimentoResponse, error) {
	if len(in.Movimenti) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	batch := make([]*entity.MovimentoBancario, 0, len(in.Movimenti))
	for _, m := range in.Movimenti {
		if !m.Importo.IsPositive() {
			continue
		}
		batch = append(batch, &entity.MovimentoBancario{
			ID:          uuid.New().String(),
			Data:        m.Data,
			Importo:     m.Importo.Round(2),
			Descrizione: m.Descrizione,
			Stato:       entity.MovimentoDaRiconciliare,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if len(batch) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.movimentoRepo.CreateBatch(batch); err != nil {
		return nil, err
	}
	log.Info().Int("movimenti", len(batch)).Msg("estratto conto importato")

	out := make([]*dto.MovimentoResponse, 0, len(batch))
	for _, m := range batch {
		out = append(out, toMovimentoResponse(m))
	}
	return out, nil
}

// List elenca i movimenti, opzionalmente per stato.
func (uc *UseCase) List(stato string, page dto.PageRequest) ([]*dto.MovimentoResponse, error) {
	page.DefaultPage()
	list, err := uc.movimentoRepo.ListByStato(stato, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimentoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovimentoResponse(m))
	}
	return out, nil
}

// Suggerimenti valuta i movimenti da riconciliare contro le fatture non
// ancora incassate e propone le candidate ordinate per confidenza.
func (uc *UseCase) Suggerimenti() ([]riconciliazione.Suggerimento, error) {
	movimenti, err := uc.movimentoRepo.ListByStato(entity.MovimentoDaRiconciliare, 1000, 0)
	if err != nil {
		return nil, err
	}
	fatture, err := uc.fatturaRepo.ListNonIncassate()
	if err != nil {
		return nil, err
	}

	aperte := make([]riconciliazione.FatturaAperta, 0, len(fatture))
	for _, f := range fatture {
		aperte = append(aperte, riconciliazione.FatturaAperta{
			ID:          f.ID,
			Numerazione: f.Numerazione(),
			Totale:      f.Totale,
			Data:        f.Data,
		})
	}
	input := make([]entity.MovimentoBancario, 0, len(movimenti))
	for _, m := range movimenti {
		input = append(input, *m)
	}
	return riconciliazione.SuggerisciAbbinamenti(input, aperte), nil
}

// ConfermaAbbinamento lega un movimento a una fattura. Solo i movimenti in
// stato DA_RICONCILIARE si possono abbinare.
func (uc *UseCase) ConfermaAbbinamento(ctx context.Context, movimentoID, fatturaID string) (*dto.MovimentoResponse, error) {
	if movimentoID == "" || fatturaID == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.MovimentoResponse
	err := uc.txRunner.RunAbbinamento(ctx, func(
		movimentoRepo repository.MovimentoBancarioRepository,
		fatturaRepo repository.FatturaRepository,
	) error {
		m, err := movimentoRepo.GetByID(movimentoID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		if m.Stato != entity.MovimentoDaRiconciliare {
			return domain.ErrConflict
		}
		f, err := fatturaRepo.GetByID(fatturaID)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.ErrNotFound
		}
		m.Stato = entity.MovimentoRiconciliato
		m.FatturaID = f.ID
		m.UpdatedAt = time.Now()
		if err := movimentoRepo.Update(m); err != nil {
			return err
		}
		out = toMovimentoResponse(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("movimento_id", movimentoID).Str("fattura_id", fatturaID).Msg("movimento riconciliato")
	return out, nil
}

// Ignora marca un movimento come non pertinente (commissioni, giroconti).
func (uc *UseCase) Ignora(movimentoID string) (*dto.MovimentoResponse, error) {
	m, err := uc.movimentoRepo.GetByID(movimentoID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.Stato == entity.MovimentoRiconciliato {
		return nil, domain.ErrConflict
	}
	m.Stato = entity.MovimentoIgnorato
	m.UpdatedAt = time.Now()
	if err := uc.movimentoRepo.Update(m); err != nil {
		return nil, err
	}
	return toMovimentoResponse(m), nil
}

func toMovimentoResponse(m *entity.MovimentoBancario) *dto.MovimentoResponse {
	return &dto.MovimentoResponse{
		ID:          m.ID,
		Data:        m.Data,
		Importo:     m.Importo,
		Descrizione: m.Descrizione,
		Stato:       m.Stato,
		FatturaID:   m.FatturaID,
	}
}
