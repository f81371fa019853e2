package fatturazione

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/okestra/agibilita-api/internal/application/dto"
	"github.com/okestra/agibilita-api/internal/domain"
	"github.com/okestra/agibilita-api/internal/domain/compensi"
	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/fatture"
	"github.com/okestra/agibilita-api/internal/domain/repository"
	"github.com/okestra/agibilita-api/internal/infrastructure/sdi"
	"github.com/okestra/agibilita-api/pkg/config"
)

// AliquotaIVADefault è l'IVA ordinaria applicata alle prestazioni di agenzia.
var AliquotaIVADefault = decimal.NewFromInt(22)

// EmettiFatturaUseCase emette una fattura da una o più agibilità chiuse:
// calcola i lordi per artista, genera le righe secondo la modalità scelta,
// persiste tutto in transazione e produce il file FatturaPA.
type EmettiFatturaUseCase struct {
	txRunner        TxRunner
	committenteRepo repository.CommittenteRepository
	agibilitaRepo   repository.AgibilitaRepository
	artistaRepo     repository.ArtistaRepository
	fatturaRepo     repository.FatturaRepository
	xmlBuilder      *sdi.FatturaPABuilder
	agenzia         config.AgenziaConfig
	sdiCfg          config.SDIConfig
}

// NewEmettiFatturaUseCase costruisce il caso d'uso.
func NewEmettiFatturaUseCase(
	txRunner TxRunner,
	committenteRepo repository.CommittenteRepository,
	agibilitaRepo repository.AgibilitaRepository,
	artistaRepo repository.ArtistaRepository,
	fatturaRepo repository.FatturaRepository,
	xmlBuilder *sdi.FatturaPABuilder,
	agenzia config.AgenziaConfig,
	sdiCfg config.SDIConfig,
) *EmettiFatturaUseCase {
	return &EmettiFatturaUseCase{
		txRunner:        txRunner,
		committenteRepo: committenteRepo,
		agibilitaRepo:   agibilitaRepo,
		artistaRepo:     artistaRepo,
		fatturaRepo:     fatturaRepo,
		xmlBuilder:      xmlBuilder,
		agenzia:         agenzia,
		sdiCfg:          sdiCfg,
	}
}

// EmettiFattura esegue l'emissione completa.
//
// Le agibilità devono essere in stato CHIUSA e appartenere tutte al
// committente indicato: una pratica già fatturata produce ErrAgibilitaChiusa,
// una nello stato sbagliato ErrConflict. L'ordine delle righe segue l'ordine
// delle agibilità nella richiesta.
func (uc *EmettiFatturaUseCase) EmettiFattura(ctx context.Context, in dto.EmettiFatturaRequest) (*dto.FatturaResponse, error) {
	if in.CommittenteID == "" || len(in.AgibilitaIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	committente, err := uc.committenteRepo.GetByID(in.CommittenteID)
	if err != nil {
		return nil, err
	}
	if committente == nil {
		return nil, domain.ErrNotFound
	}

	pratiche, err := uc.agibilitaRepo.ListByIDs(in.AgibilitaIDs)
	if err != nil {
		return nil, err
	}
	if len(pratiche) != len(in.AgibilitaIDs) {
		return nil, domain.ErrNotFound
	}
	for _, p := range pratiche {
		if p.CommittenteID != in.CommittenteID {
			return nil, domain.ErrForbidden
		}
		if p.Stato == entity.AgibilitaFatturata {
			return nil, domain.ErrAgibilitaChiusa
		}
		if p.Stato != entity.AgibilitaChiusa {
			return nil, domain.ErrConflict
		}
	}

	// Lordi per artista (fuori transazione, sola lettura).
	eventi, err := uc.preparaEventi(pratiche)
	if err != nil {
		return nil, err
	}

	aliquota := in.AliquotaIVA
	if aliquota.IsZero() {
		aliquota = AliquotaIVADefault
	}
	modalita := in.Modalita
	if modalita == "" {
		modalita = entity.RigheDirittiInclusi
	}

	esito := fatture.GeneraRighe(fatture.Parametri{
		Modalita:            modalita,
		Eventi:              eventi,
		DirittiPerArtista:   in.DirittiPerArtista,
		AliquotaIVA:         aliquota,
		SplitPayment:        committente.SplitPayment,
		DescrizioneGenerica: in.DescrizioneGenerica,
	})
	if len(esito.Righe) == 0 {
		return nil, domain.ErrInvalidInput
	}

	data := time.Now()
	if in.Data != nil {
		data = *in.Data
	}
	now := time.Now()
	f := &entity.Fattura{
		ID:            uuid.New().String(),
		CommittenteID: committente.ID,
		Data:          data,
		ModalitaRighe: modalita,
		Imponibile:    esito.Imponibile,
		IVA:           esito.IVA,
		Totale:        esito.Totale,
		AliquotaIVA:   aliquota,
		SplitPayment:  committente.SplitPayment,
		SDIStato:      entity.SDIStatoBozza,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := fatture.ValidaFattura(f, esito.Righe, committente); err != nil {
		return nil, err
	}

	err = uc.txRunner.RunEmissione(ctx, func(
		fatturaRepo repository.FatturaRepository,
		agibilitaRepo repository.AgibilitaRepository,
	) error {
		numero, err := fatturaRepo.ProssimoNumero(data.Year())
		if err != nil {
			return err
		}
		f.Numero = numero
		f.Anno = data.Year()

		// L'XML incorpora la numerazione: si genera dopo averla riservata.
		xml, err := uc.xmlBuilder.Build(&sdi.FatturaBuildContext{
			Fattura:     f,
			Righe:       esito.Righe,
			Committente: committente,
			Agenzia:     uc.agenzia,
			SDI:         uc.sdiCfg,
		})
		if err != nil {
			return err
		}
		f.XML = string(xml)
		f.SDIStato = entity.SDIStatoGenerata

		if err := fatturaRepo.Create(f); err != nil {
			return err
		}
		for i := range esito.Righe {
			riga := esito.Righe[i]
			riga.ID = uuid.New().String()
			riga.FatturaID = f.ID
			if err := fatturaRepo.CreateRiga(&riga); err != nil {
				return err
			}
		}
		for _, p := range pratiche {
			p.Stato = entity.AgibilitaFatturata
			p.FatturaID = f.ID
			p.UpdatedAt = now
			if err := agibilitaRepo.Update(p); err != nil {
				return err
			}
			for i := range p.Artisti {
				if err := agibilitaRepo.UpdateArtista(&p.Artisti[i]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("fattura_id", f.ID).
		Str("numerazione", f.Numerazione()).
		Str("committente_id", committente.ID).
		Int("righe", len(esito.Righe)).
		Msg("fattura emessa")

	return toFatturaResponse(f, esito.Righe), nil
}

// preparaEventi traduce le agibilità in eventi fatturabili calcolando il
// lordo di ogni artista e denormalizzandolo sulla partecipazione.
func (uc *EmettiFatturaUseCase) preparaEventi(pratiche []*entity.Agibilita) ([]fatture.Evento, error) {
	eventi := make([]fatture.Evento, 0, len(pratiche))
	for _, p := range pratiche {
		ev := fatture.Evento{Descrizione: p.Descrizione}
		for i := range p.Artisti {
			aa := &p.Artisti[i]
			artista, err := uc.artistaRepo.GetByID(aa.ArtistaID)
			if err != nil {
				return nil, err
			}
			if artista == nil {
				return nil, domain.ErrNotFound
			}
			c := compensi.Calcola(compensi.Input{
				Netto:         aa.Netto,
				TipoContratto: artista.TipoContratto,
				PartitaIVA:    artista.HaPartitaIVA(),
			})
			aa.Lordo = c.Lordo
			aa.Ritenuta = c.Ritenuta
			ev.Partecipazioni = append(ev.Partecipazioni, fatture.Partecipazione{
				NomeArtista: artista.NomeInFattura(),
				Lordo:       c.Lordo,
			})
		}
		eventi = append(eventi, ev)
	}
	return eventi, nil
}

func toFatturaResponse(f *entity.Fattura, righe []entity.FatturaRiga) *dto.FatturaResponse {
	out := &dto.FatturaResponse{
		ID:            f.ID,
		CommittenteID: f.CommittenteID,
		Numero:        f.Numero,
		Anno:          f.Anno,
		Numerazione:   f.Numerazione(),
		Data:          f.Data,
		ModalitaRighe: f.ModalitaRighe,
		Imponibile:    f.Imponibile,
		IVA:           f.IVA,
		Totale:        f.Totale,
		AliquotaIVA:   f.AliquotaIVA,
		SplitPayment:  f.SplitPayment,
		SDIStato:      f.SDIStato,
		CreatedAt:     f.CreatedAt,
	}
	for _, r := range righe {
		out.Righe = append(out.Righe, dto.FatturaRigaResponse{
			Numero:         r.Numero,
			Descrizione:    r.Descrizione,
			Quantita:       r.Quantita,
			PrezzoUnitario: r.PrezzoUnitario,
			Totale:         r.Totale,
			AliquotaIVA:    r.AliquotaIVA,
		})
	}
	return out
}
