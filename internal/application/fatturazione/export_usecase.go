package fatturazione

import (
	"context"
	"fmt"

	"github.com/okestra/agibilita-api/internal/application/dto"
	"github.com/okestra/agibilita-api/internal/domain"
	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/internal/domain/repository"
	"github.com/okestra/agibilita-api/internal/infrastructure/pdf"
	"github.com/okestra/agibilita-api/internal/infrastructure/sdi"
	"github.com/okestra/agibilita-api/pkg/config"
)

// ExportUseCase consultazione ed esportazione delle fatture emesse:
// XML FatturaPA, copia di cortesia PDF e tracciato Easyfatt.
type ExportUseCase struct {
	fatturaRepo     repository.FatturaRepository
	committenteRepo repository.CommittenteRepository
	pdfGenerator    *pdf.MarotoPDFGenerator
	easyfatt        *sdi.EasyfattExporter
	agenzia         config.AgenziaConfig
}

// NewExportUseCase costruisce il caso d'uso.
func NewExportUseCase(
	fatturaRepo repository.FatturaRepository,
	committenteRepo repository.CommittenteRepository,
	pdfGenerator *pdf.MarotoPDFGenerator,
	easyfatt *sdi.EasyfattExporter,
	agenzia config.AgenziaConfig,
) *ExportUseCase {
	return &ExportUseCase{
		fatturaRepo:     fatturaRepo,
		committenteRepo: committenteRepo,
		pdfGenerator:    pdfGenerator,
		easyfatt:        easyfatt,
		agenzia:         agenzia,
	}
}

// GetByID ottiene una fattura con le sue righe.
func (uc *ExportUseCase) GetByID(id string) (*dto.FatturaResponse, error) {
	f, righe, err := uc.carica(id)
	if err != nil {
		return nil, err
	}
	return toFatturaResponse(f, righe), nil
}

// List elenca le fatture, opzionalmente per anno (0 = tutte).
func (uc *ExportUseCase) List(anno int, page dto.PageRequest) ([]*dto.FatturaResponse, error) {
	page.DefaultPage()
	list, err := uc.fatturaRepo.List(anno, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FatturaResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toFatturaResponse(f, nil))
	}
	return out, nil
}

// XML restituisce il file FatturaPA salvato in emissione, con il nome file
// nel formato previsto dallo SDI (IT + partita IVA + progressivo).
func (uc *ExportUseCase) XML(id string) ([]byte, string, error) {
	f, _, err := uc.carica(id)
	if err != nil {
		return nil, "", err
	}
	if f.XML == "" {
		return nil, "", domain.ErrConflict
	}
	nome := fmt.Sprintf("IT%s_%05d.xml", uc.agenzia.PartitaIVA, f.Numero)
	return []byte(f.XML), nome, nil
}

// PDF genera la copia di cortesia della fattura.
func (uc *ExportUseCase) PDF(ctx context.Context, id string) ([]byte, error) {
	f, righe, err := uc.carica(id)
	if err != nil {
		return nil, err
	}
	committente, err := uc.committenteRepo.GetByID(f.CommittenteID)
	if err != nil {
		return nil, err
	}
	if committente == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGenerator.GeneraFatturaPDF(ctx, f, righe, committente, uc.agenzia)
}

// Easyfatt esporta tutte le fatture di un anno nel tracciato Danea.
func (uc *ExportUseCase) Easyfatt(anno int) ([]byte, error) {
	if anno <= 0 {
		return nil, domain.ErrInvalidInput
	}
	// Tutte le fatture dell'anno, senza paginazione: l'export è annuale.
	list, err := uc.fatturaRepo.List(anno, 10000, 0)
	if err != nil {
		return nil, err
	}
	documenti := make([]sdi.DocumentoExport, 0, len(list))
	for _, f := range list {
		righe, err := uc.fatturaRepo.GetRigheByFatturaID(f.ID)
		if err != nil {
			return nil, err
		}
		committente, err := uc.committenteRepo.GetByID(f.CommittenteID)
		if err != nil {
			return nil, err
		}
		if committente == nil {
			return nil, domain.ErrNotFound
		}
		documenti = append(documenti, sdi.DocumentoExport{
			Fattura:     f,
			Righe:       righe,
			Committente: committente,
		})
	}
	return uc.easyfatt.Export(documenti)
}

func (uc *ExportUseCase) carica(id string) (*entity.Fattura, []entity.FatturaRiga, error) {
	f, err := uc.fatturaRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return nil, nil, domain.ErrNotFound
	}
	righe, err := uc.fatturaRepo.GetRigheByFatturaID(f.ID)
	if err != nil {
		return nil, nil, err
	}
	return f, righe, nil
}
