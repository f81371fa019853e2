package sdi

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/pkg/config"
)

func contestoFattura() *FatturaBuildContext {
	return &FatturaBuildContext{
		Fattura: &entity.Fattura{
			ID:            "f-1",
			CommittenteID: "c-1",
			Numero:        12,
			Anno:          2026,
			Data:          time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			ModalitaRighe: entity.RigheDirittiInclusi,
			Imponibile:    decimal.RequireFromString("290.00"),
			IVA:           decimal.RequireFromString("63.80"),
			Totale:        decimal.RequireFromString("353.80"),
			AliquotaIVA:   decimal.NewFromInt(22),
		},
		Righe: []entity.FatturaRiga{
			{
				Numero:         1,
				Descrizione:    "Mario Rossi — compenso e gestione pratica",
				Quantita:       decimal.NewFromInt(2),
				PrezzoUnitario: decimal.RequireFromString("145.00"),
				Totale:         decimal.RequireFromString("290.00"),
				AliquotaIVA:    decimal.NewFromInt(22),
			},
		},
		Committente: &entity.Committente{
			RagioneSociale:     "Comune di Esempio",
			PartitaIVA:         "12345678903",
			Indirizzo:          "Piazza Municipio 1",
			CAP:                "20100",
			Citta:              "Milano",
			Provincia:          "MI",
			CodiceDestinatario: "ABC1234",
		},
		Agenzia: config.AgenziaConfig{
			RagioneSociale: "Okestra Srl",
			PartitaIVA:     "00743110157",
			Indirizzo:      "Via Verdi 10",
			CAP:            "20121",
			Citta:          "Milano",
			Provincia:      "MI",
			RegimeFiscale:  "RF01",
		},
		SDI: config.SDIConfig{
			IDTrasmittente:      "00743110157",
			PaeseTrasmittente:   "IT",
			FormatoTrasmissione: "FPR12",
		},
	}
}

func TestFatturaPABuilder_Build(t *testing.T) {
	b := NewFatturaPABuilder()
	out, err := b.Build(contestoFattura())
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `versione="FPR12"`)
	assert.Contains(t, xml, "<Numero>12/2026</Numero>")
	assert.Contains(t, xml, "<Data>2026-08-28</Data>")
	assert.Contains(t, xml, "<CodiceDestinatario>ABC1234</CodiceDestinatario>")
	assert.Contains(t, xml, "<ImponibileImporto>290.00</ImponibileImporto>")
	assert.Contains(t, xml, "<Imposta>63.80</Imposta>")
	assert.Contains(t, xml, "<EsigibilitaIVA>I</EsigibilitaIVA>")
	// ImportoTotaleDocumento resta imponibile + imposta anche senza split.
	assert.Contains(t, xml, "<ImportoTotaleDocumento>353.80</ImportoTotaleDocumento>")
	assert.Contains(t, xml, "<Denominazione>Okestra Srl</Denominazione>")
	assert.Contains(t, xml, "<Denominazione>Comune di Esempio</Denominazione>")
}

func TestFatturaPABuilder_SplitPayment(t *testing.T) {
	ctx := contestoFattura()
	ctx.Fattura.SplitPayment = true
	ctx.Fattura.Totale = ctx.Fattura.Imponibile

	out, err := NewFatturaPABuilder().Build(ctx)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<EsigibilitaIVA>S</EsigibilitaIVA>")
	// L'importo totale documento include comunque l'imposta.
	assert.Contains(t, xml, "<ImportoTotaleDocumento>353.80</ImportoTotaleDocumento>")
}

func TestFatturaPABuilder_RecapitoPEC(t *testing.T) {
	ctx := contestoFattura()
	ctx.Committente.CodiceDestinatario = ""
	ctx.Committente.PEC = "comune@pec.example.it"

	out, err := NewFatturaPABuilder().Build(ctx)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<CodiceDestinatario>0000000</CodiceDestinatario>")
	assert.Contains(t, xml, "<PECDestinatario>comune@pec.example.it</PECDestinatario>")
}

func TestFatturaPABuilder_SenzaRighe(t *testing.T) {
	ctx := contestoFattura()
	ctx.Righe = nil

	_, err := NewFatturaPABuilder().Build(ctx)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "senza righe"))
}

func TestEasyfattExporter_Export(t *testing.T) {
	ctx := contestoFattura()
	out, err := NewEasyfattExporter().Export([]DocumentoExport{{
		Fattura:     ctx.Fattura,
		Righe:       ctx.Righe,
		Committente: ctx.Committente,
	}})
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<EasyfattDocuments")
	assert.Contains(t, xml, "<CustomerName>Comune di Esempio</CustomerName>")
	assert.Contains(t, xml, "<Number>12/2026</Number>")
	assert.Contains(t, xml, "<Total>353.80</Total>")
	assert.Contains(t, xml, "<VatCode>22</VatCode>")
}
