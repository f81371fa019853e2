// Package pdf genera la copia di cortesia in PDF della fattura elettronica.
// Non sostituisce il file XML FatturaPA (l'originale fiscale resta quello
// trasmesso allo SDI): è il documento leggibile inviato al committente.
//
// Layout della pagina A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ragione sociale + P.IVA  │  N° fattura + data      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMITTENTE: indirizzo agenzia                                │
//	│  COMMITTENTE: ragione sociale + P.IVA/CF + recapito SDI      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELLA: N. | Descrizione | Qtà | Prezzo unit. | Importo    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALI: Imponibile / IVA / TOTALE DOCUMENTO                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota split payment + dicitura copia di cortesia     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/pkg/config"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorePrimario = &props.Color{Red: 127, Green: 29, Blue: 43}
	coloreGrigio   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator produce la copia di cortesia con Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator costruisce il generatore.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneraFatturaPDF genera il PDF e ne restituisce i byte.
func (g *MarotoPDFGenerator) GeneraFatturaPDF(
	_ context.Context,
	fattura *entity.Fattura,
	righe []entity.FatturaRiga,
	committente *entity.Committente,
	agenzia config.AgenziaConfig,
) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fattura "+fattura.Numerazione(), true).
		WithAuthor(agenzia.RagioneSociale, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(rigaIntestazione(fattura, agenzia))
	m.AddRows(line.NewRow(1, props.Line{Color: colorePrimario, Thickness: 0.5}))
	m.AddRows(rigaEmittente(agenzia))
	m.AddRows(rigaCommittente(committente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorePrimario, Thickness: 0.3}))

	m.AddRows(rigaIntestazioneTabella())
	for _, r := range righeTabella(righe) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorePrimario, Thickness: 0.3}))
	m.AddRows(rigaTotali(fattura))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: coloreGrigio, Thickness: 0.3}))
	for _, r := range righeFooter(fattura) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generazione documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sezioni ───────────────────────────────────────────────────────────────────

// rigaIntestazione: ragione sociale + P.IVA (sx), numero fattura e data (dx).
func rigaIntestazione(fattura *entity.Fattura, agenzia config.AgenziaConfig) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(agenzia.RagioneSociale, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorePrimario, Top: 1,
			}),
			text.New("P.IVA: "+agenzia.PartitaIVA, props.Text{
				Size: 9, Top: 9, Color: coloreGrigio,
			}),
		),
		col.New(5).Add(
			text.New("FATTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorePrimario, Top: 1,
			}),
			text.New(fattura.Numerazione(), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+fattura.Data.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: coloreGrigio,
			}),
		),
	)
}

func rigaEmittente(agenzia config.AgenziaConfig) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("EMITTENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorePrimario, Top: 1,
			}),
			text.New(fmt.Sprintf("%s, %s %s (%s)",
				agenzia.Indirizzo, agenzia.CAP, agenzia.Citta, agenzia.Provincia,
			), props.Text{Size: 8, Top: 7, Color: coloreGrigio}),
		),
	)
}

func rigaCommittente(c *entity.Committente) core.Row {
	identificativo := c.PartitaIVA
	if identificativo == "" {
		identificativo = c.CodiceFiscale
	}
	recapito := c.CodiceDestinatario
	if recapito == "" {
		recapito = c.PEC
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("COMMITTENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorePrimario, Top: 1,
			}),
			text.New(c.RagioneSociale, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("P.IVA/CF: %s   |   Recapito SDI: %s",
				nonVuoto(identificativo, "-"),
				nonVuoto(recapito, "-"),
			), props.Text{Size: 8, Top: 12, Color: coloreGrigio}),
		),
	)
}

func rigaIntestazioneTabella() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorePrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N.", 1, align.Center),
		h("Descrizione", 6, align.Left),
		h("Qtà", 1, align.Center),
		h("Prezzo unit.", 2, align.Right),
		h("Importo", 2, align.Right),
	)
}

func righeTabella(righe []entity.FatturaRiga) []core.Row {
	result := make([]core.Row, 0, len(righe))
	for _, r := range righe {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.Numero),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				r.Descrizione,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.Quantita.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				euro(r.PrezzoUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				euro(r.Totale),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func rigaTotali(f *entity.Fattura) core.Row {
	etichetta := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	valore := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	totaleEtichetta := text.New("TOTALE DOCUMENTO:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorePrimario, Right: 2,
	})
	totaleValore := text.New(euro(f.Totale), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorePrimario, Right: 1,
	})

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			etichetta(fmt.Sprintf("Imponibile (IVA %s%%):", f.AliquotaIVA.Round(0).String())),
			etichetta("IVA:"),
			totaleEtichetta,
		),
		col.New(3).Add(
			valore(euro(f.Imponibile)),
			valore(euro(f.IVA)),
			totaleValore,
		),
		col.New(2),
	)
}

func righeFooter(f *entity.Fattura) []core.Row {
	rows := []core.Row{}
	if f.SplitPayment {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(
				"Operazione soggetta a scissione dei pagamenti ai sensi dell'art. 17-ter "+
					"DPR 633/1972: l'IVA è versata dal committente direttamente all'erario.",
				props.Text{Size: 7, Color: coloreGrigio, Top: 2},
			),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Copia di cortesia. L'originale della fattura è il file XML trasmesso al "+
				"Sistema di Interscambio, disponibile nel cassetto fiscale del committente.",
			props.Text{Size: 6.5, Color: coloreGrigio, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonVuoto(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// euro formatta un importo in notazione italiana: "1.234,56 €".
func euro(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)
	intera, dec := s[:len(s)-3], s[len(s)-2:]
	negativa := false
	if len(intera) > 0 && intera[0] == '-' {
		negativa = true
		intera = intera[1:]
	}
	n := len(intera)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intera[i])
	}
	out := string(buf) + "," + dec
	if negativa {
		out = "-" + out
	}
	return out + " €"
}
