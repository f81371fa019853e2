package sdi

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/okestra/agibilita-api/internal/domain/entity"
)

// EasyfattExporter produce il file XML nel tracciato Danea Easyfatt, usato
// dal commercialista per importare le fatture emesse in contabilità.
type EasyfattExporter struct{}

// NewEasyfattExporter crea l'esportatore.
func NewEasyfattExporter() *EasyfattExporter {
	return &EasyfattExporter{}
}

// DocumentoExport è una fattura completa di righe e committente da esportare.
type DocumentoExport struct {
	Fattura     *entity.Fattura
	Righe       []entity.FatturaRiga
	Committente *entity.Committente
}

// Export genera il documento EasyfattDocuments con una voce per fattura.
func (e *EasyfattExporter) Export(documenti []DocumentoExport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("EasyfattDocuments")
	root.CreateAttr("AppVersion", "2")
	root.CreateAttr("Creator", "agibilita-api")

	elenco := root.CreateElement("Documents")
	for _, d := range documenti {
		if d.Fattura == nil || d.Committente == nil {
			return nil, fmt.Errorf("easyfatt: documento incompleto")
		}
		e.appendDocumento(elenco, d)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func (e *EasyfattExporter) appendDocumento(parent *etree.Element, d DocumentoExport) {
	f, c := d.Fattura, d.Committente

	el := parent.CreateElement("Document")
	el.CreateElement("CustomerName").SetText(c.RagioneSociale)
	if c.PartitaIVA != "" {
		el.CreateElement("CustomerVatCode").SetText(c.PartitaIVA)
	}
	if c.CodiceFiscale != "" {
		el.CreateElement("CustomerFiscalCode").SetText(c.CodiceFiscale)
	}
	el.CreateElement("CustomerAddress").SetText(c.Indirizzo)
	el.CreateElement("CustomerPostcode").SetText(c.CAP)
	el.CreateElement("CustomerCity").SetText(c.Citta)
	el.CreateElement("CustomerProvince").SetText(c.Provincia)

	// "I" = fattura emessa nel tracciato Easyfatt.
	el.CreateElement("DocumentType").SetText("I")
	el.CreateElement("Date").SetText(f.Data.Format("2006-01-02"))
	el.CreateElement("Number").SetText(f.Numerazione())
	el.CreateElement("Total").SetText(formatImporto(f.Totale))

	righe := el.CreateElement("Rows")
	for _, r := range d.Righe {
		row := righe.CreateElement("Row")
		row.CreateElement("Description").SetText(r.Descrizione)
		row.CreateElement("Qty").SetText(r.Quantita.Round(2).StringFixed(2))
		row.CreateElement("Price").SetText(formatImporto(r.PrezzoUnitario))
		row.CreateElement("VatCode").SetText(r.AliquotaIVA.Round(0).String())
	}
}
