package sdi

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/pkg/config"
)

// Namespace ufficiale FatturaPA 1.2 (specifiche tecniche Agenzia delle Entrate).
const (
	NsFatturaPA = "http://ivaservizi.agenziaentrate.gov.it/docs/xsd/fatture/v1.2"
	nsDs        = "http://www.w3.org/2000/09/xmldsig#"
	nsXsi       = "http://www.w3.org/2001/XMLSchema-instance"
)

// Codici FatturaPA usati in emissione.
const (
	TipoDocumentoFattura = "TD01"
	DivisaEuro           = "EUR"
	// Esigibilità IVA: "I" immediata, "S" scissione dei pagamenti (split payment).
	EsigibilitaImmediata    = "I"
	EsigibilitaSplitPayment = "S"
	// CodiceDestinatario convenzionale quando il recapito avviene solo via PEC.
	CodiceDestinatarioPEC = "0000000"
)

// FatturaBuildContext raccoglie i dati necessari a costruire il file XML.
type FatturaBuildContext struct {
	Fattura     *entity.Fattura
	Righe       []entity.FatturaRiga
	Committente *entity.Committente
	Agenzia     config.AgenziaConfig
	SDI         config.SDIConfig
}

// FatturaPABuilder costruisce l'XML FatturaPA 1.2 (non firmato).
type FatturaPABuilder struct{}

// NewFatturaPABuilder crea il builder.
func NewFatturaPABuilder() *FatturaPABuilder {
	return &FatturaPABuilder{}
}

// Build genera il []byte del documento FatturaElettronica.
func (b *FatturaPABuilder) Build(ctx *FatturaBuildContext) ([]byte, error) {
	if ctx == nil || ctx.Fattura == nil || ctx.Committente == nil {
		return nil, fmt.Errorf("sdi: mancano fattura o committente nel contesto")
	}
	if len(ctx.Righe) == 0 {
		return nil, fmt.Errorf("sdi: fattura %s senza righe", ctx.Fattura.Numerazione())
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	formato := ctx.SDI.FormatoTrasmissione
	if formato == "" {
		formato = "FPR12"
	}

	root := xml.StartElement{
		Name: xml.Name{Local: "p:FatturaElettronica"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "versione"}, Value: formato},
			{Name: xml.Name{Local: "xmlns:p"}, Value: NsFatturaPA},
			{Name: xml.Name{Local: "xmlns:ds"}, Value: nsDs},
			{Name: xml.Name{Local: "xmlns:xsi"}, Value: nsXsi},
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}

	if err := b.writeHeader(enc, ctx, formato); err != nil {
		return nil, err
	}
	if err := b.writeBody(enc, ctx); err != nil {
		return nil, err
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *FatturaPABuilder) writeHeader(enc *xml.Encoder, ctx *FatturaBuildContext, formato string) error {
	apri(enc, "FatturaElettronicaHeader")

	// ---- DatiTrasmissione
	apri(enc, "DatiTrasmissione")
	apri(enc, "IdTrasmittente")
	scrivi(enc, "IdPaese", paeseODefault(ctx.SDI.PaeseTrasmittente))
	scrivi(enc, "IdCodice", soloCifre(ctx.SDI.IDTrasmittente))
	chiudi(enc, "IdTrasmittente")
	// Il progressivo di invio deve essere univoco per trasmittente, non legato
	// alla numerazione: si riusa numero/anno compattati.
	scrivi(enc, "ProgressivoInvio", strconv.Itoa(ctx.Fattura.Anno)+strconv.Itoa(ctx.Fattura.Numero))
	scrivi(enc, "FormatoTrasmissione", formato)
	dest := ctx.Committente.CodiceDestinatario
	if dest == "" {
		dest = CodiceDestinatarioPEC
	}
	scrivi(enc, "CodiceDestinatario", dest)
	if dest == CodiceDestinatarioPEC && ctx.Committente.PEC != "" {
		scrivi(enc, "PECDestinatario", ctx.Committente.PEC)
	}
	chiudi(enc, "DatiTrasmissione")

	// ---- CedentePrestatore (l'agenzia emittente)
	apri(enc, "CedentePrestatore")
	apri(enc, "DatiAnagrafici")
	apri(enc, "IdFiscaleIVA")
	scrivi(enc, "IdPaese", "IT")
	scrivi(enc, "IdCodice", soloCifre(ctx.Agenzia.PartitaIVA))
	chiudi(enc, "IdFiscaleIVA")
	if ctx.Agenzia.CodiceFiscale != "" {
		scrivi(enc, "CodiceFiscale", ctx.Agenzia.CodiceFiscale)
	}
	apri(enc, "Anagrafica")
	scrivi(enc, "Denominazione", ctx.Agenzia.RagioneSociale)
	chiudi(enc, "Anagrafica")
	regime := ctx.Agenzia.RegimeFiscale
	if regime == "" {
		regime = "RF01"
	}
	scrivi(enc, "RegimeFiscale", regime)
	chiudi(enc, "DatiAnagrafici")
	b.writeSede(enc, ctx.Agenzia.Indirizzo, ctx.Agenzia.CAP, ctx.Agenzia.Citta, ctx.Agenzia.Provincia)
	chiudi(enc, "CedentePrestatore")

	// ---- CessionarioCommittente
	c := ctx.Committente
	apri(enc, "CessionarioCommittente")
	apri(enc, "DatiAnagrafici")
	if c.PartitaIVA != "" {
		apri(enc, "IdFiscaleIVA")
		scrivi(enc, "IdPaese", "IT")
		scrivi(enc, "IdCodice", soloCifre(c.PartitaIVA))
		chiudi(enc, "IdFiscaleIVA")
	}
	if c.CodiceFiscale != "" {
		scrivi(enc, "CodiceFiscale", c.CodiceFiscale)
	}
	apri(enc, "Anagrafica")
	scrivi(enc, "Denominazione", c.RagioneSociale)
	chiudi(enc, "Anagrafica")
	chiudi(enc, "DatiAnagrafici")
	b.writeSede(enc, c.Indirizzo, c.CAP, c.Citta, c.Provincia)
	chiudi(enc, "CessionarioCommittente")

	chiudi(enc, "FatturaElettronicaHeader")
	return nil
}

func (b *FatturaPABuilder) writeSede(enc *xml.Encoder, indirizzo, cap, comune, provincia string) {
	apri(enc, "Sede")
	scrivi(enc, "Indirizzo", indirizzo)
	scrivi(enc, "CAP", cap)
	scrivi(enc, "Comune", comune)
	if provincia != "" {
		scrivi(enc, "Provincia", provincia)
	}
	scrivi(enc, "Nazione", "IT")
	chiudi(enc, "Sede")
}

func (b *FatturaPABuilder) writeBody(enc *xml.Encoder, ctx *FatturaBuildContext) error {
	f := ctx.Fattura
	apri(enc, "FatturaElettronicaBody")

	// ---- DatiGenerali
	apri(enc, "DatiGenerali")
	apri(enc, "DatiGeneraliDocumento")
	scrivi(enc, "TipoDocumento", TipoDocumentoFattura)
	scrivi(enc, "Divisa", DivisaEuro)
	scrivi(enc, "Data", f.Data.Format("2006-01-02"))
	scrivi(enc, "Numero", f.Numerazione())
	scrivi(enc, "ImportoTotaleDocumento", formatImporto(f.Imponibile.Add(f.IVA)))
	chiudi(enc, "DatiGeneraliDocumento")
	chiudi(enc, "DatiGenerali")

	// ---- DatiBeniServizi (righe + riepilogo IVA)
	apri(enc, "DatiBeniServizi")
	for _, riga := range ctx.Righe {
		apri(enc, "DettaglioLinee")
		scrivi(enc, "NumeroLinea", strconv.Itoa(riga.Numero))
		scrivi(enc, "Descrizione", riga.Descrizione)
		scrivi(enc, "Quantita", riga.Quantita.Round(2).StringFixed(2))
		scrivi(enc, "PrezzoUnitario", formatImporto(riga.PrezzoUnitario))
		scrivi(enc, "PrezzoTotale", formatImporto(riga.Totale))
		scrivi(enc, "AliquotaIVA", formatImporto(riga.AliquotaIVA))
		chiudi(enc, "DettaglioLinee")
	}
	apri(enc, "DatiRiepilogo")
	scrivi(enc, "AliquotaIVA", formatImporto(f.AliquotaIVA))
	scrivi(enc, "ImponibileImporto", formatImporto(f.Imponibile))
	scrivi(enc, "Imposta", formatImporto(f.IVA))
	if f.SplitPayment {
		scrivi(enc, "EsigibilitaIVA", EsigibilitaSplitPayment)
	} else {
		scrivi(enc, "EsigibilitaIVA", EsigibilitaImmediata)
	}
	chiudi(enc, "DatiRiepilogo")
	chiudi(enc, "DatiBeniServizi")

	chiudi(enc, "FatturaElettronicaBody")
	return nil
}

func apri(enc *xml.Encoder, local string) {
	_ = enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: local}})
}

func chiudi(enc *xml.Encoder, local string) {
	_ = enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: local}})
}

func scrivi(enc *xml.Encoder, local, value string) {
	apri(enc, local)
	_ = enc.EncodeToken(xml.CharData(value))
	chiudi(enc, local)
}

func paeseODefault(paese string) string {
	if paese == "" {
		return "IT"
	}
	return paese
}

func soloCifre(s string) string {
	var out []byte
	for _, b := range []byte(s) {
		if b >= '0' && b <= '9' {
			out = append(out, b)
		}
	}
	return string(out)
}

func formatImporto(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
