// Package fatture implementa la generazione delle righe di fattura a partire
// dalle agibilità chiuse e la validazione di coerenza dei totali.
package fatture

import (
	"github.com/shopspring/decimal"

	"github.com/okestra/agibilita-api/internal/domain/entity"
)

// DescrizioneGenericaDefault è la descrizione usata in modalità voce unica
// quando il committente non ne indica una propria.
const DescrizioneGenericaDefault = "Servizi di produzione artistica"

// descrizioneDiritti è la descrizione della riga finale dei diritti di agenzia.
const descrizioneDiritti = "Diritti di agenzia e gestione pratiche"

// suffissoCompenso è il suffisso delle righe per artista a diritti inclusi.
const suffissoCompenso = " — compenso e gestione pratica"

// Partecipazione è la prestazione di un artista da fatturare: nome da
// esporre in riga e compenso lordo già calcolato (vedi package compensi).
type Partecipazione struct {
	NomeArtista string
	Lordo       decimal.Decimal
}

// Evento raggruppa le partecipazioni di una singola agibilità.
type Evento struct {
	Descrizione    string
	Partecipazioni []Partecipazione
}

// Parametri per la generazione delle righe.
type Parametri struct {
	Modalita            string          // costanti entity.Righe*
	Eventi              []Evento        // ordine di iterazione = ordine di input
	DirittiPerArtista   decimal.Decimal // quota fissa di agenzia per artista
	AliquotaIVA         decimal.Decimal // percentuale (es. 22)
	SplitPayment        bool
	DescrizioneGenerica string // solo per modalità voce unica
}

// Esito della generazione: righe ordinate e totali di fattura.
type Esito struct {
	Righe      []entity.FatturaRiga
	Imponibile decimal.Decimal
	IVA        decimal.Decimal
	Totale     decimal.Decimal
}

// GeneraRighe produce le righe secondo la modalità scelta e calcola i totali.
//
// La funzione è idempotente: a parità di modalità e di eventi rigenera righe
// identiche, numerazione compresa. È il comportamento voluto dal gestionale:
// cambiare modalità rigenera tutto e scarta eventuali modifiche manuali.
//
// Con input vuoto restituisce zero righe e totali a zero senza errore: il
// blocco dell'emissione di una fattura vuota spetta al chiamante.
func GeneraRighe(p Parametri) Esito {
	var righe []entity.FatturaRiga

	switch p.Modalita {
	case entity.RigheVoceUnica:
		righe = generaVoceUnica(p)
	case entity.RigheDirittiSeparati:
		righe = generaDirittiSeparati(p)
	default:
		// Diritti inclusi è la modalità storica di default.
		righe = generaDirittiInclusi(p)
	}

	return totali(righe, p.AliquotaIVA, p.SplitPayment)
}

// generaVoceUnica somma lordo + diritti di ogni artista in un'unica riga.
func generaVoceUnica(p Parametri) []entity.FatturaRiga {
	totale := decimal.Zero
	n := 0
	for _, ev := range p.Eventi {
		for _, part := range ev.Partecipazioni {
			totale = totale.Add(part.Lordo).Add(p.DirittiPerArtista)
			n++
		}
	}
	if n == 0 {
		return nil
	}

	descrizione := p.DescrizioneGenerica
	if descrizione == "" {
		descrizione = DescrizioneGenericaDefault
	}
	return []entity.FatturaRiga{nuovaRiga(1, descrizione, decimal.NewFromInt(1), totale, p.AliquotaIVA)}
}

// generaDirittiInclusi emette una riga per artista con i diritti inglobati
// nel prezzo unitario. La numerazione avanza sull'intera fattura, mai
// azzerata per evento.
func generaDirittiInclusi(p Parametri) []entity.FatturaRiga {
	var righe []entity.FatturaRiga
	numero := 1
	for _, ev := range p.Eventi {
		for _, part := range ev.Partecipazioni {
			prezzo := part.Lordo.Add(p.DirittiPerArtista)
			righe = append(righe, nuovaRiga(numero,
				part.NomeArtista+suffissoCompenso,
				decimal.NewFromInt(1), prezzo, p.AliquotaIVA))
			numero++
		}
	}
	return righe
}

// generaDirittiSeparati emette il solo lordo per artista e un'unica riga
// finale con i diritti (quantità = numero di artisti), omessa se il totale
// dei diritti è zero.
func generaDirittiSeparati(p Parametri) []entity.FatturaRiga {
	var righe []entity.FatturaRiga
	numero := 1
	artisti := 0
	for _, ev := range p.Eventi {
		for _, part := range ev.Partecipazioni {
			righe = append(righe, nuovaRiga(numero,
				part.NomeArtista+suffissoCompenso,
				decimal.NewFromInt(1), part.Lordo, p.AliquotaIVA))
			numero++
			artisti++
		}
	}

	totaleDiritti := p.DirittiPerArtista.Mul(decimal.NewFromInt(int64(artisti)))
	if artisti > 0 && totaleDiritti.GreaterThan(decimal.Zero) {
		righe = append(righe, nuovaRiga(numero, descrizioneDiritti,
			decimal.NewFromInt(int64(artisti)), p.DirittiPerArtista, p.AliquotaIVA))
	}
	return righe
}

func nuovaRiga(numero int, descrizione string, quantita, prezzo, aliquota decimal.Decimal) entity.FatturaRiga {
	return entity.FatturaRiga{
		Numero:         numero,
		Descrizione:    descrizione,
		Quantita:       quantita,
		PrezzoUnitario: prezzo,
		Totale:         quantita.Mul(prezzo).Round(2),
		AliquotaIVA:    aliquota,
	}
}

// totali calcola imponibile, IVA e totale documento. Con Split Payment il
// committente (PA) paga il solo imponibile: l'IVA va versata direttamente
// all'erario e resta esposta in fattura ma fuori dal totale a suo carico.
func totali(righe []entity.FatturaRiga, aliquotaIVA decimal.Decimal, splitPayment bool) Esito {
	imponibile := decimal.Zero
	for _, r := range righe {
		imponibile = imponibile.Add(r.Totale)
	}
	imponibile = imponibile.Round(2)
	iva := imponibile.Mul(aliquotaIVA).Div(decimal.NewFromInt(100)).Round(2)

	totale := imponibile.Add(iva)
	if splitPayment {
		totale = imponibile
	}
	return Esito{Righe: righe, Imponibile: imponibile, IVA: iva, Totale: totale}
}
