package fatture

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/pkg/fiscale"
)

// ErrFatturaNonValida raggruppa gli errori di validazione della fattura.
var ErrFatturaNonValida = errors.New("fattura non valida")

// ValidaFattura verifica la coerenza di testata e righe prima della
// generazione dell'XML FatturaPA: identificativi fiscali del committente,
// presenza di righe, invariante Totale riga = Quantità × Prezzo e quadratura
// dei totali di documento (incluso il caso Split Payment).
func ValidaFattura(f *entity.Fattura, righe []entity.FatturaRiga, committente *entity.Committente) error {
	if f == nil {
		return fmt.Errorf("%w: fattura nulla", ErrFatturaNonValida)
	}
	var errs []error

	if committente == nil {
		errs = append(errs, fmt.Errorf("%w: committente mancante", ErrFatturaNonValida))
	} else {
		if esito := fiscale.ValidaPartitaIVA(committente.PartitaIVA); !esito.Valido {
			errs = append(errs, fmt.Errorf("partita IVA committente non valida: %s", esito.Motivo))
		}
		if committente.PartitaIVA == "" && committente.CodiceFiscale == "" {
			errs = append(errs, fmt.Errorf("il committente deve avere partita IVA o codice fiscale"))
		}
	}

	if len(righe) == 0 {
		errs = append(errs, fmt.Errorf("%w: la fattura deve avere almeno una riga", ErrFatturaNonValida))
	} else {
		somma := decimal.Zero
		for _, r := range righe {
			atteso := r.Quantita.Mul(r.PrezzoUnitario).Round(2)
			if !r.Totale.Equal(atteso) {
				errs = append(errs, fmt.Errorf("riga %d: totale %s non coincide con quantità × prezzo (%s)",
					r.Numero, r.Totale.StringFixed(2), atteso.StringFixed(2)))
			}
			somma = somma.Add(r.Totale)
		}
		somma = somma.Round(2)
		if !f.Imponibile.Equal(somma) {
			errs = append(errs, fmt.Errorf("imponibile (%s) non coincide con la somma delle righe (%s)",
				f.Imponibile.StringFixed(2), somma.StringFixed(2)))
		}
		ivaAttesa := somma.Mul(f.AliquotaIVA).Div(decimal.NewFromInt(100)).Round(2)
		if !f.IVA.Equal(ivaAttesa) {
			errs = append(errs, fmt.Errorf("IVA (%s) non coincide con imponibile × aliquota (%s)",
				f.IVA.StringFixed(2), ivaAttesa.StringFixed(2)))
		}
		totaleAtteso := somma.Add(ivaAttesa)
		if f.SplitPayment {
			totaleAtteso = somma
		}
		if !f.Totale.Equal(totaleAtteso) {
			errs = append(errs, fmt.Errorf("totale (%s) non coincide con quello atteso (%s)",
				f.Totale.StringFixed(2), totaleAtteso.StringFixed(2)))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrFatturaNonValida}, errs...)...)
	}
	return nil
}
