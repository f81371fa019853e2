package fiscale

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DatiAnagrafici sono i dati minimi per calcolare un codice fiscale.
type DatiAnagrafici struct {
	Cognome         string
	Nome            string
	Sesso           string // "M" o "F"
	DataNascita     time.Time
	CodiceCatastale string // codice Belfiore del comune/stato di nascita (es. "H501")
}

// Lettera del mese per il calcolo (inversa di cfMesi).
var cfLettereMese = [13]byte{0, 'A', 'B', 'C', 'D', 'E', 'H', 'L', 'M', 'P', 'R', 'S', 'T'}

// CalcolaCodiceFiscale deriva il codice fiscale dai dati anagrafici secondo il
// DM 23/12/1976: consonanti di cognome e nome, anno/mese/giorno codificati,
// codice catastale e carattere di controllo. I form lo usano per proporre il
// codice quando l'artista non lo conosce; resta comunque modificabile a mano.
func CalcolaCodiceFiscale(d DatiAnagrafici) (string, error) {
	if d.Cognome == "" || d.Nome == "" {
		return "", fmt.Errorf("fiscale: cognome e nome sono obbligatori")
	}
	if d.Sesso != "M" && d.Sesso != "F" {
		return "", fmt.Errorf("fiscale: sesso deve essere M o F")
	}
	if d.DataNascita.IsZero() {
		return "", fmt.Errorf("fiscale: data di nascita obbligatoria")
	}
	catastale := strings.ToUpper(strings.TrimSpace(d.CodiceCatastale))
	if len(catastale) != 4 {
		return "", fmt.Errorf("fiscale: codice catastale deve avere 4 caratteri")
	}

	var b strings.Builder
	b.WriteString(codificaCognome(d.Cognome))
	b.WriteString(codificaNome(d.Nome))

	anno := d.DataNascita.Year() % 100
	b.WriteString(fmt.Sprintf("%02d", anno))
	b.WriteByte(cfLettereMese[int(d.DataNascita.Month())])

	giorno := d.DataNascita.Day()
	if d.Sesso == "F" {
		giorno += 40
	}
	b.WriteString(fmt.Sprintf("%02d", giorno))
	b.WriteString(catastale)

	parziale := b.String()
	return parziale + string(carattereControllo(parziale)), nil
}

// codificaCognome estrae consonanti poi vocali, completando con X fino a 3.
func codificaCognome(cognome string) string {
	cons, voc := consonantiVocali(cognome)
	return riempi(cons + voc)
}

// codificaNome come il cognome, ma con 4+ consonanti si prendono 1ª, 3ª e 4ª.
func codificaNome(nome string) string {
	cons, voc := consonantiVocali(nome)
	if len(cons) >= 4 {
		return string([]byte{cons[0], cons[2], cons[3]})
	}
	return riempi(cons + voc)
}

func riempi(s string) string {
	for len(s) < 3 {
		s += "X"
	}
	return s[:3]
}

// consonantiVocali normalizza il testo (maiuscole, senza accenti né spazi)
// e separa consonanti e vocali nell'ordine originale.
func consonantiVocali(s string) (string, string) {
	pulito := strings.ToUpper(senzaDiacritici(s))
	var cons, voc strings.Builder
	for _, r := range pulito {
		if r < 'A' || r > 'Z' {
			continue
		}
		switch r {
		case 'A', 'E', 'I', 'O', 'U':
			voc.WriteRune(r)
		default:
			cons.WriteRune(r)
		}
	}
	return cons.String(), voc.String()
}

// senzaDiacritici rimuove gli accenti (À→A, ü→u) via decomposizione Unicode.
// Necessario per cognomi come "Niccolò" o artisti con grafie straniere.
func senzaDiacritici(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
