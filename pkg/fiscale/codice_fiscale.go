// Package fiscale contiene le validazioni degli identificativi fiscali italiani
// (codice fiscale, partita IVA, IBAN) usate dai form del gestionale.
// Tutte le funzioni sono pure e deterministiche: stesso input, stesso risultato.
// Non restituiscono mai error: il chiamante (form) deve sempre poter mostrare
// l'esito inline, quindi l'esito è un risultato strutturato con motivo.
package fiscale

import (
	"regexp"
	"strings"
	"time"
)

// Motivi di non validità. Codici stabili, serializzati verso il frontend.
type Motivo string

const (
	MotivoLunghezzaErrata  Motivo = "InvalidLength"
	MotivoFormatoErrato    Motivo = "InvalidPattern"
	MotivoNonNumerico      Motivo = "NonNumeric"
	MotivoChecksumErrato   Motivo = "ChecksumMismatch"
	MotivoTroppoCorto      Motivo = "TooShort"
)

// EsitoCodiceFiscale è il risultato della validazione di un codice fiscale.
// Se Valido, i campi derivati (sesso, data di nascita, età) sono popolati.
type EsitoCodiceFiscale struct {
	Valido      bool
	Motivo      Motivo
	Sesso       string // "M" o "F"
	DataNascita time.Time
	Eta         int
	Maggiorenne bool
}

// Struttura del codice fiscale: 6 lettere, 2 cifre anno, lettera mese,
// 2 cifre giorno, lettera + 3 cifre codice catastale, lettera di controllo.
var cfPattern = regexp.MustCompile(`^[A-Z]{6}[0-9]{2}[A-Z][0-9]{2}[A-Z][0-9]{3}[A-Z]$`)

// Valori per posizioni dispari (1-indexed) secondo la tabella ufficiale
// dell'Agenzia delle Entrate. Indice: '0'-'9' e 'A'-'Z'.
var cfValoriDispari = map[byte]int{
	'0': 1, '1': 0, '2': 5, '3': 7, '4': 9, '5': 13, '6': 15, '7': 17, '8': 19, '9': 21,
	'A': 1, 'B': 0, 'C': 5, 'D': 7, 'E': 9, 'F': 13, 'G': 15, 'H': 17, 'I': 19, 'J': 21,
	'K': 2, 'L': 4, 'M': 18, 'N': 20, 'O': 11, 'P': 3, 'Q': 6, 'R': 8, 'S': 12, 'T': 14,
	'U': 16, 'V': 10, 'W': 22, 'X': 25, 'Y': 24, 'Z': 23,
}

// Lettere del mese di nascita (tabella Agenzia delle Entrate).
var cfMesi = map[byte]time.Month{
	'A': time.January, 'B': time.February, 'C': time.March, 'D': time.April,
	'E': time.May, 'H': time.June, 'L': time.July, 'M': time.August,
	'P': time.September, 'R': time.October, 'S': time.November, 'T': time.December,
}

// ValidaCodiceFiscale valida struttura e carattere di controllo di un codice
// fiscale e ne deriva sesso, data di nascita ed età rispetto alla data odierna.
func ValidaCodiceFiscale(input string) EsitoCodiceFiscale {
	return ValidaCodiceFiscaleAl(input, time.Now())
}

// ValidaCodiceFiscaleAl valida il codice fiscale calcolando l'età alla data
// indicata. Esposta per poter verificare età e maggiore età in modo riproducibile.
func ValidaCodiceFiscaleAl(input string, oggi time.Time) EsitoCodiceFiscale {
	cf := strings.ToUpper(strings.TrimSpace(input))
	if len(cf) != 16 {
		return EsitoCodiceFiscale{Motivo: MotivoLunghezzaErrata}
	}
	if !cfPattern.MatchString(cf) {
		return EsitoCodiceFiscale{Motivo: MotivoFormatoErrato}
	}
	if carattereControllo(cf[:15]) != cf[15] {
		return EsitoCodiceFiscale{Motivo: MotivoChecksumErrato}
	}

	esito := EsitoCodiceFiscale{Valido: true}

	// Giorno > 40 identifica il sesso femminile; si sottrae 40 per il giorno reale.
	giorno := int(cf[9]-'0')*10 + int(cf[10]-'0')
	esito.Sesso = "M"
	if giorno > 40 {
		esito.Sesso = "F"
		giorno -= 40
	}

	anno := int(cf[6]-'0')*10 + int(cf[7]-'0')
	mese := cfMesi[cf[8]]

	// Pivot del secolo: se le due cifre superano l'anno corrente, il secolo è il 1900.
	secolo := 2000
	if anno > oggi.Year()%100 {
		secolo = 1900
	}
	esito.DataNascita = time.Date(secolo+anno, mese, giorno, 0, 0, 0, 0, time.UTC)

	esito.Eta = etaCompiuta(esito.DataNascita, oggi)
	esito.Maggiorenne = esito.Eta >= 18
	return esito
}

// carattereControllo calcola la lettera di controllo sui primi 15 caratteri:
// somma dei valori pari/dispari, modulo 26, mappato su A-Z.
func carattereControllo(primi15 string) byte {
	var somma int
	for i := 0; i < len(primi15); i++ {
		c := primi15[i]
		if (i+1)%2 == 1 { // posizione dispari 1-indexed
			somma += cfValoriDispari[c]
		} else if c >= '0' && c <= '9' {
			somma += int(c - '0')
		} else {
			somma += int(c - 'A')
		}
	}
	return byte('A' + somma%26)
}

// etaCompiuta calcola gli anni compiuti alla data indicata.
func etaCompiuta(nascita, oggi time.Time) int {
	eta := oggi.Year() - nascita.Year()
	if oggi.Month() < nascita.Month() ||
		(oggi.Month() == nascita.Month() && oggi.Day() < nascita.Day()) {
		eta--
	}
	if eta < 0 {
		return 0
	}
	return eta
}
