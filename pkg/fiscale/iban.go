package fiscale

import "strings"

// EsitoIBAN è il risultato della validazione strutturale di un IBAN.
type EsitoIBAN struct {
	Valido bool
	Motivo Motivo
	Paese  string // prefisso ISO a 2 lettere, valorizzato solo se valido
}

// ValidaIBAN valida un IBAN con il checksum mod-97 ISO 7064: i primi 4
// caratteri vanno in coda, le lettere diventano numeri (A=10…Z=35) e il
// resto della divisione per 97 deve essere 1. La lunghezza esatta dipende
// dal paese (IBAN italiano = 27), qui si verifica solo il minimo comune.
func ValidaIBAN(input string) EsitoIBAN {
	iban := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input), " ", ""))
	if len(iban) < 15 {
		return EsitoIBAN{Motivo: MotivoTroppoCorto}
	}

	ruotato := iban[4:] + iban[:4]

	// Mod-97 incrementale: si evita il big integer elaborando una cifra alla volta.
	resto := 0
	for i := 0; i < len(ruotato); i++ {
		c := ruotato[i]
		switch {
		case c >= '0' && c <= '9':
			resto = (resto*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			resto = (resto*100 + v) % 97
		default:
			return EsitoIBAN{Motivo: MotivoFormatoErrato}
		}
	}
	if resto != 1 {
		return EsitoIBAN{Motivo: MotivoChecksumErrato}
	}
	return EsitoIBAN{Valido: true, Paese: iban[:2]}
}
