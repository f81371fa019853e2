package fiscale

// EsitoPartitaIVA è il risultato della validazione di una partita IVA.
type EsitoPartitaIVA struct {
	Valido bool
	Motivo Motivo
}

// ValidaPartitaIVA valida una partita IVA italiana (11 cifre, algoritmo di
// Luhn ex art. 35 DPR 633/72). La stringa vuota è valida: la partita IVA è
// facoltativa per gli artisti in regime di prestazione occasionale.
func ValidaPartitaIVA(input string) EsitoPartitaIVA {
	if input == "" {
		return EsitoPartitaIVA{Valido: true}
	}
	if len(input) != 11 {
		return EsitoPartitaIVA{Motivo: MotivoLunghezzaErrata}
	}
	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return EsitoPartitaIVA{Motivo: MotivoNonNumerico}
		}
	}

	// Cifre in posizione dispari (1-indexed) sommate tal quali; cifre in
	// posizione pari raddoppiate, sottraendo 9 se il doppio supera 9.
	var somma int
	for i := 0; i < 10; i++ {
		d := int(input[i] - '0')
		if (i+1)%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		somma += d
	}
	atteso := (10 - somma%10) % 10
	if atteso != int(input[10]-'0') {
		return EsitoPartitaIVA{Motivo: MotivoChecksumErrato}
	}
	return EsitoPartitaIVA{Valido: true}
}
