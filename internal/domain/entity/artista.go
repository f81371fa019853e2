package entity

import "time"

// Tipi di contratto degli artisti (determinano il calcolo dei compensi).
const (
	ContrattoOccasionale    = "OCCASIONALE"     // prestazione occasionale, ritenuta d'acconto
	ContrattoPartitaIVA     = "PARTITA_IVA"     // l'artista fattura in proprio, nessuna ritenuta
	ContrattoCollaborazione = "COLLABORAZIONE"  // co.co.co.
	ContrattoDipendente     = "DIPENDENTE"      // assunzione a chiamata
)

// Artista rappresenta un artista in roster (anagrafica completa per le
// agibilità INPS e la fatturazione).
type Artista struct {
	ID              string
	Nome            string
	Cognome         string
	NomeDArte       string // preferito al nome anagrafico nelle righe di fattura
	Sesso           string // "M" o "F"
	CodiceFiscale   string
	PartitaIVA      string // vuota se non titolare
	IBAN            string
	DataNascita     *time.Time
	LuogoNascita    string
	Indirizzo       string
	Citta           string
	TipoContratto   string // vedi costanti Contratto*
	ExtraUE         bool   // artista extra UE: documento estero al posto del CF
	DocumentoEstero string // numero passaporto/permesso per artisti extra UE
	Nazionalita     string
	Email           string
	Telefono        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HaPartitaIVA indica se l'artista fattura in proprio (nessuna ritenuta).
func (a *Artista) HaPartitaIVA() bool {
	return a.PartitaIVA != "" || a.TipoContratto == ContrattoPartitaIVA
}

// NomeInFattura restituisce il nome da usare nelle righe di fattura:
// nome d'arte se presente, altrimenti nome e cognome anagrafici.
func (a *Artista) NomeInFattura() string {
	if a.NomeDArte != "" {
		return a.NomeDArte
	}
	return a.Nome + " " + a.Cognome
}
