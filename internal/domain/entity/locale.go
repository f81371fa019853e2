package entity

import "time"

// Locale rappresenta il luogo dell'evento (teatro, club, piazza) indicato
// nella richiesta di agibilità.
type Locale struct {
	ID            string
	Nome          string
	Indirizzo     string
	Citta         string
	Provincia     string // sigla (es. "MI")
	CAP           string
	CodiceFiscale string // del gestore, se persona fisica
	PartitaIVA    string
	Telefono      string
	Email         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
