package entity

import "time"

// Committente rappresenta il cliente intestatario della fattura.
// I committenti pubblici (PA) sono soggetti al regime di Split Payment:
// l'IVA non entra nel totale a loro carico ma va versata direttamente all'erario.
type Committente struct {
	ID                 string
	RagioneSociale     string
	CodiceFiscale      string
	PartitaIVA         string
	Indirizzo          string
	Citta              string
	Provincia          string
	CAP                string
	PEC                string
	CodiceDestinatario string // codice SDI a 7 caratteri ("0000000" se solo PEC)
	SplitPayment       bool   // true per committenti PA
	Email              string
	Telefono           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
