package dto

import "time"

// CreateCommittenteRequest dati per l'inserimento di un committente.
type CreateCommittenteRequest struct {
	RagioneSociale     string `json:"ragione_sociale" validate:"required"`
	CodiceFiscale      string `json:"codice_fiscale"`
	PartitaIVA         string `json:"partita_iva"`
	Indirizzo          string `json:"indirizzo"`
	Citta              string `json:"citta"`
	Provincia          string `json:"provincia"`
	CAP                string `json:"cap"`
	PEC                string `json:"pec"`
	CodiceDestinatario string `json:"codice_destinatario"`
	SplitPayment       bool   `json:"split_payment"`
	Email              string `json:"email"`
	Telefono           string `json:"telefono"`
}

// UpdateCommittenteRequest aggiornamento parziale (campi nil = invariati).
type UpdateCommittenteRequest struct {
	RagioneSociale     *string `json:"ragione_sociale"`
	CodiceFiscale      *string `json:"codice_fiscale"`
	PartitaIVA         *string `json:"partita_iva"`
	Indirizzo          *string `json:"indirizzo"`
	Citta              *string `json:"citta"`
	Provincia          *string `json:"provincia"`
	CAP                *string `json:"cap"`
	PEC                *string `json:"pec"`
	CodiceDestinatario *string `json:"codice_destinatario"`
	SplitPayment       *bool   `json:"split_payment"`
	Email              *string `json:"email"`
	Telefono           *string `json:"telefono"`
}

// CommittenteResponse committente restituito dall'API.
type CommittenteResponse struct {
	ID                 string    `json:"id"`
	RagioneSociale     string    `json:"ragione_sociale"`
	CodiceFiscale      string    `json:"codice_fiscale,omitempty"`
	PartitaIVA         string    `json:"partita_iva,omitempty"`
	Indirizzo          string    `json:"indirizzo,omitempty"`
	Citta              string    `json:"citta,omitempty"`
	Provincia          string    `json:"provincia,omitempty"`
	CAP                string    `json:"cap,omitempty"`
	PEC                string    `json:"pec,omitempty"`
	CodiceDestinatario string    `json:"codice_destinatario,omitempty"`
	SplitPayment       bool      `json:"split_payment"`
	Email              string    `json:"email,omitempty"`
	Telefono           string    `json:"telefono,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
