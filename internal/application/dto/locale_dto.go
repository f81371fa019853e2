package dto

import "time"

// CreateLocaleRequest dati per l'inserimento di un locale.
type CreateLocaleRequest struct {
	Nome          string `json:"nome" validate:"required"`
	Indirizzo     string `json:"indirizzo"`
	Citta         string `json:"citta"`
	Provincia     string `json:"provincia"`
	CAP           string `json:"cap"`
	CodiceFiscale string `json:"codice_fiscale"`
	PartitaIVA    string `json:"partita_iva"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
}

// UpdateLocaleRequest aggiornamento parziale (campi nil = invariati).
type UpdateLocaleRequest struct {
	Nome          *string `json:"nome"`
	Indirizzo     *string `json:"indirizzo"`
	Citta         *string `json:"citta"`
	Provincia     *string `json:"provincia"`
	CAP           *string `json:"cap"`
	CodiceFiscale *string `json:"codice_fiscale"`
	PartitaIVA    *string `json:"partita_iva"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email"`
}

// LocaleResponse locale restituito dall'API.
type LocaleResponse struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	Indirizzo     string    `json:"indirizzo,omitempty"`
	Citta         string    `json:"citta,omitempty"`
	Provincia     string    `json:"provincia,omitempty"`
	CAP           string    `json:"cap,omitempty"`
	CodiceFiscale string    `json:"codice_fiscale,omitempty"`
	PartitaIVA    string    `json:"partita_iva,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
