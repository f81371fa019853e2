package dto

import "time"

// CreateArtistaRequest dati per l'inserimento in roster.
type CreateArtistaRequest struct {
	Nome            string     `json:"nome" validate:"required"`
	Cognome         string     `json:"cognome" validate:"required"`
	NomeDArte       string     `json:"nome_darte"`
	Sesso           string     `json:"sesso"`
	CodiceFiscale   string     `json:"codice_fiscale"`
	PartitaIVA      string     `json:"partita_iva"`
	IBAN            string     `json:"iban"`
	DataNascita     *time.Time `json:"data_nascita"`
	LuogoNascita    string     `json:"luogo_nascita"`
	Indirizzo       string     `json:"indirizzo"`
	Citta           string     `json:"citta"`
	TipoContratto   string     `json:"tipo_contratto"`
	ExtraUE         bool       `json:"extra_ue"`
	DocumentoEstero string     `json:"documento_estero"`
	Nazionalita     string     `json:"nazionalita"`
	Email           string     `json:"email"`
	Telefono        string     `json:"telefono"`
}

// UpdateArtistaRequest aggiornamento parziale (campi nil = invariati).
type UpdateArtistaRequest struct {
	Nome            *string    `json:"nome"`
	Cognome         *string    `json:"cognome"`
	NomeDArte       *string    `json:"nome_darte"`
	Sesso           *string    `json:"sesso"`
	CodiceFiscale   *string    `json:"codice_fiscale"`
	PartitaIVA      *string    `json:"partita_iva"`
	IBAN            *string    `json:"iban"`
	DataNascita     *time.Time `json:"data_nascita"`
	LuogoNascita    *string    `json:"luogo_nascita"`
	Indirizzo       *string    `json:"indirizzo"`
	Citta           *string    `json:"citta"`
	TipoContratto   *string    `json:"tipo_contratto"`
	ExtraUE         *bool      `json:"extra_ue"`
	DocumentoEstero *string    `json:"documento_estero"`
	Nazionalita     *string    `json:"nazionalita"`
	Email           *string    `json:"email"`
	Telefono        *string    `json:"telefono"`
}

// ArtistaResponse anagrafica restituita dall'API.
type ArtistaResponse struct {
	ID              string     `json:"id"`
	Nome            string     `json:"nome"`
	Cognome         string     `json:"cognome"`
	NomeDArte       string     `json:"nome_darte,omitempty"`
	Sesso           string     `json:"sesso,omitempty"`
	CodiceFiscale   string     `json:"codice_fiscale,omitempty"`
	PartitaIVA      string     `json:"partita_iva,omitempty"`
	IBAN            string     `json:"iban,omitempty"`
	DataNascita     *time.Time `json:"data_nascita,omitempty"`
	LuogoNascita    string     `json:"luogo_nascita,omitempty"`
	Indirizzo       string     `json:"indirizzo,omitempty"`
	Citta           string     `json:"citta,omitempty"`
	TipoContratto   string     `json:"tipo_contratto,omitempty"`
	ExtraUE         bool       `json:"extra_ue"`
	DocumentoEstero string     `json:"documento_estero,omitempty"`
	Nazionalita     string     `json:"nazionalita,omitempty"`
	Email           string     `json:"email,omitempty"`
	Telefono        string     `json:"telefono,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CalcolaCodiceFiscaleRequest input per il calcolo del codice fiscale.
type CalcolaCodiceFiscaleRequest struct {
	Cognome         string    `json:"cognome" validate:"required"`
	Nome            string    `json:"nome" validate:"required"`
	Sesso           string    `json:"sesso" validate:"required,oneof=M F"`
	DataNascita     time.Time `json:"data_nascita" validate:"required"`
	CodiceCatastale string    `json:"codice_catastale" validate:"required"`
}

// CalcolaCodiceFiscaleResponse esito del calcolo.
type CalcolaCodiceFiscaleResponse struct {
	CodiceFiscale string `json:"codice_fiscale"`
}
