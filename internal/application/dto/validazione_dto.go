package dto

// ValidazioneRequest valore da validare lato form.
type ValidazioneRequest struct {
	Valore string `json:"valore"`
}

// ValidazioneCodiceFiscaleResponse esito con i dati derivati dal codice.
type ValidazioneCodiceFiscaleResponse struct {
	Valido      bool   `json:"valido"`
	Motivo      string `json:"motivo,omitempty"`
	Sesso       string `json:"sesso,omitempty"`
	DataNascita string `json:"data_nascita,omitempty"` // formato 2006-01-02
	Eta         int    `json:"eta,omitempty"`
	Maggiorenne bool   `json:"maggiorenne,omitempty"`
}

// ValidazioneResponse esito semplice (partita IVA).
type ValidazioneResponse struct {
	Valido bool   `json:"valido"`
	Motivo string `json:"motivo,omitempty"`
}

// ValidazioneIBANResponse esito con il paese derivato.
type ValidazioneIBANResponse struct {
	Valido bool   `json:"valido"`
	Motivo string `json:"motivo,omitempty"`
	Paese  string `json:"paese,omitempty"`
}
