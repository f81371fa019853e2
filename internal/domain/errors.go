package domain

import "errors"

// Errori di dominio (senza dipendenze esterne).
var (
	ErrNotFound        = errors.New("risorsa non trovata")
	ErrInvalidInput    = errors.New("input non valido")
	ErrDuplicate       = errors.New("risorsa duplicata")
	ErrForbidden       = errors.New("accesso negato")
	ErrConflict        = errors.New("conflitto con lo stato attuale")
	ErrAgibilitaChiusa = errors.New("agibilità già chiusa o fatturata")
)
