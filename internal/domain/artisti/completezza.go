// Package artisti contiene le regole di dominio sull'anagrafica artisti,
// in particolare il controllo di completezza richiesto prima di inserire
// un artista in un'agibilità.
package artisti

import (
	"math"

	"github.com/okestra/agibilita-api/internal/domain/entity"
	"github.com/okestra/agibilita-api/pkg/fiscale"
)

// CampoMancante descrive un campo anagrafico non compilato.
type CampoMancante struct {
	Campo        string `json:"campo"`
	Etichetta    string `json:"etichetta"`
	Obbligatorio bool   `json:"obbligatorio"`
}

// Completezza è l'esito del controllo: l'anagrafica è completa solo se tutti
// i campi obbligatori sono compilati e il codice fiscale, se presente, è valido.
type Completezza struct {
	Completa       bool            `json:"completa"`
	CampiMancanti  []CampoMancante `json:"campi_mancanti"`
	Percentuale    int             `json:"percentuale"`
}

// campo è una voce della checklist, con estrattore del valore e condizioni.
type campo struct {
	nome         string
	etichetta    string
	obbligatorio func(a *entity.Artista) bool
	compilato    func(a *entity.Artista) bool
}

var sempre = func(*entity.Artista) bool { return true }
var mai = func(*entity.Artista) bool { return false }

// Checklist in ordine fisso di presentazione. Per gli artisti extra UE il
// codice fiscale non è richiesto ma servono documento estero e nazionalità.
var checklist = []campo{
	{"nome", "Nome", sempre, func(a *entity.Artista) bool { return a.Nome != "" }},
	{"cognome", "Cognome", sempre, func(a *entity.Artista) bool { return a.Cognome != "" }},
	{"nome_darte", "Nome d'arte", mai, func(a *entity.Artista) bool { return a.NomeDArte != "" }},
	{"codice_fiscale", "Codice fiscale",
		func(a *entity.Artista) bool { return !a.ExtraUE },
		func(a *entity.Artista) bool { return a.CodiceFiscale != "" }},
	{"documento_estero", "Documento d'identità estero",
		func(a *entity.Artista) bool { return a.ExtraUE },
		func(a *entity.Artista) bool { return a.DocumentoEstero != "" }},
	{"nazionalita", "Nazionalità",
		func(a *entity.Artista) bool { return a.ExtraUE },
		func(a *entity.Artista) bool { return a.Nazionalita != "" }},
	{"data_nascita", "Data di nascita", sempre, func(a *entity.Artista) bool { return a.DataNascita != nil }},
	{"luogo_nascita", "Luogo di nascita", sempre, func(a *entity.Artista) bool { return a.LuogoNascita != "" }},
	{"indirizzo", "Indirizzo", sempre, func(a *entity.Artista) bool { return a.Indirizzo != "" }},
	{"tipo_contratto", "Tipo di contratto", sempre, func(a *entity.Artista) bool { return a.TipoContratto != "" }},
	{"iban", "IBAN", mai, func(a *entity.Artista) bool { return a.IBAN != "" }},
	{"partita_iva", "Partita IVA", mai, func(a *entity.Artista) bool { return a.PartitaIVA != "" }},
	{"email", "Email", mai, func(a *entity.Artista) bool { return a.Email != "" }},
	{"telefono", "Telefono", mai, func(a *entity.Artista) bool { return a.Telefono != "" }},
}

// VerificaCompletezza controlla l'anagrafica contro la checklist. Funzione
// pura: il chiamante la rilancia a ogni modifica del form senza effetti
// collaterali. La percentuale considera solo i campi obbligatori.
func VerificaCompletezza(a *entity.Artista) Completezza {
	esito := Completezza{CampiMancanti: []CampoMancante{}}
	var obbligatori, compilati int

	for _, c := range checklist {
		richiesto := c.obbligatorio(a)
		if richiesto {
			obbligatori++
		}
		if c.compilato(a) {
			if richiesto {
				compilati++
			}
			continue
		}
		esito.CampiMancanti = append(esito.CampiMancanti, CampoMancante{
			Campo:        c.nome,
			Etichetta:    c.etichetta,
			Obbligatorio: richiesto,
		})
	}

	if obbligatori > 0 {
		esito.Percentuale = int(math.Round(100 * float64(compilati) / float64(obbligatori)))
	}

	cfValido := a.CodiceFiscale == "" || fiscale.ValidaCodiceFiscale(a.CodiceFiscale).Valido
	esito.Completa = compilati == obbligatori && cfValido
	return esito
}
