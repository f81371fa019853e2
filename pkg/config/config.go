package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config raggruppa la configurazione dell'applicazione (lettura via Viper da
// variabili d'ambiente e opzionalmente da file).
type Config struct {
	App     AppConfig
	DB      DBConfig
	HTTP    HTTPConfig
	SDI     SDIConfig
	Agenzia AgenziaConfig
}

// AppConfig configurazione generale dell'applicazione.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// AgenziaConfig dati dell'agenzia emittente usati nella FatturaPA e nel PDF.
type AgenziaConfig struct {
	RagioneSociale string
	PartitaIVA     string
	CodiceFiscale  string
	Indirizzo      string
	CAP            string
	Citta          string
	Provincia      string
	RegimeFiscale  string // codice RF (es. "RF01" ordinario)
}

// SDIConfig configurazione per la trasmissione al Sistema di Interscambio.
type SDIConfig struct {
	IDTrasmittente      string // partita IVA del trasmittente
	PaeseTrasmittente   string
	FormatoTrasmissione string // "FPR12" privati, "FPA12" pubblica amministrazione
}

// DBConfig configurazione PostgreSQL. Se DatabaseURL non è vuoto viene usato
// come connection string completa.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString restituisce il DSN da usare: DatabaseURL se definito,
// altrimenti quello costruito con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN costruisce la connection string PostgreSQL con URL encoding per i
// caratteri speciali della password.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configurazione del server HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr restituisce l'indirizzo di ascolto (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load legge la configurazione dalle variabili d'ambiente (e opzionalmente
// da un file .env). Le env var hanno priorità: APP_ENV, DB_HOST, SDI_*, ecc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // il file è facoltativo

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "agibilita-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "agibilita"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		SDI: SDIConfig{
			IDTrasmittente:      getString(v, "SDI_ID_TRASMITTENTE", ""),
			PaeseTrasmittente:   getString(v, "SDI_PAESE_TRASMITTENTE", "IT"),
			FormatoTrasmissione: getString(v, "SDI_FORMATO", "FPR12"),
		},
		Agenzia: AgenziaConfig{
			RagioneSociale: getString(v, "AGENZIA_RAGIONE_SOCIALE", ""),
			PartitaIVA:     getString(v, "AGENZIA_PARTITA_IVA", ""),
			CodiceFiscale:  getString(v, "AGENZIA_CODICE_FISCALE", ""),
			Indirizzo:      getString(v, "AGENZIA_INDIRIZZO", ""),
			CAP:            getString(v, "AGENZIA_CAP", ""),
			Citta:          getString(v, "AGENZIA_CITTA", ""),
			Provincia:      getString(v, "AGENZIA_PROVINCIA", ""),
			RegimeFiscale:  getString(v, "AGENZIA_REGIME_FISCALE", "RF01"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
