package domain

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/envy"
	mwi18n "github.com/gobuffalo/mw-i18n/v2"
	"github.com/gofrs/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

var (
	// Logger is the application logger, normally writing to stdout
	Logger *logrus.Logger

	// ErrLogger is an instance of ErrLogProxy, and is the error logging
	// mechanism that can be used without access to the Buffalo context.
	ErrLogger ErrLogProxy
)

// T is the Buffalo i18n translator
var T *mwi18n.Translator

var extrasLock = sync.RWMutex{}

// Context keys
const (
	ContextKeyExtras        = "extras"
	ContextKeyTx            = "tx"
	ContextKeyPersonRequest = "person_request"
	ContextKeySearchBy      = "search_by"

	TypePerson  = "persons"
	TypeCountry = "countries"
)

const (
	// DateFormat is the ISO date layout used in exports
	DateFormat = "2006-01-02"

	// LocalizedDate is the layout used when a birth date is matched as text
	LocalizedDate = "02 January 2006"

	MaxFileSize = 1024 * 1024 * 10 // 10 Megabytes
)

// Event Kinds
const (
	EventApiPersonCreated  = "api:person:created"
	EventApiCountryCreated = "api:country:created"
)

// EventPayloadID is the map key for the record ID in event payloads
const EventPayloadID = "id"

// Env holds the values of environment variables
var Env struct {
	GoEnv         string `ignored:"true"`
	AppName       string `default:"Persons" split_words:"true"`
	ServerPort    int    `default:"3000" split_words:"true"`
	SessionSecret string `default:"not-so-secret" split_words:"true"`
	UIURL         string `default:"http://localhost:3000"`
	SentryDSN     string `default:"" split_words:"true"`

	// Name and expected value of the credential cookie required on
	// person edit submissions.
	AuthTokenName  string `default:"Auth-Key" split_words:"true"`
	AuthTokenValue string `default:"A100" split_words:"true"`

	// The diagnostic header attached to every response, and the order of
	// the interceptor that attaches it.
	ResponseHeaderKey   string `default:"my-key" split_words:"true"`
	ResponseHeaderValue string `default:"my-value" split_words:"true"`
	ResponseHeaderOrder int    `default:"1" split_words:"true"`

	// DisablePersonCreate short-circuits person create submissions with
	// 501 Not Implemented. Ships enabled, matching the feature gate's
	// default configuration.
	DisablePersonCreate bool `default:"true" split_words:"true"`

	AwsRegion          string `split_words:"true"`
	AwsS3Endpoint      string `split_words:"true"`
	AwsS3DisableSSL    bool   `split_words:"true"`
	AwsS3Bucket        string `split_words:"true"`
	AwsAccessKeyID     string `split_words:"true"`
	AwsSecretAccessKey string `split_words:"true"`
}

func init() {
	readEnv()

	Logger = logrus.New()
	if Env.GoEnv == "production" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}
	ErrLogger.Init(Logger)
}

// readEnv loads environment data into `Env`
func readEnv() {
	err := envconfig.Process("", &Env)
	if err != nil {
		log.Fatal(errors.New("error loading env vars: " + err.Error()))
	}

	// Doing this separately to avoid needing two environment variables for the same thing
	Env.GoEnv = envy.Get("GO_ENV", "development")
}

// Info logs a message with the context extras at info level
func Info(c buffalo.Context, msg string) {
	Logger.WithContext(c).WithFields(logrus.Fields(getExtras(c))).Info(msg)
}

// Error logs a message with the given extras at error level
func Error(c buffalo.Context, msg string, extras map[string]interface{}) {
	Logger.WithContext(c).WithFields(logrus.Fields(MergeExtras([]map[string]interface{}{getExtras(c), extras}))).
		Error(msg)
}

// NewExtra sets a new key-value pair in the `extras` entry of the context
func NewExtra(ctx context.Context, key string, e interface{}) {
	c := ctx.(buffalo.Context)
	extras := getExtras(c)

	extrasLock.Lock()
	defer extrasLock.Unlock()
	extras[key] = e

	c.Set(ContextKeyExtras, extras)
}

func getExtras(c buffalo.Context) map[string]interface{} {
	extras, _ := c.Value(ContextKeyExtras).(map[string]interface{})
	if extras == nil {
		extras = map[string]interface{}{}
	}

	return extras
}

// GetUUID creates a new, unique version 4 (random) UUID and returns it.
// Errors are ignored.
func GetUUID() uuid.UUID {
	id, err := uuid.NewV4()
	if err != nil {
		ErrLogger.Printf("error creating new uuid ... %v", err)
	}
	return id
}

// IsOtherThanNoRows returns false if the error is nil or is just reporting that there
// were no rows in the result set for a sql query.
func IsOtherThanNoRows(err error) bool {
	if err == nil {
		return false
	}

	if strings.Contains(err.Error(), sql.ErrNoRows.Error()) {
		return false
	}

	return true
}

// IsStringInSlice iterates over a slice of strings, looking for the given
// string. If found, true is returned. Otherwise, false is returned.
func IsStringInSlice(needle string, haystack []string) bool {
	for _, hs := range haystack {
		if needle == hs {
			return true
		}
	}

	return false
}

func MergeExtras(extras []map[string]interface{}) map[string]interface{} {
	allExtras := map[string]interface{}{}

	if len(extras) == 1 {
		return extras[0]
	}

	for _, e := range extras {
		for k, v := range e {
			allExtras[k] = v
		}
	}

	return allExtras
}
