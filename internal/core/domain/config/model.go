package configdomain

import (
	"time"
)

// Keys of every configuration value.
const (
	KeyQuestionnaireURL = "questionnaire_url"
	KeyToken            = "token"
	KeyTokenFile        = "token_file"
	KeyUserAgent        = "user_agent"
	KeyTimeout          = "timeout"
	KeyLogLevel         = "log_level"
	KeyDebug            = "debug"
)

// Source priorities. Lower wins.
const (
	PriorityFlag     = 1
	PriorityEnv      = 2
	PriorityDotenv   = 3
	PriorityFile     = 4
	PriorityDefaults = 5
)

// Entry represents a single configuration value with provenance and priority.
type Entry struct {
	Key        string
	Value      interface{}
	Source     string
	SourcePath string
	Priority   int
}

// Snapshot is a collection of config entries keyed by field name.
type Snapshot map[string]Entry

// Merge merges another snapshot into this one respecting priority
// (lower number indicates higher priority).
func (s Snapshot) Merge(other Snapshot) {
	for k, e := range other {
		if existing, ok := s[k]; !ok || e.Priority <= existing.Priority {
			s[k] = e
		}
	}
}

// Config is the effective client configuration.
type Config struct {
	QuestionnaireURL string
	Token            string
	TokenFile        string
	UserAgent        string
	// Timeout bounds the whole HTTP exchange. Zero means no timeout.
	Timeout  time.Duration
	LogLevel string
	Debug    bool
}

// Defaults returns the lowest priority snapshot.
func Defaults() Snapshot {
	snap := Snapshot{}
	add := func(key string, v interface{}) {
		snap[key] = Entry{Key: key, Value: v, Source: "default", Priority: PriorityDefaults}
	}
	add(KeyUserAgent, "qform-cli/1.0")
	add(KeyTimeout, time.Duration(0))
	add(KeyLogLevel, "info")
	add(KeyDebug, false)
	return snap
}

// FromSnapshot builds a Config. Values of the wrong type are ignored.
func FromSnapshot(snap Snapshot) Config {
	var c Config
	str := func(key string) string {
		s, _ := snap[key].Value.(string)
		return s
	}
	c.QuestionnaireURL = str(KeyQuestionnaireURL)
	c.Token = str(KeyToken)
	c.TokenFile = str(KeyTokenFile)
	c.UserAgent = str(KeyUserAgent)
	c.LogLevel = str(KeyLogLevel)
	c.Timeout, _ = snap[KeyTimeout].Value.(time.Duration)
	c.Debug, _ = snap[KeyDebug].Value.(bool)
	return c
}
