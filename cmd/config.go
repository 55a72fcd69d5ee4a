package main

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host                      string        `env:"HOST,default=localhost"`
	Port                      int           `env:"PORT,default=8080"`
	LogLevel                  string        `env:"LOG_LEVEL,required=true"`
	BusCapacity               int           `env:"BUS_CAPACITY,default=32"`
	SessionSecret             string        `env:"SESSION_SECRET,required=true"`
	SessionTTL                time.Duration `env:"SESSION_TTL,default=24h"`
	ModerationWords           string        `env:"MODERATION_WORDS"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	TelemetryInterval         time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
	RestartInterval           time.Duration `env:"RESTART_INTERVAL,default=200ms"`
}

// CensoredWords splits the configured comma list; an empty variable means
// moderation is disabled.
func (c Config) CensoredWords() []string {
	if strings.TrimSpace(c.ModerationWords) == "" {
		return nil
	}
	var words []string
	for _, word := range strings.Split(c.ModerationWords, ",") {
		if w := strings.TrimSpace(word); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.ModerationCharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			c.ModerationCharReplacement,
		)
	}
	return r[0], nil
}
