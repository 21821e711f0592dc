// Package config loads codec profiles from YAML. A profile pins every
// wire-format constant (alphabet, pad and sync trits, carrier pattern),
// so two nodes sharing a profile file are guaranteed to interoperate.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Neumenon/tribble/tribble"
)

// Profile is the YAML shape of a codec profile. Zero fields fall back to
// the canonical defaults, so an empty file is a valid profile.
type Profile struct {
	Name string `yaml:"name"`

	// Alphabet is the three display symbols in trit order: -1, 0, +1.
	Alphabet string `yaml:"alphabet"`

	// Pad and Sync are single symbols from the alphabet.
	Pad  string `yaml:"pad"`
	Sync string `yaml:"sync"`

	// Carrier is a pattern over the alphabet; empty disables the overlay.
	Carrier string `yaml:"carrier"`
}

// FieldError reports an invalid profile field.
type FieldError struct {
	Source string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s: %s: %s", e.Source, e.Field, e.Reason)
}

// Load reads and maps a profile file.
func Load(path string) (tribble.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return tribble.Config{}, fmt.Errorf("config: load profile: %w", err)
	}
	return parse(path, b)
}

// Parse maps raw YAML bytes to a codec configuration.
func Parse(data []byte) (tribble.Config, error) {
	return parse("profile", data)
}

func parse(source string, data []byte) (tribble.Config, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return tribble.Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return Map(source, p)
}

// Map validates a profile and produces the codec configuration.
func Map(source string, p Profile) (tribble.Config, error) {
	cfg := tribble.DefaultConfig()

	if p.Alphabet != "" {
		runes := []rune(p.Alphabet)
		if len(runes) != 3 {
			return tribble.Config{}, &FieldError{Source: source, Field: "alphabet", Reason: "must be exactly three symbols in trit order -1, 0, +1"}
		}
		a, err := tribble.NewAlphabet(runes[0], runes[1], runes[2])
		if err != nil {
			return tribble.Config{}, &FieldError{Source: source, Field: "alphabet", Reason: err.Error()}
		}
		cfg.Alphabet = a
	}

	if p.Pad != "" {
		t, err := symbolTrit(cfg.Alphabet, p.Pad)
		if err != nil {
			return tribble.Config{}, &FieldError{Source: source, Field: "pad", Reason: err.Error()}
		}
		cfg.Pad = t
	}

	if p.Sync != "" {
		t, err := symbolTrit(cfg.Alphabet, p.Sync)
		if err != nil {
			return tribble.Config{}, &FieldError{Source: source, Field: "sync", Reason: err.Error()}
		}
		cfg.Sync = t
	}

	if p.Carrier != "" {
		pat, err := tribble.ParsePattern(p.Carrier, cfg.Alphabet)
		if err != nil {
			return tribble.Config{}, &FieldError{Source: source, Field: "carrier", Reason: err.Error()}
		}
		cfg.Carrier = pat
	}

	return cfg, nil
}

func symbolTrit(a tribble.Alphabet, s string) (tribble.Trit, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("must be a single symbol, got %q", s)
	}
	return a.Trit(runes[0])
}
