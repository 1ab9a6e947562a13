package config

import (
	"testing"

	"leaddesk/internal/errors"
)

func TestValidateRole(t *testing.T) {
	cfg := &Config{Team: TeamConfig{Role: "admin"}}
	if err := cfg.Validate(); !errors.Is(err, errors.ErrConfigInvalid) {
		t.Errorf("expected ErrConfigInvalid, got %v", err)
	}

	for _, role := range []string{"", "manager", "participant"} {
		cfg := &Config{Team: TeamConfig{Role: role}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("role %q should be valid: %v", role, err)
		}
	}
}
