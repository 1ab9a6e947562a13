package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"leaddesk/internal/config"
)

func TestAppOutputHonorsUIConfig(t *testing.T) {
	app := &App{
		Config: &config.Config{
			UI: config.UIConfig{ColorEnabled: false, DateFormat: "02.01.2006"},
		},
	}

	out := app.Output(&cobra.Command{})
	if out.colorEnabled {
		t.Error("color should stay off when disabled in config")
	}

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if got := out.Date(date); got != "15.03.2024" {
		t.Errorf("Date = %q, want configured layout", got)
	}
}

func TestOutputDateDefaultLayout(t *testing.T) {
	out := NewOutput(&cobra.Command{})
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if got := out.Date(date); got != "2024-03-15" {
		t.Errorf("Date = %q, want 2024-03-15", got)
	}
}
