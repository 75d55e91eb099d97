package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("INV2PDF_DATA_DIR", "/srv/data")
	t.Setenv("INV2PDF_TIMEOUT", "90s")
	t.Setenv("INV2PDF_NO_OPEN", "true")

	env := loadEnvConfig(&bytes.Buffer{})

	if env.DataDir != "/srv/data" {
		t.Errorf("DataDir = %q", env.DataDir)
	}
	if env.Timeout != "90s" {
		t.Errorf("Timeout = %q", env.Timeout)
	}
	if !env.NoOpen {
		t.Error("NoOpen = false, want true")
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	warnUnknownEnvVars(out, []string{
		"INV2PDF_DATA_DIR=/x",
		"INV2PDF_TEMPALTE_DIR=/y", // typo
		"PATH=/usr/bin",
		"INV2PDF_BOGUS=1",
	})

	got := out.String()
	if !strings.Contains(got, "INV2PDF_TEMPALTE_DIR") {
		t.Errorf("typo not reported:\n%s", got)
	}
	if !strings.Contains(got, "INV2PDF_BOGUS") {
		t.Errorf("unknown var not reported:\n%s", got)
	}
	if strings.Contains(got, "INV2PDF_DATA_DIR") || strings.Contains(got, "PATH") {
		t.Errorf("known or foreign vars reported:\n%s", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{" true ", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := boolEnv(tt.value); got != tt.want {
			t.Errorf("boolEnv(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
