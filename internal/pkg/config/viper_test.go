package config

import (
	"testing"
	"time"
)

const testYAML = `
app:
  debug: true
  server:
    http:
      read_timeout_seconds: 15
mail:
  host: smtp.example.com
  port: 587
  password: file-secret
instrument:
  log_mask_fields: "password, authorization,,email"
  trace_sample_ratio: 0.25
`

func TestNewViperFromBytes(t *testing.T) {
	// Arrange
	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	if err != nil {
		t.Fatalf("new viper: %v", err)
	}

	// Assert
	if !cfg.GetBool("app.debug") {
		t.Error("app.debug should be true")
	}
	if got := cfg.GetString("mail.host"); got != "smtp.example.com" {
		t.Errorf("mail.host = %q", got)
	}
	if got := cfg.GetInt("mail.port"); got != 587 {
		t.Errorf("mail.port = %d", got)
	}
	if got := cfg.GetFloat64("instrument.trace_sample_ratio"); got != 0.25 {
		t.Errorf("trace_sample_ratio = %v", got)
	}
	if got := cfg.GetSecond("app.server.http.read_timeout_seconds"); got != 15*time.Second {
		t.Errorf("read timeout = %v", got)
	}
}

func TestNewViperFromBytesRequiresType(t *testing.T) {
	if _, err := NewViperFromBytes(" ", []byte(testYAML)); err == nil {
		t.Fatal("expected error for empty config type")
	}
}

func TestGetArraySplitsAndTrims(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	if err != nil {
		t.Fatalf("new viper: %v", err)
	}

	got := cfg.GetArray("instrument.log_mask_fields")
	want := []string{"password", "authorization", "email"}
	if len(got) != len(want) {
		t.Fatalf("GetArray = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetArray[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	// Arrange
	t.Setenv("FORMRELAY_MAIL_PASSWORD", "env-secret")

	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	if err != nil {
		t.Fatalf("new viper: %v", err)
	}

	// Assert
	if got := cfg.GetString("mail.password"); got != "env-secret" {
		t.Errorf("mail.password = %q, want env override", got)
	}
}
