package configs

import (
	"os"
	"testing"
)

func chdirTemp(t *testing.T) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "envseal-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
		os.RemoveAll(tmpDir)
	})
}

func TestLoadSettings_NoFileReturnsDefaults(t *testing.T) {
	chdirTemp(t)

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if settings.Source != ".env" {
		t.Errorf("Source = %q, want .env", settings.Source)
	}
	if settings.Output != ".env.encrypted" {
		t.Errorf("Output = %q, want .env.encrypted", settings.Output)
	}
	if settings.KeyVar != "ENV_CRYPTO_KEY" {
		t.Errorf("KeyVar = %q, want ENV_CRYPTO_KEY", settings.KeyVar)
	}
	if settings.AuditLog != "" {
		t.Errorf("AuditLog = %q, want empty", settings.AuditLog)
	}
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	chdirTemp(t)

	content := "source = \".env.production\"\naudit_log = \"audit.jsonl\"\n"
	if err := os.WriteFile(SettingsFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if settings.Source != ".env.production" {
		t.Errorf("Source = %q, want .env.production", settings.Source)
	}
	if settings.Output != ".env.encrypted" {
		t.Errorf("Output should keep its default, got %q", settings.Output)
	}
	if settings.AuditLog != "audit.jsonl" {
		t.Errorf("AuditLog = %q, want audit.jsonl", settings.AuditLog)
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	chdirTemp(t)

	in := &Settings{
		Source: "config/.env",
		Output: "config/.env.sealed",
		KeyVar: "MY_SECRET_KEY",
	}
	if err := SaveSettings(in); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	out, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if out.Source != in.Source || out.Output != in.Output || out.KeyVar != in.KeyVar {
		t.Errorf("Round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestLoadSettings_InvalidTOML(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile(SettingsFile, []byte("source = [unclosed"), 0600); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	if _, err := LoadSettings(); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}
