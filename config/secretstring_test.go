package config

import (
	"encoding/json"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func TestSecretString_Marshal(t *testing.T) {
	tests := []struct {
		name     string
		input    SecretString
		wantJSON string
		wantYAML any
	}{
		{
			name:     "empty password",
			input:    "",
			wantJSON: "null",
			wantYAML: nil,
		},
		{
			name:     "short password",
			input:    "x",
			wantJSON: `"` + SecretStringValue + `"`,
			wantYAML: SecretStringValue,
		},
		{
			name:     "typical password",
			input:    "owner-password-12345",
			wantJSON: `"` + SecretStringValue + `"`,
			wantYAML: SecretStringValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotJSON, err := tt.input.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(gotJSON) != tt.wantJSON {
				t.Errorf("MarshalJSON() = %s, want %s", gotJSON, tt.wantJSON)
			}

			gotYAML, err := tt.input.MarshalYAML()
			if err != nil {
				t.Fatalf("MarshalYAML() error = %v", err)
			}
			if gotYAML != tt.wantYAML {
				t.Errorf("MarshalYAML() = %v, want %v", gotYAML, tt.wantYAML)
			}
		})
	}
}

func TestSecretString_NoLeakage(t *testing.T) {
	// same shape as ViewerConfig, only the secret matters here
	input := struct {
		HistoryDB   string       `yaml:"history_db" json:"history_db"`
		PDFPassword SecretString `yaml:"pdf_password" json:"pdf_password"`
	}{
		HistoryDB:   "docview-history.db",
		PDFPassword: "owner-password-12345",
	}

	jsonBytes, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if strings.Contains(string(jsonBytes), string(input.PDFPassword)) {
		t.Error("PDF password leaked into JSON output")
	}
	if !strings.Contains(string(jsonBytes), "docview-history.db") {
		t.Error("non-secret field should marshal as is")
	}

	yamlBytes, err := yaml.Marshal(input)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if strings.Contains(string(yamlBytes), string(input.PDFPassword)) {
		t.Error("PDF password leaked into YAML output")
	}
	if !strings.Contains(string(yamlBytes), "pdf_password: "+SecretStringValue) {
		t.Errorf("expected pdf_password to marshal as %s:\n%s", SecretStringValue, yamlBytes)
	}
}

func TestSecretString_TypeConversion(t *testing.T) {
	// the backend still needs the real value
	original := "owner-password-12345"
	secret := SecretString(original)

	if string(secret) != original {
		t.Errorf("string(secret) = %s, want %s", string(secret), original)
	}

	jsonBytes, _ := json.Marshal(secret)
	if strings.Contains(string(jsonBytes), original) {
		t.Error("password visible in JSON output")
	}
}
