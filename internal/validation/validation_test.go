package validation

import (
	"strings"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "parent@example.com", false},
		{"valid email with subdomain", "user@mail.example.com", false},
		{"valid email with plus", "parent+reports@example.com", false},
		{"surrounding whitespace", " parent@example.com ", false},
		{"empty", "", true},
		{"missing at sign", "parent.example.com", true},
		{"missing domain", "parent@", true},
		{"missing tld", "parent@example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("Email(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestChildName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"normal name", "Maya", false},
		{"two characters", "Jo", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"single character", "J", true},
		{"too long", strings.Repeat("a", 51), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ChildName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ChildName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
