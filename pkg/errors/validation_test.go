package errors

import (
	"strings"
	"testing"
)

func TestValidateColumnName(t *testing.T) {
	tests := []struct {
		name    string
		col     string
		wantErr bool
	}{
		{"simple", "label", false},
		{"with spaces", "response time (ms)", false},
		{"unicode", "qualité", false},
		{"empty", "", true},
		{"control char", "bad\x01name", true},
		{"too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		err := ValidateColumnName(tt.col)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: ValidateColumnName(%q) error = %v, wantErr %v", tt.name, tt.col, err, tt.wantErr)
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "out.svg", false},
		{"nested", "charts/out.png", false},
		{"absolute", "/tmp/out.svg", false},
		{"empty", "", true},
		{"null byte", "out\x00.svg", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		err := ValidateOutputPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: ValidateOutputPath error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateListenAddr(t *testing.T) {
	tests := []struct {
		addr    string
		wantErr bool
	}{
		{":8080", false},
		{"localhost:9000", false},
		{"0.0.0.0:80", false},
		{"", true},
		{"localhost", true},
		{"localhost:", true},
		{"localhost:abc", true},
	}

	for _, tt := range tests {
		err := ValidateListenAddr(tt.addr)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateListenAddr(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
		}
	}
}
