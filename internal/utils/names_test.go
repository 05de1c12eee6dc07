package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/upcyclehq/recycle_scan_api/internal/utils"
)

func TestNormalizeFullName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and title-cases", "  maria   silva ", "Maria Silva"},
		{"collapses internal whitespace", "jo\t\nana", "Jo Ana"},
		{"mixed case flattened", "McGREGOR o'neil", "Mcgregor O'neil"},
		{"whitespace only", "   \t ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeFullName(tt.in))
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "MariaSilva", "mariasilva"},
		{"strips internal whitespace", " maria silva ", "mariasilva"},
		{"already normal", "maria_99", "maria_99"},
		{"whitespace only", "  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeUsername(tt.in))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		username string
		want     string
	}{
		{"prefers trimmed full name", "  Maria Silva  ", "maria123", "Maria Silva"},
		{"derives from username with digit run", "", "maria123", "Maria 123"},
		{"multiple digit runs", "", "eco2warrior7", "Eco 2warrior 7"},
		{"no digits", "", "maria", "Maria"},
		{"full name of only spaces falls back", "   ", "scanner42", "Scanner 42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.DisplayName(tt.fullName, tt.username))
		})
	}
}
