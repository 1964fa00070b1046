package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Minimalist Watch", "minimalist-watch"},
		{"Leather Wallet", "leather-wallet"},
		{"ALL UPPER CASE", "all-upper-case"},
		{"  padded  ", "padded"},
		{"18k  Gold-Plated!", "18k-gold-plated"},
		{"Hello---World", "hello-world"},
		{"Émeraude Çanta", "emeraude-canta"},
		{"Kadın Giyim", "kadin-giyim"},
		{"Straße", "strasse"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}
