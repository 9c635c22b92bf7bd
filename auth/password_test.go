package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Abcdef1!", true},
		{"no upper, digit or symbol", "abcdefgh", false},
		{"too short", "Ab1!", false},
		{"no digit", "Abcdefg!", false},
		{"no symbol", "Abcdefg1", false},
		{"no lowercase", "ABCDEFG1!", false},
		{"no uppercase", "abcdefg1!", false},
		{"empty", "", false},
		{"long valid with spread classes", "Sup3r-Secret-Pass", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}
