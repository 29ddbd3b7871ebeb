package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldForSearch(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"João", "joao"},
		{"  María  ", "maria"},
		{"SALA DE REUNIÕES", "sala de reunioes"},
		{"sin-acentos", "sin-acentos"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, foldForSearch(tc.in), "entrada: %q", tc.in)
	}
}

func TestMatchesSearch(t *testing.T) {
	// El término llega ya normalizado; los campos se normalizan al comparar.
	assert.True(t, matchesSearch("joao", "João Silva", "12345"))
	assert.True(t, matchesSearch("silva", "João Silva"))
	assert.True(t, matchesSearch("123", "João Silva", "12345"))
	assert.False(t, matchesSearch("pedro", "João Silva", "12345"))
	assert.True(t, matchesSearch("", "cualquier campo"), "término vacío empareja todo")
}
