package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café COM Leite!!", "cafe-com-leite"},
		{"Calculadora PRICE", "calculadora-price"},
		{"Dashboard Inadimplência", "dashboard-inadimplencia"},
		{"  --espaços  e   hífens--  ", "espacos-e-hifens"},
		{"ÁÉÍÓÚ àèìòù ç ã õ", "aeiou-aeiou-c-a-o"},
		{"123 já-numérico", "123-ja-numerico"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToSlug(tc.in), "ToSlug(%q)", tc.in)
	}
}

func TestToSlugIdempotente(t *testing.T) {
	inputs := []string{"Café COM Leite!!", "abc", "", "A B C", "ção-ção"}
	for _, in := range inputs {
		once := ToSlug(in)
		assert.Equal(t, once, ToSlug(once), "ToSlug não é idempotente para %q", in)
	}
}

func TestToSlugSempreValidoOuVazio(t *testing.T) {
	inputs := []string{"Café!!", "--a--", "x", "ab", "çã", "um título bem comprido aqui"}
	for _, in := range inputs {
		slug := ToSlug(in)
		if len(slug) >= 3 {
			assert.True(t, IsValidSlug(slug), "ToSlug(%q) = %q deveria validar", in, slug)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("cafe-com-leite"))
	assert.True(t, IsValidSlug("abc"))
	assert.True(t, IsValidSlug("a-1"))

	// curto demais
	assert.False(t, IsValidSlug("ab"))
	assert.False(t, IsValidSlug(""))

	// forma inválida, independente do ToSlug
	assert.False(t, IsValidSlug("a--b"))
	assert.False(t, IsValidSlug("-abc"))
	assert.False(t, IsValidSlug("abc-"))
	assert.False(t, IsValidSlug("Abc"))
	assert.False(t, IsValidSlug("a b"))
	assert.False(t, IsValidSlug("açaí"))
}
