package textutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/categories-api/pkg/textutil"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"sin cambios", "category A", "category A"},
		{"recorta espacios", "  Electrónica \n", "Electrónica"},
		{"compone acentos", "Cafe\u0301", "Caf\u00e9"},
		{"solo espacios", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textutil.NormalizeName(tc.in))
		})
	}
}

func TestNameLength_CuentaRunas(t *testing.T) {
	assert.Equal(t, 4, textutil.NameLength("Café"))
	assert.Equal(t, 100, textutil.NameLength(strings.Repeat("ñ", 100)))
	assert.Equal(t, 0, textutil.NameLength(""))
}
