package texto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grxsoft/crm-api/pkg/texto"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"José Rodríguez", "jose rodriguez"},
		{"  GÓMEZ  ", "gomez"},
		{"ñoño", "nono"},
		{"sin tildes", "sin tildes"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, texto.Normalizar(c.entrada), c.entrada)
	}
}
