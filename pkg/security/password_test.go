package security_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FedericoMusa/ordico2/pkg/security"
)

// Iteraciones bajas para que la suite corra rápido; el formato es el mismo.
const testIterations = 1000

func TestHash_IdaYVuelta(t *testing.T) {
	h := security.NewHasher(testIterations)

	hash, err := h.Hash("secreta123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "pbkdf2:sha256:"),
		"el hash debe llevar el prefijo del esquema")
	assert.True(t, h.Verify(hash, "secreta123"), "la contraseña original debe verificar")
	assert.False(t, h.Verify(hash, "otracosa"), "otra contraseña no debe verificar")
}

func TestHash_SaltAleatorioPorLlamada(t *testing.T) {
	h := security.NewHasher(testIterations)

	h1, err := h.Hash("mismaClave")
	require.NoError(t, err)
	h2, err := h.Hash("mismaClave")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "dos hashes de la misma contraseña deben diferir por el salt")
	assert.True(t, h.Verify(h1, "mismaClave"))
	assert.True(t, h.Verify(h2, "mismaClave"))
}

func TestVerify_EntradaMalformadaDevuelveFalse(t *testing.T) {
	h := security.NewHasher(testIterations)

	cases := []struct {
		name    string
		encoded string
	}{
		{"vacío", ""},
		{"sin separadores", "pbkdf2:sha256:1000"},
		{"esquema desconocido", "bcrypt$abc$def"},
		{"iteraciones no numéricas", "pbkdf2:sha256:abc$salt$00ff"},
		{"digest no hexadecimal", "pbkdf2:sha256:1000$salt$zzzz"},
		{"digest vacío", "pbkdf2:sha256:1000$salt$"},
		{"iteraciones negativas", "pbkdf2:sha256:-5$salt$00ff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, h.Verify(tc.encoded, "loquesea"))
		})
	}
}

// Los registros viejos no llevan las iteraciones en el método: se asume el
// valor por defecto del esquema.
func TestVerify_FormatoSinIteraciones(t *testing.T) {
	h := security.NewHasher(0)

	hash, err := h.Hash("clave")
	require.NoError(t, err)

	legacy := strings.Replace(hash, "pbkdf2:sha256:600000$", "pbkdf2:sha256$", 1)
	require.NotEqual(t, hash, legacy)
	assert.True(t, h.Verify(legacy, "clave"))
}

func TestGeneratePassword_LongitudYAlfabeto(t *testing.T) {
	p, err := security.GeneratePassword(0)
	require.NoError(t, err)
	assert.Len(t, p, 8, "la longitud por defecto es 8")

	p, err = security.GeneratePassword(20)
	require.NoError(t, err)
	assert.Len(t, p, 20)
	for _, r := range p {
		assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", string(r))
	}
}

func TestGenerateCode_LongitudPorDefecto(t *testing.T) {
	c, err := security.GenerateCode(0)
	require.NoError(t, err)
	assert.Len(t, c, 6)
}
