package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphanum = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GeneratePassword devuelve una contraseña temporal alfanumérica aleatoria
// (recuperación por DNI). Con n <= 0 usa 8 caracteres.
func GeneratePassword(n int) (string, error) {
	if n <= 0 {
		n = 8
	}
	return randomString(n)
}

// GenerateCode devuelve un código de verificación alfanumérico. Con n <= 0
// usa 6 caracteres.
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		n = 6
	}
	return randomString(n)
}

func randomString(n int) (string, error) {
	max := big.NewInt(int64(len(alphanum)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generar aleatorio: %w", err)
		}
		out[i] = alphanum[idx.Int64()]
	}
	return string(out), nil
}
