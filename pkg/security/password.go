// Package security implementa el hashing de contraseñas y la generación de
// secretos temporales. El formato de hash es compatible con el esquema
// pbkdf2:sha256 de los registros ya existentes en la base:
//
//	pbkdf2:sha256:<iteraciones>$<salt>$<digest hex>
package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations usado al generar hashes nuevos.
	DefaultIterations = 600000
	saltBytes         = 16
	keyLen            = 32
	methodPrefix      = "pbkdf2:sha256"
)

// Hasher genera y verifica hashes salteados de contraseñas. Sin estado más
// allá de la cantidad de iteraciones; seguro para uso concurrente.
type Hasher struct {
	iterations int
}

// NewHasher construye un Hasher. Con iterations <= 0 usa DefaultIterations.
func NewHasher(iterations int) *Hasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Hasher{iterations: iterations}
}

// Hash deriva un hash PBKDF2-HMAC-SHA256 con un salt aleatorio de 16 bytes,
// fresco en cada llamada: dos hashes de la misma contraseña difieren siempre.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generar salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	digest := pbkdf2.Key([]byte(plaintext), []byte(saltHex), h.iterations, keyLen, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", methodPrefix, h.iterations, saltHex, hex.EncodeToString(digest)), nil
}

// Verify comprueba la contraseña contra el hash almacenado. La comparación de
// digests es en tiempo constante. Una entrada malformada devuelve false, nunca
// error ni pánico.
func (h *Hasher) Verify(encoded, plaintext string) bool {
	method, salt, digestHex, ok := splitHash(encoded)
	if !ok {
		return false
	}
	iterations, ok := parseMethod(method)
	if !ok {
		return false
	}
	want, err := hex.DecodeString(digestHex)
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, len(want), sha256.New)
	return hmac.Equal(got, want)
}

func splitHash(encoded string) (method, salt, digest string, ok bool) {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// parseMethod acepta "pbkdf2:sha256:<n>" y también "pbkdf2:sha256" a secas
// (hashes antiguos sin iteraciones explícitas).
func parseMethod(method string) (int, bool) {
	if method == methodPrefix {
		return DefaultIterations, true
	}
	rest, found := strings.CutPrefix(method, methodPrefix+":")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
