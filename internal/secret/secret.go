package secret

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

const (
	// KeySize is the number of random bytes in a secret (256 bits)
	KeySize = 32

	// EncodedLength is the length of a standard base64 encoded secret
	EncodedLength = 44

	// Label prefixes the secret on output
	Label = "Chave secreta JWT:"
)

var (
	// ErrInvalidEncoding is returned when a secret is not standard padded base64
	ErrInvalidEncoding = errors.New("secret is not valid standard base64")

	// ErrWeakKey is returned when a decoded secret is shorter than KeySize bytes
	ErrWeakKey = errors.New("secret key is too weak for HMAC-SHA256")
)

// Generator produces JWT signing secrets from an entropy source
type Generator struct {
	reader io.Reader
}

// NewGenerator creates a generator backed by the operating system CSPRNG
func NewGenerator() *Generator {
	return &Generator{reader: rand.Reader}
}

// NewGeneratorWithReader creates a generator that reads entropy from r
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{reader: r}
}

// GenerateKey reads a new random 256-bit key
func (g *Generator) GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(g.reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}
	return key, nil
}

// Generate returns a new secret encoded with standard base64
func (g *Generator) Generate() (string, error) {
	key, err := g.GenerateKey()
	if err != nil {
		return "", err
	}
	return Encode(key), nil
}

// Encode encodes a key with the standard padded alphabet.
// jjwt's Decoders.BASE64 rejects the URL-safe variant.
func Encode(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// Decode parses a secret the way the Java consumer does and rejects keys
// shorter than 256 bits
func Decode(secret string) ([]byte, error) {
	key, err := base64.StdEncoding.Strict().DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(key) < KeySize {
		return nil, fmt.Errorf("%w: got %d bits, need at least %d", ErrWeakKey, len(key)*8, KeySize*8)
	}
	return key, nil
}

// WriteSecret writes the labelled secret as a single line
func WriteSecret(w io.Writer, secret string) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", Label, secret); err != nil {
		return fmt.Errorf("failed to write secret: %w", err)
	}
	return nil
}

// Verify checks that a secret has the printed length and decodes back to
// exactly KeySize bytes
func Verify(secret string) error {
	if len(secret) != EncodedLength {
		return fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidEncoding, EncodedLength, len(secret))
	}

	key, err := Decode(secret)
	if err != nil {
		return err
	}
	if len(key) != KeySize {
		return fmt.Errorf("%w: decoded %d bytes, expected %d", ErrInvalidEncoding, len(key), KeySize)
	}
	return nil
}
