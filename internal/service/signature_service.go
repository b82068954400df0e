package service

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"stp-signer/pkg/apperror"

	"github.com/youmark/pkcs8"
)

// RSASigner signs cadenas originales with the company's RSA key. It is
// immutable and safe for concurrent use.
type RSASigner struct {
	key *rsa.PrivateKey
}

// NewRSASigner wraps an already decrypted key.
func NewRSASigner(key *rsa.PrivateKey) *RSASigner {
	return &RSASigner{key: key}
}

// LoadSigner decrypts a PEM "ENCRYPTED PRIVATE KEY" (PKCS#8, PBES2) with
// passphrase. Text before the PEM block, such as PKCS#12 bag attributes, is
// ignored. A wrong passphrase yields CRY_001, anything unreadable CRY_002.
func LoadSigner(pemBytes []byte, passphrase string) (*RSASigner, error) {
	block, err := findEncryptedBlock(pemBytes)
	if err != nil {
		return nil, apperror.ErrKeyLoad(err)
	}

	if passphrase == "" {
		return nil, apperror.ErrInvalidPassphrase(errors.New("empty passphrase for an encrypted key"))
	}

	parsed, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(passphrase))
	if err != nil {
		// pkcs8 reports a plaintext that does not parse as a key this way.
		if strings.Contains(err.Error(), "incorrect password") {
			return nil, apperror.ErrInvalidPassphrase(err)
		}
		return nil, apperror.ErrKeyLoad(err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, apperror.ErrKeyLoad(fmt.Errorf("expected RSA key, got %T", parsed))
	}
	return NewRSASigner(key), nil
}

// Sign returns base64(RSA-PKCS1v15(SHA-256(msg))). PKCS#1 v1.5 is
// deterministic, so equal inputs give equal firmas.
func (s *RSASigner) Sign(msg []byte) (string, error) {
	digest := sha256.Sum256(msg)
	sig, err := rsa.SignPKCS1v15(nil, s.key, crypto.SHA256, digest[:])
	if err != nil {
		return "", apperror.ErrSigningFailure(err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify checks a base64 firma against msg.
func (s *RSASigner) Verify(msg []byte, firma string) error {
	sig, err := base64.StdEncoding.DecodeString(firma)
	if err != nil {
		return fmt.Errorf("decoding firma: %w", err)
	}
	digest := sha256.Sum256(msg)
	return rsa.VerifyPKCS1v15(&s.key.PublicKey, crypto.SHA256, digest[:], sig)
}

// PublicKey exposes the verification key.
func (s *RSASigner) PublicKey() *rsa.PublicKey {
	return &s.key.PublicKey
}

func findEncryptedBlock(data []byte) (*pem.Block, error) {
	rest := data
	var seen []string
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type == "ENCRYPTED PRIVATE KEY" {
			return block, nil
		}
		seen = append(seen, block.Type)
	}
	if len(seen) > 0 {
		return nil, fmt.Errorf("no ENCRYPTED PRIVATE KEY block (found %v); unencrypted keys are not accepted", seen)
	}
	return nil, errors.New("no PEM block found")
}
