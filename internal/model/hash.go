package model

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefixes for content-addressed identity. The version suffix allows
// the hash input format to change without colliding with old records.
const (
	domainDefinition = "vtscribe/definition/v1"
	domainOutput     = "vtscribe/output/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null separator prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// DefinitionHash computes the content-addressed identity of a test file
// definition. Stable across runs and across reformatting of the source file.
func DefinitionHash(f *TestFile) (string, error) {
	data, err := MarshalCanonical(f)
	if err != nil {
		return "", err
	}
	return hashWithDomain(domainDefinition, data), nil
}

// OutputHash computes the identity of a generated source file's bytes.
// Generation is deterministic, so unchanged definitions produce unchanged
// output hashes.
func OutputHash(generated []byte) string {
	return hashWithDomain(domainOutput, generated)
}
