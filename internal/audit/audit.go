// Package audit fingerprints evidence records so that downstream consumers
// can prove a grade was not altered after the engine produced it.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gowebpki/jcs"
	"github.com/pkg/errors"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
)

// Fingerprint returns the sha256 hex digest of the RFC 8785 canonical JSON
// form of the evidence. Identical evidence always yields an identical
// digest, independent of key order or whitespace.
func Fingerprint(ev *models.ExecutionEvidence) (string, error) {
	raw, err := json.Marshal(ev)
	if err != nil {
		return "", errors.Wrap(err, "marshal evidence")
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", errors.Wrap(err, "canonicalize evidence")
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
