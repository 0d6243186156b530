// Package urlkey derives stable identifiers from URLs. Two inputs
// that parse (with the standard encode sets) to the same canonical
// serialization get the same key, which is what dedup sets and cache
// indexes want.
package urlkey

import (
	"encoding/hex"

	"lukechampine.com/blake3"

	"github.com/rohmanhakim/safeurl/pkg/safeurl"
)

// Key returns the hex BLAKE3 digest of the canonical form of rawURL,
// with the fragment excluded.
//
// Properties:
//   - Deterministic: same input always produces the same key
//   - Spelling-insensitive: equivalent URL spellings share a key
//   - Fragment-insensitive: anchors never change document identity
func Key(rawURL string) (string, error) {
	canonical, err := Canonical(rawURL)
	if err != nil {
		return "", err
	}
	digest := blake3.Sum256([]byte(canonical))
	return hex.EncodeToString(digest[:]), nil
}

// Canonical returns the canonical fragment-free serialization keys
// are derived from.
func Canonical(rawURL string) (string, error) {
	u, err := safeurl.Parse(rawURL, nil)
	if err != nil {
		return "", err
	}
	return u.Serialize(&safeurl.SerializeOptions{ExcludeFragment: true}), nil
}
