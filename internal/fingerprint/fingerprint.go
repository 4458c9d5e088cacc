// Package fingerprint computes deterministic fingerprints over payloads.
//
// The canonical form is frozen: object keys sorted bytewise, time values
// rendered as RFC3339 in UTC, scalars encoded with encoding/json defaults, no
// insignificant whitespace, UTF-8 bytes hashed with SHA-256 and rendered as
// lowercase hex. Changing any of this after fingerprints exist breaks every
// historical verification.
package fingerprint

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Size is the length of a rendered fingerprint in hex characters.
const Size = sha256.Size * 2

// Fingerprint canonicalizes payload and returns the lowercase hex SHA-256 of
// the canonical bytes. Identical logical content always yields identical
// output, across processes and over time.
func Fingerprint(payload map[string]any) (string, error) {
	canonical, err := Canonical(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Canonical returns the canonical byte encoding of payload.
func Canonical(payload map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, payload); err != nil {
		return nil, fmt.Errorf("canonicalize payload: %w", err)
	}
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case map[string]any:
		return writeObject(buf, val)
	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case time.Time:
		return writeScalar(buf, val.UTC().Format(time.RFC3339))
	case json.Number:
		buf.WriteString(val.String())
	default:
		return writeScalar(buf, val)
	}
	return nil
}

func writeObject(buf *bytes.Buffer, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeScalar(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(buf, m[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeScalar(buf *bytes.Buffer, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode scalar %T: %w", v, err)
	}
	buf.Write(encoded)
	return nil
}
