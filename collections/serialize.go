package collections

import (
	"bytes"
	"crypto/subtle"
	"encoding/base64"
	"encoding/gob"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-collection/omap"
)

func init() {
	gob.Register(new(Collection))
}

// MarshalBinary implements [encoding.BinaryMarshaler] with a gob encoding of
// the items. Values of custom types inside the collection must be registered
// with [gob.Register].
func (c *Collection) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(c.items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (c *Collection) UnmarshalBinary(data []byte) error {
	items := omap.New()
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	c.items = items
	return nil
}

// Serialize returns a self-checking text form of the collection that
// [Unserialize] restores: base64 of a BLAKE2b-256 checksum followed by the
// binary encoding.
func (c *Collection) Serialize() (string, error) {
	payload, err := c.MarshalBinary()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(payload)
	blob := make([]byte, 0, len(sum)+len(payload))
	blob = append(blob, sum[:]...)
	blob = append(blob, payload...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Unserialize replaces the receiver's items with those stored in blob.
func (c *Collection) Unserialize(blob string) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if len(raw) < blake2b.Size256 {
		return fmt.Errorf("%w: too short", ErrInvalidPayload)
	}
	sum, payload := raw[:blake2b.Size256], raw[blake2b.Size256:]
	want := blake2b.Sum256(payload)
	if subtle.ConstantTimeCompare(sum, want[:]) != 1 {
		return ErrChecksumMismatch
	}
	return c.UnmarshalBinary(payload)
}

// Unserialize restores a collection from a blob produced by
// [Collection.Serialize].
func Unserialize(blob string) (*Collection, error) {
	c := Empty()
	if err := c.Unserialize(blob); err != nil {
		return nil, err
	}
	return c, nil
}
