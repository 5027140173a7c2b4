// Package modeltest runs wire vectors through an access codec.
package modeltest

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/schema"
)

// Vector is one PDU and its decoded form.
type Vector struct {
	Name   string
	PDU    string
	Msg    string
	Params schema.Container

	// Encoded is the expected re-encoding when it differs from PDU.
	Encoded string
}

// Codec builds a codec from families or fails the test.
func Codec(t *testing.T, families ...access.Family) *access.Codec {
	t.Helper()
	c, err := access.NewCodec(access.CodecConfig{Families: families})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	return c
}

// Hex decodes s, ignoring spaces, or fails the test.
func Hex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// Run decodes every vector, compares it with the expected message and
// encodes the result back.
func Run(t *testing.T, c *access.Codec, vectors []Vector) {
	t.Helper()
	for _, v := range vectors {
		t.Run(v.Name, func(t *testing.T) {
			pdu := Hex(t, v.PDU)

			got, err := c.Decode(pdu)
			if err != nil {
				t.Fatalf("Decode(%s) error = %v", v.PDU, err)
			}
			if got.Name != v.Msg {
				t.Errorf("Decode(%s) name = %s, want %s", v.PDU, got.Name, v.Msg)
			}
			want := v.Params
			if want == nil {
				want = schema.Container{}
			}
			if !reflect.DeepEqual(got.Params, want) {
				t.Errorf("Decode(%s) params = %#v, want %#v", v.PDU, got.Params, want)
			}

			enc, err := c.Encode(&access.Message{Name: v.Msg, Params: want})
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			expected := pdu
			if v.Encoded != "" {
				expected = Hex(t, v.Encoded)
			}
			if !bytes.Equal(enc, expected) {
				t.Errorf("Encode() = %x, want %x", enc, expected)
			}
		})
	}
}

// EncodeOnly checks the encoding of a message built by hand.
func EncodeOnly(t *testing.T, c *access.Codec, name string, params schema.Container, want string) {
	t.Helper()
	enc, err := c.Encode(&access.Message{Name: name, Params: params})
	if err != nil {
		t.Fatalf("Encode(%s) error = %v", name, err)
	}
	if w := Hex(t, want); !bytes.Equal(enc, w) {
		t.Errorf("Encode(%s) = %x, want %x", name, enc, w)
	}
}

// EncodeFails checks that encoding a message returns an error wrapping
// target, or any error when target is nil.
func EncodeFails(t *testing.T, c *access.Codec, name string, params schema.Container, target error) {
	t.Helper()
	_, err := c.Encode(&access.Message{Name: name, Params: params})
	if err == nil {
		t.Fatalf("Encode(%s) succeeded, want error", name)
	}
	if target != nil && !errors.Is(err, target) {
		t.Errorf("Encode(%s) error = %v, want %v", name, err, target)
	}
}

// DecodeFails checks that decoding pdu returns an error wrapping target,
// or any error when target is nil.
func DecodeFails(t *testing.T, c *access.Codec, pdu string, target error) {
	t.Helper()
	_, err := c.Decode(Hex(t, pdu))
	if err == nil {
		t.Fatalf("Decode(%s) succeeded, want error", pdu)
	}
	if target != nil && !errors.Is(err, target) {
		t.Errorf("Decode(%s) error = %v, want %v", pdu, err, target)
	}
}
