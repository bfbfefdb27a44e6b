package array

import (
	"encoding/json"

	"github.com/shamaton/msgpack/v2"
)

// Marshaler is the byte codec an array round-trips through. Two
// implementations ship with the package: JSON and Msgpack.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

type jsonMarshaler struct{}

func (jsonMarshaler) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonMarshaler) Unmarshal(data []byte, out any) error { return json.Unmarshal(data, out) }

type msgpackMarshaler struct{}

func (msgpackMarshaler) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

func (msgpackMarshaler) Unmarshal(data []byte, out any) error { return msgpack.Unmarshal(data, out) }

var (
	JSON    Marshaler = jsonMarshaler{}
	Msgpack Marshaler = msgpackMarshaler{}
)

// Encode writes the array as a plain element list through m.
func Encode[T any](m Marshaler, a *Array[T]) ([]byte, error) {
	return m.Marshal(a.elems)
}

// Decode rebuilds an array from bytes produced by Encode with the same
// marshaler.
func Decode[T any](m Marshaler, data []byte) (*Array[T], error) {
	var elems []T
	if err := m.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	return &Array[T]{elems: elems}, nil
}

// MarshalJSON encodes the array as a JSON list; an empty array encodes as
// [] rather than null.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	if a.elems == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.elems)
}

func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	a.elems = elems
	return nil
}
