package array_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooomo/arr/array"
)

func TestEncodeDecode(t *testing.T) {
	type point struct {
		X int `json:"x" msgpack:"x"`
		Y int `json:"y" msgpack:"y"`
	}
	src := array.Of(point{X: 1, Y: 2}, point{X: 3, Y: 4})

	for _, tt := range []struct {
		name string
		m    array.Marshaler
	}{
		{name: "json", m: array.JSON},
		{name: "msgpack", m: array.Msgpack},
	} {
		t.Run(tt.name, func(t *testing.T) {
			data, err := array.Encode(tt.m, src)
			require.NoError(t, err)

			got, err := array.Decode[point](tt.m, data)
			require.NoError(t, err)
			assert.Equal(t, src.Values(), got.Values())
		})
	}
}

func TestArrayJSON(t *testing.T) {
	a := array.Of(1, 2, 3)
	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, "[1,2,3]", string(data))

	var back array.Array[int]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []int{1, 2, 3}, back.Values())
}

func TestArrayJSON_Empty(t *testing.T) {
	data, err := json.Marshal(array.New[string]())
	require.NoError(t, err)
	if string(data) != "[]" {
		t.Errorf("Marshal() = %s, want []", data)
	}
}

func TestDynamic(t *testing.T) {
	d := array.DynamicOf(1, "two", 3.0, true)
	if d.Len() != 4 {
		t.Errorf("Len() = %v, want 4", d.Len())
	}

	if !array.Includes(d, any("two")) {
		t.Error("Includes() = false, want true")
	}
	if array.Includes(d, any("three")) {
		t.Error("Includes() = true, want false")
	}

	strings := d.Filter(func(v any, i int) bool {
		_, ok := v.(string)
		return ok
	})
	assert.Equal(t, []any{"two"}, strings.Values())

	d.Push([]byte("not comparable, still storable"))
	if d.Len() != 5 {
		t.Errorf("Len() = %v, want 5", d.Len())
	}
}
