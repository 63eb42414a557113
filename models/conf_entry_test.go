package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfEntries_MarshalJSON_PreservesOrder(t *testing.T) {
	entries := ConfEntries{
		{Name: "zeta", Value: json.RawMessage(`"1"`)},
		{Name: "alpha", Value: json.RawMessage(`{ "x" : [1, 2] }`)},
		{Name: "missing"},
		{Name: "stored-null", Value: json.RawMessage(`null`)},
	}

	data, err := json.Marshal(entries)
	require.NoError(t, err)

	assert.Equal(t, `{"zeta":"1","alpha":{"x":[1,2]},"missing":null,"stored-null":null}`, string(data))
}

func TestConfEntries_MarshalJSON_Duplicates(t *testing.T) {
	entries := ConfEntries{
		{Name: "a", Value: json.RawMessage(`1`)},
		{Name: "b", Value: json.RawMessage(`2`)},
		{Name: "a", Value: json.RawMessage(`1`)},
	}

	data, err := json.Marshal(entries)
	require.NoError(t, err)

	assert.Equal(t, `{"a":1,"b":2}`, string(data))
}

func TestConfEntries_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(ConfEntries{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestConfEntry_Absent(t *testing.T) {
	assert.True(t, ConfEntry{Name: "b"}.Absent())
	assert.False(t, ConfEntry{Name: "a", Value: json.RawMessage(`1`)}.Absent())
	assert.False(t, ConfEntry{Name: "n", Value: json.RawMessage(`null`)}.Absent())
}
