package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Title    Optional[string] `json:"title"`
		Position Optional[int]    `json:"position"`
	}

	t.Run("absent field stays unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Title.Set)
		assert.False(t, p.Position.Set)
	})

	t.Run("present value is set and valid", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Heart","position":3}`), &p))

		assert.True(t, p.Title.Set)
		assert.True(t, p.Title.Valid)
		assert.Equal(t, "Heart", p.Title.Value)
		assert.True(t, p.Position.Set)
		assert.Equal(t, 3, p.Position.Value)
	})

	t.Run("explicit null is set but not valid", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"title":null}`), &p))

		assert.True(t, p.Title.Set)
		assert.False(t, p.Title.Valid)
		assert.Empty(t, p.Title.Value)
	})

	t.Run("wrong type fails", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"position":"third"}`), &p))
	})
}

func TestOptional_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewOptional("Heart"))
	require.NoError(t, err)
	assert.JSONEq(t, `"Heart"`, string(b))

	b, err = json.Marshal(NullOptional[string]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
