package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	one := []string{"www.url.com"}
	two := []string{"www.url.com", "www.url.com"}

	tests := []struct {
		name     string
		editions []int
		cover    []string
		rules    []string
		icons    []string
		wantErr  bool
	}{
		{"empty editions", []int{}, one, one, one, true},
		{"nil everything", nil, nil, nil, nil, true},
		{"empty cover art url", []int{1}, nil, one, one, true},
		{"empty rule book url", []int{1}, one, nil, one, true},
		{"empty icon url", []int{1}, one, one, nil, true},
		{"different length cover art url", []int{1}, two, one, one, true},
		{"different length rule book url", []int{1, 2}, two, one, two, true},
		{"different length icon url", []int{1, 2}, two, two, one, true},
		{"zero edition", []int{0}, one, one, one, true},
		{"repeated edition", []int{2, 2}, two, two, two, true},
		{"single edition", []int{1}, one, one, one, false},
		{"two editions", []int{13, 21}, two, two, two, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewSet(1, "test name", tt.editions, tt.cover, tt.rules, tt.icons)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.editions, set.Editions)
				assert.Equal(t, "test name", set.Name)
				return
			}
			require.Error(t, err)
			assert.Equal(t, Set{}, set)
		})
	}
}

func TestNewSet_ConstructionErrorDetails(t *testing.T) {
	_, err := NewSet(7, "Seaside", []int{1, 2}, []string{"a", "b"}, []string{"a"}, []string{"a", "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstruction)

	var cerr *ConstructionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, uint8(7), cerr.SetID)
	assert.Equal(t, 2, cerr.Editions)
	assert.Equal(t, 1, cerr.Rules)
	assert.Contains(t, err.Error(), "Seaside")
}

func TestSet_UnmarshalJSONValidates(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var set Set
		err := json.Unmarshal([]byte(`{"id":2,"name":"set","editions":[1],"cover_art_url":["c"],"rule_book_url":["r"],"icon_url":["i"]}`), &set)
		require.NoError(t, err)
		assert.Equal(t, uint8(2), set.ID)
		assert.Equal(t, []string{"r"}, set.RuleBookURL)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		var set Set
		err := json.Unmarshal([]byte(`{"id":2,"name":"set","editions":[1,2],"cover_art_url":["c"],"rule_book_url":["r"],"icon_url":["i"]}`), &set)
		assert.ErrorIs(t, err, ErrConstruction)
	})

	t.Run("no editions", func(t *testing.T) {
		var set Set
		err := json.Unmarshal([]byte(`{"id":2,"name":"set","editions":[],"cover_art_url":[],"rule_book_url":[],"icon_url":[]}`), &set)
		assert.ErrorIs(t, err, ErrConstruction)
	})
}

func TestSet_MarshalJSON(t *testing.T) {
	set, err := NewSet(2, "set", []int{1}, []string{"c"}, []string{"r"}, []string{"i"})
	require.NoError(t, err)

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, `{"id":2,"name":"set","editions":[1],"cover_art_url":["c"],"rule_book_url":["r"],"icon_url":["i"]}`, string(data))
}
