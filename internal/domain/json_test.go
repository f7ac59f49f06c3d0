package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMap(t *testing.T) {
	t.Run("nulo grava objeto vazio", func(t *testing.T) {
		var m JSONMap
		value, err := m.Value()
		require.NoError(t, err)
		assert.Equal(t, []byte("{}"), value)
	})

	t.Run("lê bytes e texto", func(t *testing.T) {
		var m JSONMap
		require.NoError(t, m.Scan([]byte(`{"saas":1.5}`)))
		assert.Equal(t, 1.5, m["saas"])

		require.NoError(t, m.Scan(`{"language":"pt-BR"}`))
		assert.Equal(t, "pt-BR", m["language"])
	})

	t.Run("rejeita tipo desconhecido", func(t *testing.T) {
		var m JSONMap
		assert.Error(t, m.Scan(42))
	})

	t.Run("rejeita JSON inválido", func(t *testing.T) {
		var m JSONMap
		assert.Error(t, m.Scan([]byte(`[1,2]`)))
	})
}

func TestJSONList(t *testing.T) {
	var l JSONList
	value, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)

	require.NoError(t, l.Scan([]byte(`["seo","ads"]`)))
	assert.Equal(t, JSONList{"seo", "ads"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)
}
