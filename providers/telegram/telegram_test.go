package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMethods = `[
	{"name": "sendMessage", "description": "Send a text message.", "returns": "Message", "fields": [{"name": "chat_id", "type": "Integer", "description": "Unique chat identifier."}]}
]`

func TestDecodeNormalizesMethodsIntoCatalogEntries(t *testing.T) {
	t.Parallel()

	entries, err := decode([]byte(sampleMethods))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "sendMessage", entry.Name)
	assert.Equal(t, "method", entry.Kind)
	assert.Equal(t, "telegram/sendMessage", entry.Path)
	assert.Equal(t, "Message", entry.Returns)
	require.Len(t, entry.Parameters, 1)
	assert.Equal(t, "chat_id", entry.Parameters[0].Name)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := decode([]byte(`not json`))
	assert.Error(t, err)
}
