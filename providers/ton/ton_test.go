package ton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEndpoints = `[
	{"name": "getWalletInformation", "kind": "endpoint", "description": "Returns wallet balance and state.", "category": "accounts", "returns": "WalletInfo", "parameters": [{"name": "address", "type": "string", "description": "Wallet address."}]},
	{"name": "sendBoc", "description": "Sends a BoC to the network.", "category": "transactions"}
]`

func TestDecodeNormalizesEndpointsIntoCatalogEntries(t *testing.T) {
	t.Parallel()

	entries, err := decode([]byte(sampleEndpoints))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "ton/getWalletInformation", entries[0].Path)
	assert.Equal(t, "accounts", entries[0].Category)
	require.Len(t, entries[0].Parameters, 1)
}

func TestDecodeDefaultsMissingKindToEndpoint(t *testing.T) {
	t.Parallel()

	entries, err := decode([]byte(sampleEndpoints))
	require.NoError(t, err)
	assert.Equal(t, "endpoint", entries[1].Kind)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := decode([]byte(`{`))
	assert.Error(t, err)
}
