package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{RPCURL: "first", IPFSURL: "kept"}},
		&StructuredConfig{Adapter: Adapter{RPCURL: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Adapter.RPCURL)
	assert.Equal(t, "kept", cfg.Adapter.IPFSURL)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsDefaults(t *testing.T) {
	cfg, err := newTestBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultContractAddress, cfg.Adapter.ContractAddress)
	assert.Equal(t, DefaultIPFSURL, cfg.Adapter.IPFSURL)
	assert.Equal(t, DefaultTxTimeout, cfg.Adapter.TxTimeout)
	assert.Equal(t, DefaultReceiptInterval, cfg.Workers.ReceiptInterval)
	assert.Equal(t, DefaultJournalDSN, cfg.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_OverridesDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADAPTER_RPC_URL", "https://env.example.org")

	cfg, err := newTestBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.org", cfg.Adapter.RPCURL)
	assert.Equal(t, DefaultIPFSURL, cfg.Adapter.IPFSURL)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_OverridesEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADAPTER_TX_TIMEOUT", "1m")

	cfg, err := newTestBuilder("-tx-timeout", "2m").withDefaults().withEnv().withFlags().build()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.Adapter.TxTimeout)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newTestBuilder("-nope").withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.RPCURL = "json-rpc"
	payload.Wallet.KeystoreDir = "/json/keys"
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-rpc", b.configs[1].Adapter.RPCURL)
	assert.Equal(t, "/json/keys", b.configs[1].Wallet.KeystoreDir)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Adapter.RPCURL = "first"
	last := StructuredJSONConfig{}
	last.Adapter.RPCURL = "last-wins"

	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].Adapter.RPCURL)
}
