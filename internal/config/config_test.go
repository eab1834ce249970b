package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediolano-app/mip-indexer/internal/config"
	"github.com/mediolano-app/mip-indexer/internal/domain"
)

func TestLoadAPIConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, domain.DEFAULT_RPC_URL, cfg.Starknet.RPCURL)
	assert.Equal(t, domain.DEFAULT_CONTRACT_ADDRESS, cfg.Starknet.ContractAddress)
	assert.Len(t, cfg.URI.IPFSGateways, 3)
	assert.Equal(t, 8*time.Second, cfg.URI.AttemptTimeout)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TxTTL)
	assert.True(t, cfg.Cache.Persist)
	assert.Equal(t, 8, cfg.Worker.PoolSize)
	assert.Equal(t, uint64(20), cfg.Timeline.DefaultPageSize)
	assert.Equal(t, uint64(50), cfg.Timeline.MaxPageSize)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
}

func TestLoadAPIConfig_EnvOverride(t *testing.T) {
	t.Setenv("MIP_INDEXER_SERVER_PORT", "9090")
	t.Setenv("MIP_INDEXER_STARKNET_RPC_URL", "https://rpc.example")
	t.Setenv("MIP_INDEXER_CACHE_TX_TTL", "5m")

	cfg, err := config.LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://rpc.example", cfg.Starknet.RPCURL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TxTTL)
}

func TestLoadActivityEmitterConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadActivityEmitterConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "ACTIVITIES", cfg.NATS.StreamName)
	assert.Equal(t, 10, cfg.NATS.MaxReconnects)
	assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
	assert.Equal(t, "indexer", cfg.Emitter.Source)
	assert.Equal(t, 30*time.Second, cfg.Emitter.PollInterval)
	assert.Equal(t, 100, cfg.Emitter.BatchLimit)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "mip",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=mip sslmode=disable",
		db.DSN())
}
