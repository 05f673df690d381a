package it

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diststore/internal/location"
)

const binaryPath = "../../diststore"

func requireBinary(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("binary not found, build with: go build -o diststore ./cmd/diststore")
	}
}

func TestSmoke_PutGetAcrossNodes(t *testing.T) {
	requireBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	require.NoError(t, cluster.Start(ctx, 9920, 0))
	require.NoError(t, cluster.Start(ctx, 9921, 9920))
	require.NoError(t, cluster.Start(ctx, 9922, 9920))

	client := cluster.Client()

	// The roster converges through the join gossip.
	roster, err := client.GetAll(ctx, cluster.Location(9920))
	require.NoError(t, err)
	assert.ElementsMatch(t, []location.Location{
		cluster.Location(9920),
		cluster.Location(9921),
		cluster.Location(9922),
	}, roster)

	// Writes through one node read back through another.
	require.NoError(t, client.Put(ctx, cluster.Location(9920), "smoke-key", "smoke-value"))
	value, err := client.Get(ctx, cluster.Location(9921), "smoke-key")
	require.NoError(t, err)
	assert.Equal(t, "smoke-value", value)
}

func TestSmoke_GracefulExitHandsOff(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	requireBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	require.NoError(t, cluster.Start(ctx, 9930, 0))
	require.NoError(t, cluster.Start(ctx, 9931, 9930))
	require.NoError(t, cluster.Start(ctx, 9932, 9930))

	client := cluster.Client()
	keys := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, key := range keys {
		require.NoError(t, client.Put(ctx, cluster.Location(9930), string(key), "v-"+string(key)))
	}

	require.NoError(t, cluster.StopGraceful(9932, 30*time.Second))

	// The departed node is gone from the roster and every key
	// survived the hand-off.
	roster, err := client.GetAll(ctx, cluster.Location(9930))
	require.NoError(t, err)
	assert.ElementsMatch(t, []location.Location{
		cluster.Location(9930),
		cluster.Location(9931),
	}, roster)

	for _, key := range keys {
		value, err := client.Get(ctx, cluster.Location(9931), string(key))
		require.NoError(t, err)
		assert.Equal(t, "v-"+string(key), value, "key %s after hand-off", string(key))
	}
}

func TestSmoke_AbruptDeathIsEvicted(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	requireBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	require.NoError(t, cluster.Start(ctx, 9940, 0))
	require.NoError(t, cluster.Start(ctx, 9941, 9940))

	cluster.Kill(9941)

	// Dead peers are discovered lazily: puts walk every key until one
	// routed to the dead node trips the eviction.
	client := cluster.Client()
	keys := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, key := range keys {
		require.NoError(t, client.Put(ctx, cluster.Location(9940), string(key), "x"))
	}

	roster, err := client.GetAll(ctx, cluster.Location(9940))
	require.NoError(t, err)
	assert.ElementsMatch(t, []location.Location{cluster.Location(9940)}, roster)
}
