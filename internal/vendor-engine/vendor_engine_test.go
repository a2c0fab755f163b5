package vendorengine

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"product-vendor-go/internal/catalog"
	"product-vendor-go/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.CatalogConfig {
	return config.CatalogConfig{
		Size:             5,
		Quorum:           3,
		GateReads:        true,
		RotationInterval: 10 * time.Millisecond,
		SerialPolicy:     "stable",
	}
}

func TestNewWiresGatedService(t *testing.T) {
	v, err := New(testConfig(), catalog.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)

	assert.Equal(t, 5, v.Catalog.Len())
	assert.Equal(t, 3, v.Gate.Threshold())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = v.Service.ListSerials(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewUngated(t *testing.T) {
	cfg := testConfig()
	cfg.GateReads = false

	v, err := New(cfg)
	require.NoError(t, err)

	serials, err := v.Service.ListSerials(context.Background())
	require.NoError(t, err)
	assert.Len(t, serials, 5)
}

func TestNewRejectsBadPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.SerialPolicy = "shuffle"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestCatalogSizeLimitDependsOnPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.Size = 500

	v, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 500, v.Catalog.Len())

	cfg.SerialPolicy = "reassign"
	_, err = New(cfg)
	assert.ErrorIs(t, err, catalog.ErrInvalidSize)

	cfg.Size = 301
	_, err = New(cfg)
	assert.NoError(t, err)
}

func TestStartSimulationRotatesAndPublishes(t *testing.T) {
	v, err := New(testConfig())
	require.NoError(t, err)

	updates, stop := v.Feed.Watch(4)
	defer stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- v.StartSimulation(ctx) }()

	select {
	case rotation := <-updates:
		assert.Equal(t, uint64(1), rotation.Sequence)
		assert.Len(t, rotation.Products, 5)
	case <-time.After(time.Second):
		t.Fatal("no rotation published")
	}

	cancel()
	assert.NoError(t, <-done)
}
