package voxphys

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.TickRate = 10
	cfg.GravityEnabled = false
	return cfg
}

func TestWorldSpawnAndDespawn(t *testing.T) {
	w := NewWorld(testConfig(), nil)

	a := NewBody(NewTransform(mgl32.Vec3{}), mgl32.Vec3{1, 1, 1}, ShapeCuboid)
	b := NewBody(NewTransform(mgl32.Vec3{5, 0, 0}), mgl32.Vec3{1, 1, 1}, ShapeCuboid)
	idA := w.Spawn(a)
	idB := w.Spawn(b)
	w.Spawn(a)

	require.Len(t, w.Bodies(), 2)
	got, ok := w.Body(idB)
	assert.True(t, ok)
	assert.Same(t, b, got)

	assert.True(t, w.Despawn(idA))
	assert.False(t, w.Despawn(idA))
	assert.False(t, w.Despawn(uuid.New()))
	require.Len(t, w.Bodies(), 1)
	assert.Same(t, b, w.Bodies()[0])

	_, ok = w.Body(idA)
	assert.False(t, ok)
}

func TestWorldStepUsesConfiguredGravity(t *testing.T) {
	cfg := testConfig()
	cfg.GravityEnabled = true
	cfg.Gravity = mgl32.Vec3{0, -2, 0}
	w := NewWorld(cfg, nil)

	b := NewBody(NewTransform(mgl32.Vec3{0, 10, 0}), mgl32.Vec3{1, 1, 1}, ShapeCuboid)
	w.Spawn(b)
	w.Step()

	assert.Equal(t, mgl32.Vec3{0, -2, 0}, b.Velocity)
	assert.InDelta(t, 8, b.Current.Position.Y(), 1e-6)
	assert.Equal(t, uint64(1), w.Ticks())
}

func TestWorldUpdateRunsDueTicks(t *testing.T) {
	w := NewWorld(testConfig(), nil)
	b := NewBody(NewTransform(mgl32.Vec3{}), mgl32.Vec3{0.5, 0.5, 0.5}, ShapeCuboid).
		WithVelocity(mgl32.Vec3{1, 0, 0})
	id := w.Spawn(b)

	assert.Equal(t, 0, w.Update(50*time.Millisecond))
	assert.Equal(t, 1, w.Update(100*time.Millisecond))
	assert.InDelta(t, 1, b.Current.Position.X(), 1e-6)
	assert.InDelta(t, 0.5, w.Overstep(), 1e-6)

	// Half way between the spawn position and the first tick.
	tr, ok := w.InterpolatedTransform(id)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tr.Position.X(), 1e-6)

	_, ok = w.InterpolatedTransform(uuid.New())
	assert.False(t, ok)
}

func TestWorldUpdateDropsTimeBeyondTheCap(t *testing.T) {
	cfg := testConfig()
	cfg.MaxTicksPerUpdate = 2
	var out, errOut bytes.Buffer
	w := NewWorld(cfg, NewWriterLogger(&out, &errOut, "test", LevelInfo))

	ran := w.Update(1030 * time.Millisecond)

	assert.Equal(t, 2, ran)
	assert.Equal(t, uint64(2), w.Ticks())
	assert.InDelta(t, 0.3, w.Overstep(), 1e-6)
	assert.True(t, strings.Contains(errOut.String(), "WARN"), "expected a warning, got %q", errOut.String())
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"zero value", func(cfg *Config) { *cfg = Config{} }},
		{"zero tick rate", func(cfg *Config) { cfg.TickRate = 0 }},
		{"no ticks per update", func(cfg *Config) { cfg.MaxTicksPerUpdate = 0 }},
		{"unknown log level", func(cfg *Config) { cfg.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			assert.Panics(t, func() { NewWorld(cfg, nil) })
		})
	}

	assert.NotPanics(t, func() { NewWorld(nil, nil) })
}

func TestWorldStepLogsTickStats(t *testing.T) {
	var out, errOut bytes.Buffer
	w := NewWorld(testConfig(), NewWriterLogger(&out, &errOut, "test", LevelDebug))
	w.Spawn(NewBody(NewTransform(mgl32.Vec3{}), mgl32.Vec3{1, 1, 1}, ShapeCuboid))

	w.Step()

	assert.Contains(t, out.String(), "[test] DEBUG: tick 1: bodies=1 substeps=4")
	assert.Empty(t, errOut.String())
}
