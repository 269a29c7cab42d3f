package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gekko3d/voxphys"
	"github.com/gekko3d/voxphys/voxel"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	ticks := flag.Int("ticks", 240, "Number of fixed ticks to simulate")
	every := flag.Int("report", 30, "Log body positions every N ticks")
	flag.Parse()

	cfg := voxphys.DefaultConfig()
	if *configPath != "" {
		loaded, err := voxphys.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "voxsim: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger := cfg.NewLogger()

	world := voxphys.NewWorld(cfg, logger)
	world.Spawn(buildTerrain())

	// A few crates dropped onto the floor and the ramp.
	drops := []mgl32.Vec3{{-4, 6, -4}, {0, 8, 5}, {4, 5, 2}}
	for i, pos := range drops {
		crate := voxphys.NewBody(voxphys.NewTransform(pos), mgl32.Vec3{0.5, 0.5, 0.5}, voxphys.ShapeCuboid).
			WithWeight(float32(i + 1)).
			WithFriction(mgl32.Vec3{0.9, 1, 0.9}).
			WithCollisionConfig(voxphys.NewCollisionConfig(voxphys.GroupMobs, voxphys.GroupAll))
		world.Spawn(crate)
	}
	player := voxphys.NewBody(voxphys.NewTransform(mgl32.Vec3{0, 3, 7}), mgl32.Vec3{0.4, 0.9, 0.4}, voxphys.ShapeCapsule).
		WithVelocity(mgl32.Vec3{0, 0, -0.2}).
		WithCollisionConfig(voxphys.NewCollisionConfig(voxphys.GroupPlayers, voxphys.GroupAll))
	world.Spawn(player)

	logger.Infof("simulating %d ticks at %.0f Hz with %d bodies", *ticks, cfg.TickRate, len(world.Bodies()))
	var total voxphys.TickStats
	for tick := 1; tick <= *ticks; tick++ {
		stats := world.Step()
		total.Collisions += stats.Collisions
		total.RetryRounds += stats.RetryRounds
		total.BudgetExhausted += stats.BudgetExhausted

		if *every > 0 && tick%*every == 0 {
			for _, b := range world.Bodies() {
				if b.IsChunk() {
					continue
				}
				logger.Infof("tick %d: %s %s pos=%v vel=%v", tick, b.Shape, b.ID, b.Current.Position, b.Velocity)
			}
		}
	}
	logger.Infof("done: collisions=%d rounds=%d exhausted=%d", total.Collisions, total.RetryRounds, total.BudgetExhausted)
}

// buildTerrain makes a 16x4x16 chunk with a solid floor and a short ramp
// climbing toward -z.
func buildTerrain() *voxphys.Body {
	chunk := voxel.MustNewChunk(16, 4, 16)
	chunk.SetPlane(0, [2]int{0, 0}, [2]int{16, 16}, voxel.PlaneXZ, voxel.NewData(voxel.Cuboid))
	for x := 6; x < 10; x++ {
		chunk.Set(x, 1, 10, voxel.NewData(voxel.Slope))
		chunk.Set(x, 1, 9, voxel.NewData(voxel.Cuboid))
	}
	// One cell per world unit, floor top at y=1.
	return voxphys.NewChunkBody(voxphys.NewTransform(mgl32.Vec3{0, 2, 0}), chunk, mgl32.Vec3{8, 2, 8})
}
