// Command voxelserver wires a network chunk source into a ChunkManager and
// runs the rebuild/swap frame loop against it.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/voxelmesh/internal/config"
	"github.com/leterax/voxelmesh/pkg/game"
)

func main() {
	addr := flag.String("addr", "localhost:9000", "address of the upstream chunk source")
	tickRate := flag.Duration("tick", 50*time.Millisecond, "frame loop interval")
	flag.Parse()

	cfg := config.ConfigFromEnv()
	manager := game.NewChunkManagerWithConfig(cfg)

	src, err := game.NewChunkSource(*addr, manager)
	if err != nil {
		log.Fatalf("voxelserver: connect to %s: %v", *addr, err)
	}
	defer src.Close()
	game.LogSourceErrors(src)

	log.Printf("voxelserver: streaming chunks from %s", *addr)

	camera := mgl32.Vec3{0, 0, 0}
	ticker := time.NewTicker(*tickRate)
	defer ticker.Stop()

	for range ticker.C {
		frame := manager.Update(camera)
		if frame.Rebuild.ChunksRebuilt > 0 || frame.Swap.MeshesSwapped > 0 {
			log.Printf("voxelserver: rebuilt=%d swapped=%d dirty=%d total=%d",
				frame.Rebuild.ChunksRebuilt, frame.Swap.MeshesSwapped, frame.DirtyChunks, frame.TotalChunks)
		}
	}
}
