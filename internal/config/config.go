// Package config reads rebuild tuning knobs from the environment, falling
// back to the balanced default preset when unset.
package config

import (
	"os"
	"strconv"

	"github.com/leterax/voxelmesh/pkg/voxel"
)

const (
	envMaxChunksPerFrame = "VOXEL_MAX_CHUNKS_PER_FRAME"
	envMaxTimePerFrameMs = "VOXEL_MAX_TIME_PER_FRAME_MS"
	envVoxelSize         = "VOXEL_SIZE"
)

// ConfigFromEnv builds a voxel.RebuildConfig from environment variables,
// starting from voxel.DefaultRebuildConfig and overriding any field whose
// variable is set and parses cleanly.
func ConfigFromEnv() voxel.RebuildConfig {
	cfg := voxel.DefaultRebuildConfig()

	if raw, ok := os.LookupEnv(envMaxChunksPerFrame); ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cfg.MaxChunksPerFrame = v
		}
	}

	if raw, ok := os.LookupEnv(envMaxTimePerFrameMs); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			cfg.MaxTimePerFrameMs = v
		}
	}

	if raw, ok := os.LookupEnv(envVoxelSize); ok {
		if v, err := strconv.ParseFloat(raw, 32); err == nil && v > 0 {
			cfg.VoxelSize = float32(v)
		}
	}

	return cfg
}
