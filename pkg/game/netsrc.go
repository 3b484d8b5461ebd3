package game

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"net"

	"github.com/leterax/voxelmesh/pkg/voxel"
)

// Upstream chunk-ingest packet IDs.
const (
	PacketIDSendChunk     uint8 = 0x00
	PacketIDSendMonoChunk uint8 = 0x01
)

// chunkPayload is a fully decoded chunk update waiting to be folded into a
// ChunkManager by the worker goroutine.
type chunkPayload struct {
	coord    voxel.ChunkCoord
	dense    []voxel.MaterialId
	mono     bool
	material voxel.MaterialId
}

// ChunkSource reads chunk updates from an upstream TCP connection and
// feeds them into a ChunkManager on a dedicated worker goroutine, mirroring
// the request/apply split of a network-driven world loader.
type ChunkSource struct {
	conn    net.Conn
	manager *ChunkManager
	queue   chan chunkPayload
	stop    chan struct{}
	stopped chan struct{}
}

// NewChunkSource dials address and returns a ChunkSource feeding manager.
// Call Run to start processing incoming packets.
func NewChunkSource(address string, manager *ChunkManager) (*ChunkSource, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dial chunk source: %w", err)
	}

	src := &ChunkSource{
		conn:    conn,
		manager: manager,
		queue:   make(chan chunkPayload, 64),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go src.worker()

	return src, nil
}

// Close stops the worker goroutine and closes the underlying connection.
func (s *ChunkSource) Close() error {
	close(s.stop)
	<-s.stopped
	return s.conn.Close()
}

// Run blocks reading and dispatching packets until the connection closes
// or an unrecoverable framing error occurs.
func (s *ChunkSource) Run() error {
	for {
		var packetID uint8
		if err := binary.Read(s.conn, binary.BigEndian, &packetID); err != nil {
			if err == io.EOF {
				return fmt.Errorf("chunk source connection closed")
			}
			return fmt.Errorf("read packet id: %w", err)
		}

		switch packetID {
		case PacketIDSendChunk:
			if err := s.handleSendChunk(); err != nil {
				return err
			}
		case PacketIDSendMonoChunk:
			if err := s.handleSendMonoChunk(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown chunk source packet id: %d", packetID)
		}
	}
}

func readChunkCoord(r io.Reader) (voxel.ChunkCoord, error) {
	var x, y, z int32
	if err := binary.Read(r, binary.BigEndian, &x); err != nil {
		return voxel.ChunkCoord{}, fmt.Errorf("read chunk x: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &y); err != nil {
		return voxel.ChunkCoord{}, fmt.Errorf("read chunk y: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &z); err != nil {
		return voxel.ChunkCoord{}, fmt.Errorf("read chunk z: %w", err)
	}
	return voxel.NewChunkCoord(x, y, z), nil
}

// handleSendChunk reads a full dense chunk payload: coord, then CS^3
// material ids (u16, big endian), X-major order.
func (s *ChunkSource) handleSendChunk() error {
	coord, err := readChunkCoord(s.conn)
	if err != nil {
		return err
	}

	voxelCount := voxel.CS * voxel.CS * voxel.CS
	raw := make([]byte, voxelCount*2)
	if _, err := io.ReadFull(s.conn, raw); err != nil {
		return fmt.Errorf("read dense chunk body: %w", err)
	}

	dense := make([]voxel.MaterialId, voxelCount)
	for i := range dense {
		dense[i] = voxel.MaterialId(binary.BigEndian.Uint16(raw[i*2:]))
	}

	s.queue <- chunkPayload{coord: coord, dense: dense}
	return nil
}

// handleSendMonoChunk reads a coord plus a single material id that fills
// the entire chunk.
func (s *ChunkSource) handleSendMonoChunk() error {
	coord, err := readChunkCoord(s.conn)
	if err != nil {
		return err
	}

	var materialRaw uint16
	if err := binary.Read(s.conn, binary.BigEndian, &materialRaw); err != nil {
		return fmt.Errorf("read mono chunk material: %w", err)
	}

	s.queue <- chunkPayload{coord: coord, mono: true, material: voxel.MaterialId(materialRaw)}
	return nil
}

// worker drains decoded payloads and applies them to the manager,
// isolating ChunkManager mutation from socket I/O.
func (s *ChunkSource) worker() {
	defer close(s.stopped)

	for {
		select {
		case <-s.stop:
			return
		case payload := <-s.queue:
			s.apply(payload)
		}
	}
}

func (s *ChunkSource) apply(payload chunkPayload) {
	s.manager.mu.Lock()
	defer s.manager.mu.Unlock()

	chunk := s.manager.getOrCreateChunkLocked(payload.coord)
	defer s.manager.dirtyTracker.MarkDirty(payload.coord)

	if payload.mono {
		if payload.material == voxel.MaterialEmpty {
			chunk.Clear()
			return
		}
		for x := uint32(0); x < voxel.ChunkSize; x++ {
			for y := uint32(0); y < voxel.ChunkSize; y++ {
				for z := uint32(0); z < voxel.ChunkSize; z++ {
					chunk.SetVoxelRaw(x, y, z, payload.material)
				}
			}
		}
		chunk.IncrementVersion()
		chunk.MarkDirty()
		return
	}

	dims := [3]int{voxel.CS, voxel.CS, voxel.CS}
	chunk.Voxels = voxel.DenseToChunkBlock(payload.dense, dims)
	chunk.IncrementVersion()
	chunk.MarkDirty()
}

// LogSourceErrors runs src in the background, logging a terminal error
// (connection closed, protocol violation) once Run returns.
func LogSourceErrors(src *ChunkSource) {
	go func() {
		if err := src.Run(); err != nil {
			log.Printf("chunk source stopped: %v", err)
		}
	}()
}
