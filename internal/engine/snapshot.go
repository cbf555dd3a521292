package engine

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick         uint64
	State        State
	Difficulty   config.DifficultyLevel
	RestartArmed bool
	Vertical     bool

	Score     int
	HighScore int
	Level     int
	Lives     int

	Playfield     core.Rect
	Avatar        core.Rect
	Opponents     []Entity
	Shots         []Entity
	OpponentShots []Entity
	Effects       []Entity
}

// Hash returns a deterministic FNV-1a hash of the snapshot, used to compare
// two simulations tick by tick.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeF := func(v float64) {
		writeU(math.Float64bits(v))
	}
	writeRect := func(r core.Rect) {
		writeF(r.X)
		writeF(r.Y)
		writeF(r.W)
		writeF(r.H)
	}

	writeU(s.Tick)
	h.Write([]byte(s.State))
	h.Write([]byte(s.Difficulty))
	writeU(uint64(s.Score))
	writeU(uint64(s.HighScore))
	writeU(uint64(s.Level))
	writeU(uint64(s.Lives))
	writeRect(s.Avatar)

	for _, group := range [][]Entity{s.Opponents, s.Shots, s.OpponentShots, s.Effects} {
		writeU(uint64(len(group)))
		for _, e := range group {
			writeU(e.ID)
			writeRect(e.Rect)
			writeU(uint64(e.TTL))
		}
	}
	return h.Sum64()
}
