package engine

import (
	"math/rand"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// idSource hands out entity IDs. One source is shared by every pool of a
// world so IDs are unique across kinds too.
type idSource struct {
	next uint64
}

func (s *idSource) take() uint64 {
	s.next++
	return s.next
}

// Pool owns the live entities of one kind.
//
// Entities live in an arena of slots. Removal only marks a slot as a
// tombstone, so removing while iterating with Each is safe; tombstones are
// dropped by Compact at the end of the tick. Entities added during Each are
// not visited by that same Each call.
type Pool struct {
	kind  Kind
	ids   *idSource
	slots []Entity
	live  int
}

// NewPool creates an empty standalone pool.
func NewPool(kind Kind) *Pool {
	return newPool(kind, &idSource{})
}

// newPool creates a pool drawing IDs from a shared source.
func newPool(kind Kind, ids *idSource) *Pool {
	return &Pool{kind: kind, ids: ids}
}

// Kind returns the kind of entity the pool holds.
func (p *Pool) Kind() Kind {
	return p.kind
}

// Add spawns a new entity and returns its ID.
func (p *Pool) Add(r core.Rect, vx, vy float64, ttl int) uint64 {
	id := p.ids.take()
	p.slots = append(p.slots, Entity{
		ID:   id,
		Kind: p.kind,
		Rect: r,
		VX:   vx,
		VY:   vy,
		TTL:  ttl,
	})
	p.live++
	return id
}

// Count returns the number of live entities, excluding tombstones.
func (p *Pool) Count() int {
	return p.live
}

// Each calls fn for every live entity in slot order. fn may mutate the
// entity and may remove entities from this or any other pool.
func (p *Pool) Each(fn func(e *Entity)) {
	n := len(p.slots)
	for i := 0; i < n; i++ {
		e := &p.slots[i]
		if e.dead {
			continue
		}
		fn(e)
	}
}

// Get returns the live entity with the given ID.
// The pointer is only valid until the next Add or Compact.
func (p *Pool) Get(id uint64) (*Entity, bool) {
	for i := range p.slots {
		if p.slots[i].ID == id && !p.slots[i].dead {
			return &p.slots[i], true
		}
	}
	return nil, false
}

// Kill tombstones a live entity. Killing a dead entity is a no-op.
func (p *Pool) Kill(e *Entity) {
	if e.dead {
		return
	}
	e.dead = true
	p.live--
}

// Remove tombstones the entity with the given ID and reports whether it was live.
func (p *Pool) Remove(id uint64) bool {
	e, ok := p.Get(id)
	if !ok {
		return false
	}
	p.Kill(e)
	return true
}

// RemoveWhere tombstones every live entity matching pred and returns how
// many were removed.
func (p *Pool) RemoveWhere(pred func(e *Entity) bool) int {
	removed := 0
	p.Each(func(e *Entity) {
		if pred(e) {
			p.Kill(e)
			removed++
		}
	})
	return removed
}

// Clear tombstones every entity.
func (p *Pool) Clear() {
	p.RemoveWhere(func(*Entity) bool { return true })
}

// Compact drops tombstoned slots, preserving the order of survivors.
func (p *Pool) Compact() {
	if p.live == len(p.slots) {
		return
	}
	kept := p.slots[:0]
	for _, e := range p.slots {
		if !e.dead {
			kept = append(kept, e)
		}
	}
	// Zero the tail so stale entities are not kept reachable.
	for i := len(kept); i < len(p.slots); i++ {
		p.slots[i] = Entity{}
	}
	p.slots = kept
}

// Pick selects one live entity uniformly at random.
// It returns false without consuming randomness when the pool is empty.
func (p *Pool) Pick(rng *rand.Rand) (*Entity, bool) {
	if p.live == 0 {
		return nil, false
	}
	target := rng.Intn(p.live)
	for i := range p.slots {
		if p.slots[i].dead {
			continue
		}
		if target == 0 {
			return &p.slots[i], true
		}
		target--
	}
	return nil, false
}

// Entities returns copies of the live entities in slot order.
func (p *Pool) Entities() []Entity {
	out := make([]Entity, 0, p.live)
	p.Each(func(e *Entity) {
		out = append(out, *e)
	})
	return out
}
