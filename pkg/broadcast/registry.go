package broadcast

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// slot is one consumer's pending queue.
type slot[T any] struct {
	index uint64
	queue []T
}

// guard is a runtime-checked exclusive-access flag around registry state.
// It does not wait: entering a held guard panics.
type guard struct {
	held atomic.Bool
}

func (g *guard) acquire() {
	if !g.held.CompareAndSwap(false, true) {
		panic(fmt.Errorf("broadcast: %w", ErrReentrantAccess))
	}
}

func (g *guard) release() {
	g.held.Store(false)
}

// registry is the broadcast state shared by a producer and its consumers.
// It is reference counted: every live handle holds one reference and the
// slot storage is freed when the last one is released.
type registry[T any] struct {
	guard guard

	slots     []slot[T]
	nextIndex uint64
	refs      int
	released  bool

	// onDeliver runs for every slot a value is appended to, while the guard is held.
	onDeliver func(index uint64, v T)
}

func newRegistry[T any](capacity int) *registry[T] {
	if err := ValidateCapacity(capacity); err != nil {
		panic(err)
	}

	return &registry[T]{
		slots: make([]slot[T], 0, capacity),
		refs:  1,
	}
}

// register appends an empty slot and returns its index.
func (r *registry[T]) register() uint64 {
	r.guard.acquire()
	defer r.guard.release()

	index := r.nextIndex
	r.nextIndex++
	r.slots = append(r.slots, slot[T]{index: index})
	return index
}

// broadcast appends v to every live slot and returns how many were reached.
// Every slot holds v before the first delivery hook runs, so a hook that
// panics cannot leave v queued for only part of the consumers.
func (r *registry[T]) broadcast(v T) int {
	r.guard.acquire()
	defer r.guard.release()

	for i := range r.slots {
		r.slots[i].queue = append(r.slots[i].queue, v)
	}

	if r.onDeliver != nil {
		for i := range r.slots {
			r.onDeliver(r.slots[i].index, v)
		}
	}
	return len(r.slots)
}

// drain empties the queue of the slot with the given index and returns its
// values in insertion order. Unknown indices yield nil.
func (r *registry[T]) drain(index uint64) []T {
	r.guard.acquire()
	defer r.guard.release()

	for i := range r.slots {
		if r.slots[i].index != index {
			continue
		}
		if len(r.slots[i].queue) == 0 {
			return nil
		}
		out := slices.Clone(r.slots[i].queue)
		clear(r.slots[i].queue)
		r.slots[i].queue = r.slots[i].queue[:0]
		return out
	}
	return nil
}

// deregister removes the slot with the given index. It reports whether a
// slot was removed; removing an absent index is a no-op.
func (r *registry[T]) deregister(index uint64) bool {
	r.guard.acquire()
	defer r.guard.release()

	for i := range r.slots {
		if r.slots[i].index == index {
			r.slots = slices.Delete(r.slots, i, i+1)
			return true
		}
	}
	return false
}

// live returns the number of registered slots.
func (r *registry[T]) live() int {
	r.guard.acquire()
	defer r.guard.release()

	return len(r.slots)
}

// pending returns the queue length of the slot with the given index.
func (r *registry[T]) pending(index uint64) int {
	r.guard.acquire()
	defer r.guard.release()

	for i := range r.slots {
		if r.slots[i].index == index {
			return len(r.slots[i].queue)
		}
	}
	return 0
}

func (r *registry[T]) retain() {
	r.guard.acquire()
	defer r.guard.release()

	r.refs++
}

// release drops one reference and reports whether it was the last one.
// The slot storage is freed together with the last reference.
func (r *registry[T]) release() bool {
	r.guard.acquire()
	defer r.guard.release()

	if r.released {
		return false
	}
	r.refs--
	if r.refs > 0 {
		return false
	}
	r.slots = nil
	r.onDeliver = nil
	r.released = true
	return true
}
