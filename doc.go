// Package arena implements scoped bump-pointer memory arenas with LIFO
// reclaim and heap fallback.
//
// # Overview
//
// An arena owns a cursor into one attached, aligned buffer. Allocation
// advances the cursor (O(1), never fails while the buffer has room);
// deallocation moves it back only when the freed block is the most recent
// allocation. Requests that do not fit in the remaining capacity are served
// by a replaceable fallback allocator and come back as pointers outside the
// buffer. This is useful for:
//
//   - Short-lived, size-bounded scratch data
//   - Small-buffer optimization of dynamic sequences
//   - Avoiding heap churn on hot paths with known working-set sizes
//
// # Basic Usage
//
//	fa, err := arena.NewFixedArena(1024, 8)
//	if err != nil {
//		// bad size or alignment
//	}
//
//	p, err := fa.Allocate(64)   // bump path
//	fa.Deallocate(p, 64)        // top of stack: reclaimed
//	fa.Reset()                  // cursor back to the start
//
// Typed access goes through a Handle, the container-allocator capability:
//
//	h, _ := arena.Bind[int64](fa)
//	s, _ := h.Allocate(16) // []int64 backed by the arena
//	h.Deallocate(s)
//
// SmallBuffer composes a FixedArena sized for n elements with a Vec that
// eagerly reserves those n slots, so the first n pushes never touch the
// fallback path.
//
// # Reclaim Model
//
// Only the topmost block can be returned to the arena. Deallocating any
// earlier block is a silent no-op; its space becomes available again at the
// next Reset. There is no free list and no fragmentation tracking.
//
// # Alignment
//
// An arena's alignment is fixed at construction and must be a power of two.
// Alignments above the platform's natural maximum must also be a multiple of
// the pointer size and are served through the aligned block allocator.
// Every pointer an arena returns is a multiple of its alignment.
//
// # Lifetime
//
// Handles never own the arena they are bound to. An arena must outlive every
// handle and every container built from it. A best-effort check rejects
// operations once the cursor no longer lies inside the attached buffer, but
// using a handle after its arena's buffer is gone remains undefined
// behavior; the check only narrows the failure window. Arenas must not be
// copied after first use.
//
// # Thread Safety
//
// None. Arenas, handles, Vec and SmallBuffer perform no internal
// synchronization; concurrent use of one arena from multiple goroutines
// without external mutual exclusion is undefined.
package arena
