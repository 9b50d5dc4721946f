package dual

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/mwpf/weight"
)

// entry is one scheduled obstacle candidate, keyed by absolute module time.
// Entries are never removed eagerly: rate changes push fresh entries and
// stale ones are discarded on pop (lazy deletion, as in a decrease-key-free
// Dijkstra queue).
type entry struct {
	at   weight.W     // absolute event time
	kind ObstacleKind // ObstacleEdgeTight or ObstacleDualZero
	idx  int          // edge index or node index, by kind
}

// compareEntries orders by event time, then EdgeTight before DualZero, then
// lowest index — the deterministic tie-break mandated for reproducibility.
func compareEntries(a, b interface{}) int {
	ea, eb := a.(entry), b.(entry)
	if c := ea.at.Cmp(eb.at); c != 0 {
		return c
	}
	if ea.kind != eb.kind {
		return int(ea.kind) - int(eb.kind)
	}

	return ea.idx - eb.idx
}

// obstacleQueue is a thin deterministic façade over a binary heap of entries.
type obstacleQueue struct {
	heap *binaryheap.Heap
}

func newObstacleQueue() *obstacleQueue {
	return &obstacleQueue{heap: binaryheap.NewWith(compareEntries)}
}

func (q *obstacleQueue) push(e entry) { q.heap.Push(e) }

// pop removes and returns the earliest entry; ok is false when empty.
func (q *obstacleQueue) pop() (entry, bool) {
	v, ok := q.heap.Pop()
	if !ok {
		return entry{}, false
	}

	return v.(entry), true
}
