package testutil

import (
	"math/rand"
	"sync"
)

// BoundaryLengths are bit lengths that straddle the 32-bit word and
// 128-bit lane boundaries.
var BoundaryLengths = []int{0, 1, 31, 32, 33, 63, 64, 65, 127, 128, 129, 200, 255, 256, 257}

// LargeLength is the bit length used for large-vector tests and benchmarks.
const LargeLength = 1_000_000

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Bool returns true with probability p.
func (r *RNG) Bool(p float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64() < p
}

// FillWords fills dst with uniformly random words.
// Locks only once per call (preferred over calling Uint32 in a loop).
func (r *RNG) FillWords(dst []uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Uint32()
	}
}

// FillSparseWords fills dst so that each bit is set with probability density.
func (r *RNG) FillSparseWords(dst []uint32, density float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		var w uint32
		for bit := 0; bit < 32; bit++ {
			if r.rand.Float64() < density {
				w |= 1 << bit
			}
		}
		dst[i] = w
	}
}

// Bits returns n random booleans, each true with probability density.
func (r *RNG) Bits(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// Edge is a directed edge between two node indices.
type Edge struct {
	From, To int
}

// RandomEdges returns count random directed edges over nodes vertices.
// Self loops are allowed.
func (r *RNG) RandomEdges(nodes, count int) []Edge {
	r.mu.Lock()
	defer r.mu.Unlock()
	edges := make([]Edge, count)
	for i := range edges {
		edges[i] = Edge{From: r.rand.Intn(nodes), To: r.rand.Intn(nodes)}
	}
	return edges
}

// Reachable computes, for every node, the set of nodes reachable from it
// (including itself) by breadth-first search. reach[u][v] is true if v is
// reachable from u.
func Reachable(nodes int, edges []Edge) [][]bool {
	adj := make([][]int, nodes)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
	}

	reach := make([][]bool, nodes)
	for u := range reach {
		seen := make([]bool, nodes)
		seen[u] = true
		queue := []int{u}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range adj[v] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		reach[u] = seen
	}
	return reach
}
