package ring

import (
	"crypto/md5"
	"sort"
	"strconv"
	"sync"
)

// Ring implements weighted consistent hashing over a set of node
// identities (canonical "address:port" strings). Every membership
// change regenerates the whole circle: the total virtual-point count
// depends on the number of nodes, so any change rebalances all of them.
type Ring struct {
	mu         sync.RWMutex
	nodes      map[string]struct{}
	weights    map[string]int
	circle     map[uint64]string
	sortedKeys []uint64
}

// New creates a ring holding the given nodes, all at weight 1.
func New(nodes ...string) *Ring {
	return NewWeighted(nodes, nil)
}

// NewWeighted creates a ring with explicit per-node weights. Nodes
// absent from weights count as weight 1.
func NewWeighted(nodes []string, weights map[string]int) *Ring {
	r := &Ring{
		nodes:   make(map[string]struct{}, len(nodes)),
		weights: make(map[string]int, len(weights)),
	}
	for _, n := range nodes {
		r.nodes[n] = struct{}{}
	}
	for n, w := range weights {
		r.weights[n] = w
	}
	r.mu.Lock()
	r.generate()
	r.mu.Unlock()
	return r
}

// Add inserts node at weight 1 and regenerates the circle. Adding a
// node that is already present still triggers regeneration.
func (r *Ring) Add(node string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nodes[node] = struct{}{}
	r.generate()
}

// AddWeighted inserts node at the given weight and regenerates.
func (r *Ring) AddWeighted(node string, weight int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nodes[node] = struct{}{}
	r.weights[node] = weight
	r.generate()
}

// Extend inserts every node in nodes with a single regeneration.
func (r *Ring) Extend(nodes []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range nodes {
		r.nodes[n] = struct{}{}
	}
	r.generate()
}

// Remove drops node and regenerates. Removing an unknown node is a
// no-op apart from the regeneration.
func (r *Ring) Remove(node string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.nodes, node)
	delete(r.weights, node)
	r.generate()
}

// Lookup returns the node owning key: the node at the least virtual
// key strictly greater than GenKey(key), wrapping to the smallest
// virtual key past the top of the circle. The second return is false
// when the ring is empty.
func (r *Ring) Lookup(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.sortedKeys) == 0 {
		return "", false
	}
	k := uint64(GenKey(key))
	idx := sort.Search(len(r.sortedKeys), func(i int) bool {
		return r.sortedKeys[i] > k
	})
	if idx == len(r.sortedKeys) {
		idx = 0
	}
	return r.circle[r.sortedKeys[idx]], true
}

// Contains reports whether node is a member of the ring.
func (r *Ring) Contains(node string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.nodes[node]
	return ok
}

// Nodes returns the current node identities in ascending order.
func (r *Ring) Nodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nodes := make([]string, 0, len(r.nodes))
	for n := range r.nodes {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Len returns the number of member nodes.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.nodes)
}

// generate rebuilds the circle and the sorted key slice from the node
// set. Caller must hold the write lock.
func (r *Ring) generate() {
	r.circle = make(map[uint64]string)
	r.sortedKeys = r.sortedKeys[:0]

	if len(r.nodes) == 0 {
		return
	}

	total := 0
	for n := range r.nodes {
		total += r.weight(n)
	}

	for n := range r.nodes {
		// 4 virtual keys per seed, floor-weighted seed count.
		factor := 30 * len(r.nodes) * r.weight(n) / total
		for j := 0; j < factor; j++ {
			sum := md5.Sum([]byte(n + "-" + strconv.Itoa(j)))
			for i := uint(0); i < 4; i++ {
				r.circle[window(sum, 8*i)] = n
			}
		}
	}

	for k := range r.circle {
		r.sortedKeys = append(r.sortedKeys, k)
	}
	sort.Slice(r.sortedKeys, func(i, j int) bool {
		return r.sortedKeys[i] < r.sortedKeys[j]
	})
}

func (r *Ring) weight(node string) int {
	if w, ok := r.weights[node]; ok {
		return w
	}
	return 1
}

// GenKey maps an arbitrary string key onto the circle. A key that is
// already a 32-character lowercase hex digest is not hashed again: its
// leading eight digits are the position. Everything else takes the
// most significant quarter of its MD5 digest, big-endian.
func GenKey(key string) uint32 {
	if isHexDigest(key) {
		v, err := strconv.ParseUint(key[:8], 16, 32)
		if err == nil {
			return uint32(v)
		}
	}
	sum := md5.Sum([]byte(key))
	return uint32(window(sum, 0))
}

// window folds the first four digest bytes into a ring position; every
// virtual-key index pushes the window a further 8 bits up the circle.
func window(sum [md5.Size]byte, offset uint) uint64 {
	return uint64(sum[0])<<(24+offset) |
		uint64(sum[1])<<(16+offset) |
		uint64(sum[2])<<(8+offset) |
		uint64(sum[3])<<offset
}

func isHexDigest(key string) bool {
	if len(key) != 32 {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
