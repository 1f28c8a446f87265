package heaps

import (
	"fmt"
	"io"
)

// binomialNode is a node in a binomial tree. Children of a node with
// dimension k form a sibling chain of dimensions k-1, k-2, …, 0; the
// root list instead chains roots in strictly ascending dimension.
type binomialNode[K any] struct {
	key K
	id  int

	// dim is the dimension (rank) of the tree rooted here; the subtree
	// holds exactly 2^dim nodes.
	dim int

	parent *binomialNode[K]

	// child points to the highest-dimension child.
	child *binomialNode[K]

	// right points to the next sibling (or the next root).
	right *binomialNode[K]
}

// Binomial is a forest of binomial trees whose roots are linked in
// strictly ascending dimension.
type Binomial[K any] struct {
	less Less[K]

	// root heads the ascending-dimension root list.
	root *binomialNode[K]

	index map[int]*binomialNode[K]
}

// NewBinomial returns an empty binomial heap ordering keys by less.
func NewBinomial[K any](less Less[K]) *Binomial[K] {
	return &Binomial[K]{
		less:  less,
		index: make(map[int]*binomialNode[K]),
	}
}

// BinomialFactory returns the named constructor for Binomial heaps.
func BinomialFactory[K any](less Less[K]) Factory[K] {
	return Factory[K]{
		Name: "binomial",
		New:  func() Interface[K] { return NewBinomial(less) },
	}
}

// Size returns the number of stored elements.
func (h *Binomial[K]) Size() int { return len(h.index) }

// Add merges a singleton tree into the root list, carrying like a
// base-2 counter increment.
func (h *Binomial[K]) Add(key K, id int) {
	if _, ok := h.index[id]; ok {
		panicDuplicateID(id)
	}
	node := &binomialNode[K]{key: key, id: id}
	h.index[id] = node

	if h.root == nil {
		h.root = node
	} else {
		h.root = h.mergeLists(h.root, node)
	}
}

// DecreaseKey lowers the key and sifts the (key, id) payload up towards
// the root of its tree, refreshing the id index at every swap.
func (h *Binomial[K]) DecreaseKey(newKey K, id int) {
	node, ok := h.index[id]
	if !ok {
		panicAbsentID(id)
	}
	if h.less(node.key, newKey) {
		panicKeyIncrease(id)
	}
	node.key = newKey
	h.siftUp(node)
}

// Lookup returns the current key for id, or (zero, false) when absent.
func (h *Binomial[K]) Lookup(id int) (K, bool) {
	node, ok := h.index[id]
	if !ok {
		var zero K
		return zero, false
	}

	return node.key, true
}

// Min scans the root list for the smallest-keyed root.
func (h *Binomial[K]) Min() (K, int) {
	if len(h.index) == 0 {
		panicEmpty("Min")
	}
	minRoot, _ := h.minRoot()

	return minRoot.key, minRoot.id
}

// PopMin detaches the smallest-keyed root, reverses its children into an
// ascending list and merges that list back with the remaining roots.
func (h *Binomial[K]) PopMin() (K, int) {
	if len(h.index) == 0 {
		panicEmpty("PopMin")
	}
	minRoot, prev := h.minRoot()

	if prev != nil {
		prev.right = minRoot.right
	} else {
		h.root = minRoot.right
	}

	children := minRoot.detachChildren()
	h.root = h.mergeLists(h.root, children)

	delete(h.index, minRoot.id)

	return minRoot.key, minRoot.id
}

// minRoot returns the smallest-keyed root and its predecessor in the
// root list (nil when the minimum heads the list).
func (h *Binomial[K]) minRoot() (minRoot, prevOfMin *binomialNode[K]) {
	prev := h.root
	minRoot = h.root
	for root := h.root.right; root != nil; prev, root = root, root.right {
		if h.less(root.key, minRoot.key) {
			minRoot = root
			prevOfMin = prev
		}
	}

	return minRoot, prevOfMin
}

// mergeTrees links two trees of equal dimension: the larger-keyed root
// becomes the highest child of the smaller, whose dimension grows by
// one.
func (h *Binomial[K]) mergeTrees(a, b *binomialNode[K]) *binomialNode[K] {
	if h.less(b.key, a.key) {
		a, b = b, a
	}

	b.right = a.child
	b.parent = a
	a.child = b
	a.dim++

	return a
}

// mergeLists merges two root lists that are each in ascending dimension
// into one ascending list, carrying a merged tree of one dimension
// higher whenever two dimensions collide.
func (h *Binomial[K]) mergeLists(a, b *binomialNode[K]) *binomialNode[K] {
	var sentinel binomialNode[K]
	merged := &sentinel

	for {
		if a == nil {
			merged.right = b
			break
		}
		if b == nil {
			merged.right = a
			break
		}

		if a.dim == b.dim {
			// Detach both heads so the carry merge sees clean trees.
			nextA := a.right
			a.right = nil
			nextB := b.right
			b.right = nil

			carry := h.mergeTrees(a, b)
			if nextA == nil {
				a = carry
				b = nextB
			} else {
				a = h.mergeLists(carry, nextA)
				b = nextB
			}

			continue
		}

		// Append the lower-dimension head to the merged list.
		if a.dim < b.dim {
			merged.right = a
			merged = a
			a = a.right
		} else {
			merged.right = b
			merged = b
			b = b.right
		}
	}

	return sentinel.right
}

// detachChildren unlinks the children of n and returns them reversed,
// i.e. as a list in ascending dimension ready for mergeLists.
func (n *binomialNode[K]) detachChildren() *binomialNode[K] {
	var prev *binomialNode[K]
	child := n.child
	for child != nil {
		next := child.right
		child.parent = nil
		child.right = prev
		prev = child
		child = next
	}
	n.child = nil

	return prev
}

// siftUp moves the (key, id) payload of node towards the root while it
// orders before its parent's payload. Node topology is untouched.
func (h *Binomial[K]) siftUp(node *binomialNode[K]) {
	key := node.key
	id := node.id
	for {
		parent := node.parent
		if parent == nil || !h.less(key, parent.key) {
			break
		}

		// Pull the parent's payload down.
		node.key = parent.key
		node.id = parent.id
		h.index[parent.id] = node

		node = parent
	}

	node.key = key
	node.id = id
	h.index[id] = node
}

// Validate re-checks the ascending root dimensions, the per-tree shape,
// the heap order and the id index bijection.
func (h *Binomial[K]) Validate() error {
	prevDim := -1
	seen := make(map[int]struct{})
	for root := h.root; root != nil; root = root.right {
		if root.parent != nil {
			return fmt.Errorf("heaps: binomial: root id %d has a parent", root.id)
		}
		if root.dim <= prevDim {
			return fmt.Errorf("heaps: binomial: root dimensions not strictly ascending at id %d", root.id)
		}
		if err := h.validateTree(root, seen); err != nil {
			return err
		}
		prevDim = root.dim
	}

	if len(seen) != len(h.index) {
		return fmt.Errorf("heaps: binomial: reached %d nodes, index holds %d", len(seen), len(h.index))
	}

	return nil
}

func (h *Binomial[K]) validateTree(n *binomialNode[K], seen map[int]struct{}) error {
	if _, dup := seen[n.id]; dup {
		return fmt.Errorf("heaps: binomial: id %d reached twice", n.id)
	}
	seen[n.id] = struct{}{}
	if h.index[n.id] != n {
		return fmt.Errorf("heaps: binomial: id %d indexed to a different node", n.id)
	}
	if n.parent != nil && h.less(n.key, n.parent.key) {
		return fmt.Errorf("heaps: binomial: order violated between id %d and parent id %d", n.id, n.parent.id)
	}

	if n.dim > 0 {
		if n.child == nil || n.child.parent != n {
			return fmt.Errorf("heaps: binomial: id %d has a broken child link", n.id)
		}
		if n.child.dim != n.dim-1 {
			return fmt.Errorf("heaps: binomial: id %d has child of dimension %d, want %d", n.id, n.child.dim, n.dim-1)
		}
		if err := h.validateTree(n.child, seen); err != nil {
			return err
		}

		if n.parent != nil {
			if n.right == nil || n.right.parent != n.parent {
				return fmt.Errorf("heaps: binomial: id %d has a broken sibling link", n.id)
			}
			if n.right.dim != n.dim-1 {
				return fmt.Errorf("heaps: binomial: id %d has sibling of dimension %d, want %d", n.id, n.right.dim, n.dim-1)
			}
			if err := h.validateTree(n.right, seen); err != nil {
				return err
			}
		}
	} else {
		if n.child != nil {
			return fmt.Errorf("heaps: binomial: dimension-0 id %d has a child", n.id)
		}
		if n.parent != nil && n.right != nil {
			return fmt.Errorf("heaps: binomial: dimension-0 id %d has a sibling", n.id)
		}
	}

	return nil
}

// Dump writes each tree of the forest, lowest dimension first.
func (h *Binomial[K]) Dump(w io.Writer, label string) {
	fmt.Fprintf(w, "-- Heap (%d) %s --\n", h.Size(), label)
	for root := h.root; root != nil; root = root.right {
		fmt.Fprintf(w, "Tree #%d\n", root.dim)
		root.dump(w, 1)
	}
}

func (n *binomialNode[K]) dump(w io.Writer, level int) {
	indent(w, level)
	fmt.Fprintf(w, "%v [id:%d][dim:%d]\n", n.key, n.id, n.dim)

	if n.child != nil {
		n.child.dump(w, level+1)
	}
	if n.parent != nil && n.right != nil {
		n.right.dump(w, level)
	}
}
