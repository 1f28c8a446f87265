package heaps

import (
	"fmt"
	"io"
)

// pairingNode is a node in a pairing heap's multiway tree. left points
// to the previous sibling, or to the parent when the node is a first
// child; that convention is what makes an O(1) detach possible.
type pairingNode[K any] struct {
	key K
	id  int

	// child points to the first child.
	child *pairingNode[K]

	// left points to the previous sibling, or the parent for a first
	// child.
	left *pairingNode[K]

	// right points to the next sibling.
	right *pairingNode[K]
}

// Pairing is a pairing heap: a single multiway tree whose root holds the
// minimum, restructured by two-pass melding on PopMin.
type Pairing[K any] struct {
	less Less[K]

	// root is the minimum node, or nil when empty.
	root *pairingNode[K]

	index map[int]*pairingNode[K]
}

// NewPairing returns an empty pairing heap ordering keys by less.
func NewPairing[K any](less Less[K]) *Pairing[K] {
	return &Pairing[K]{
		less:  less,
		index: make(map[int]*pairingNode[K]),
	}
}

// PairingFactory returns the named constructor for Pairing heaps.
func PairingFactory[K any](less Less[K]) Factory[K] {
	return Factory[K]{
		Name: "pairing",
		New:  func() Interface[K] { return NewPairing(less) },
	}
}

// Size returns the number of stored elements.
func (h *Pairing[K]) Size() int { return len(h.index) }

// Add melds a singleton with the root.
func (h *Pairing[K]) Add(key K, id int) {
	if _, ok := h.index[id]; ok {
		panicDuplicateID(id)
	}
	node := &pairingNode[K]{key: key, id: id}
	h.index[id] = node

	if h.root == nil {
		h.root = node
	} else {
		h.root = h.mergeTrees(h.root, node)
	}
}

// DecreaseKey lowers the key; a non-root node is detached from its
// parent and melded back with the root.
func (h *Pairing[K]) DecreaseKey(newKey K, id int) {
	node, ok := h.index[id]
	if !ok {
		panicAbsentID(id)
	}
	if h.less(node.key, newKey) {
		panicKeyIncrease(id)
	}
	node.key = newKey

	if node == h.root {
		return
	}
	node.detachFromParent()
	h.root = h.mergeTrees(h.root, node)
}

// Lookup returns the current key for id, or (zero, false) when absent.
func (h *Pairing[K]) Lookup(id int) (K, bool) {
	node, ok := h.index[id]
	if !ok {
		var zero K
		return zero, false
	}

	return node.key, true
}

// Min returns the root element.
func (h *Pairing[K]) Min() (K, int) {
	if h.root == nil {
		panicEmpty("Min")
	}

	return h.root.key, h.root.id
}

// PopMin removes the root and melds its children with the two-pass
// pairing strategy.
func (h *Pairing[K]) PopMin() (K, int) {
	if h.root == nil {
		panicEmpty("PopMin")
	}
	minRoot := h.root
	h.root = h.mergePairs(minRoot.child)

	delete(h.index, minRoot.id)

	return minRoot.key, minRoot.id
}

// addChild prepends child to n's child list.
func (n *pairingNode[K]) addChild(child *pairingNode[K]) {
	if n.child != nil {
		n.child.left = child
	}
	child.left = n
	child.right = n.child
	n.child = child
}

// detachFromParent splices n out of its sibling chain in O(1), using
// the first-child disambiguation on left.
func (n *pairingNode[K]) detachFromParent() {
	if n.left.child == n {
		// First child: left is the parent.
		n.left.child = n.right
	} else {
		n.left.right = n.right
	}
	if n.right != nil {
		n.right.left = n.left
	}
	n.left = nil
	n.right = nil
}

// mergeTrees melds two trees: the larger-keyed root becomes the first
// child of the smaller.
func (h *Pairing[K]) mergeTrees(a, b *pairingNode[K]) *pairingNode[K] {
	if h.less(a.key, b.key) {
		a.addChild(b)
		return a
	}
	b.addChild(a)

	return b
}

// mergePairs melds a sibling list into a single tree: pair up
// consecutive siblings left to right, then meld the resulting chain
// right to left.
func (h *Pairing[K]) mergePairs(list *pairingNode[K]) *pairingNode[K] {
	if list == nil {
		return nil
	}

	// First pass: meld pairs, stacking the results.
	var mergedHead *pairingNode[K]
	node := list
	for node != nil {
		next := node.right

		if next == nil {
			node.right = mergedHead
			mergedHead = node
			break
		}

		nextNext := next.right
		merged := h.mergeTrees(node, next)
		merged.right = mergedHead
		mergedHead = merged

		node = nextNext
	}

	// Second pass: meld the stacked chain right to left.
	node = mergedHead.right
	mergedHead.right = nil
	for node != nil {
		next := node.right
		node.right = nil
		mergedHead = h.mergeTrees(node, mergedHead)
		node = next
	}

	mergedHead.left = nil

	return mergedHead
}

// Validate re-checks the sibling/parent back links, the heap order and
// the id index bijection.
func (h *Pairing[K]) Validate() error {
	seen := make(map[int]struct{})
	if h.root != nil {
		if h.root.left != nil || h.root.right != nil {
			return fmt.Errorf("heaps: pairing: root id %d has siblings", h.root.id)
		}
		if err := h.validateTree(h.root, nil, seen); err != nil {
			return err
		}
	}

	if len(seen) != len(h.index) {
		return fmt.Errorf("heaps: pairing: reached %d nodes, index holds %d", len(seen), len(h.index))
	}

	return nil
}

func (h *Pairing[K]) validateTree(n, parent *pairingNode[K], seen map[int]struct{}) error {
	if _, dup := seen[n.id]; dup {
		return fmt.Errorf("heaps: pairing: id %d reached twice", n.id)
	}
	seen[n.id] = struct{}{}
	if h.index[n.id] != n {
		return fmt.Errorf("heaps: pairing: id %d indexed to a different node", n.id)
	}
	if parent != nil && h.less(n.key, parent.key) {
		return fmt.Errorf("heaps: pairing: order violated between id %d and parent id %d", n.id, parent.id)
	}

	if n.child != nil {
		if n.child.left != n {
			return fmt.Errorf("heaps: pairing: first child of id %d does not point back", n.id)
		}
		if err := h.validateTree(n.child, n, seen); err != nil {
			return err
		}
	}

	if n.right != nil {
		if n.right.left != n {
			return fmt.Errorf("heaps: pairing: right sibling of id %d does not point back", n.id)
		}
		if err := h.validateTree(n.right, parent, seen); err != nil {
			return err
		}
	}

	return nil
}

// Dump writes the multiway tree, one node per line.
func (h *Pairing[K]) Dump(w io.Writer, label string) {
	fmt.Fprintf(w, "-- Heap (%d) %s --\n", h.Size(), label)
	if h.root != nil {
		h.root.dump(w, 1)
	}
}

func (n *pairingNode[K]) dump(w io.Writer, level int) {
	indent(w, level)
	fmt.Fprintf(w, "%v [id:%d]\n", n.key, n.id)

	if n.child != nil {
		n.child.dump(w, level+1)
	}
	if n.right != nil {
		n.right.dump(w, level)
	}
}
