package heaps

import (
	"fmt"
	"io"
)

// fibNode is a node in a Fibonacci heap. Siblings form a circular
// doubly-linked list. An unmarked node (root or not) is marked when a
// cut takes one of its children; a marked node that loses another child
// is cut itself. Being cut clears the mark; being linked under another
// root during consolidation does not.
type fibNode[K any] struct {
	key K
	id  int

	// degree is the number of children.
	degree int

	marked bool

	parent *fibNode[K]

	// child points to one of the children; the rest are reached through
	// the circular sibling list.
	child *fibNode[K]

	left  *fibNode[K]
	right *fibNode[K]
}

// Fibonacci is a Fibonacci heap: a circular root list with a minimum
// pointer, lazy cascading cuts on DecreaseKey and consolidation by
// degree on PopMin.
type Fibonacci[K any] struct {
	less Less[K]

	// roots is the sentinel of the circular root list.
	roots fibNode[K]

	// minRoot points at the root with the smallest key, nil when empty.
	minRoot *fibNode[K]

	// rootsByDegree is scratch space for consolidation, cleared before
	// PopMin returns.
	rootsByDegree []*fibNode[K]

	index map[int]*fibNode[K]
}

// NewFibonacci returns an empty Fibonacci heap ordering keys by less.
func NewFibonacci[K any](less Less[K]) *Fibonacci[K] {
	h := &Fibonacci[K]{
		less:  less,
		index: make(map[int]*fibNode[K]),
	}
	h.roots.id = -1
	h.roots.left = &h.roots
	h.roots.right = &h.roots

	return h
}

// FibonacciFactory returns the named constructor for Fibonacci heaps.
func FibonacciFactory[K any](less Less[K]) Factory[K] {
	return Factory[K]{
		Name: "fibonacci",
		New:  func() Interface[K] { return NewFibonacci(less) },
	}
}

// Size returns the number of stored elements.
func (h *Fibonacci[K]) Size() int { return len(h.index) }

// Add splices a singleton into the root list and updates the minimum
// pointer.
func (h *Fibonacci[K]) Add(key K, id int) {
	if _, ok := h.index[id]; ok {
		panicDuplicateID(id)
	}
	node := &fibNode[K]{key: key, id: id}
	node.left = node
	node.right = node
	h.index[id] = node

	h.roots.addSibling(node)
	if h.minRoot == nil || h.less(key, h.minRoot.key) {
		h.minRoot = node
	}
}

// DecreaseKey lowers the key; when the node now orders before its
// parent it is cut to the root list, followed by cascading cuts up the
// chain of marked ancestors.
func (h *Fibonacci[K]) DecreaseKey(newKey K, id int) {
	node, ok := h.index[id]
	if !ok {
		panicAbsentID(id)
	}
	if h.less(node.key, newKey) {
		panicKeyIncrease(id)
	}
	node.key = newKey

	if h.less(newKey, h.minRoot.key) {
		h.minRoot = node
	}

	// Roots and still-ordered nodes need no restructuring.
	parent := node.parent
	if parent == nil || !h.less(newKey, parent.key) {
		return
	}

	node.cut()
	node.marked = false
	h.roots.addSibling(node)

	// Cascade: an unmarked ancestor absorbs the cut and is marked; a
	// marked ancestor is cut too and the walk continues.
	for parent != nil {
		if !parent.marked {
			parent.marked = true
			break
		}
		parent.marked = false

		nextParent := parent.parent
		parent.cut()
		h.roots.addSibling(parent)
		parent = nextParent
	}
}

// Lookup returns the current key for id, or (zero, false) when absent.
func (h *Fibonacci[K]) Lookup(id int) (K, bool) {
	node, ok := h.index[id]
	if !ok {
		var zero K
		return zero, false
	}

	return node.key, true
}

// Min returns the element the minimum pointer references.
func (h *Fibonacci[K]) Min() (K, int) {
	if h.minRoot == nil {
		panicEmpty("Min")
	}

	return h.minRoot.key, h.minRoot.id
}

// PopMin detaches the minimum root, promotes its children to roots and
// consolidates until at most one root per degree remains.
func (h *Fibonacci[K]) PopMin() (K, int) {
	if h.minRoot == nil {
		panicEmpty("PopMin")
	}
	minRoot := h.minRoot
	key, id := minRoot.key, minRoot.id

	child := minRoot.child
	minRoot.cut()
	delete(h.index, id)

	// Merge the surviving roots into the degree buckets.
	root := h.roots.right
	for root != &h.roots {
		nextRoot := root.right
		root.left = root
		root.right = root
		h.mergeRoot(root)
		root = nextRoot
	}
	h.roots.left = &h.roots
	h.roots.right = &h.roots

	// Merge the popped root's children as fresh roots.
	if child != nil {
		root = child
		for {
			nextRoot := root.right
			root.parent = nil
			root.left = root
			root.right = root
			h.mergeRoot(root)
			if nextRoot == child {
				break
			}
			root = nextRoot
		}
	}

	// Rebuild the root list from the buckets and find the new minimum.
	h.minRoot = nil
	for _, root := range h.rootsByDegree {
		if root == nil {
			continue
		}
		h.roots.addSibling(root)
		if h.minRoot == nil || h.less(root.key, h.minRoot.key) {
			h.minRoot = root
		}
	}
	h.rootsByDegree = h.rootsByDegree[:0]

	return key, id
}

// mergeRoot buckets root by degree, repeatedly merging with an existing
// tree of equal degree (the larger-keyed root becomes a child).
func (h *Fibonacci[K]) mergeRoot(root *fibNode[K]) {
	for {
		degree := root.degree
		for len(h.rootsByDegree) < degree+1 {
			h.rootsByDegree = append(h.rootsByDegree, nil)
		}

		other := h.rootsByDegree[degree]
		if other == nil {
			h.rootsByDegree[degree] = root
			break
		}

		// Two roots of equal degree: link and retry one degree higher.
		h.rootsByDegree[degree] = nil

		if h.less(root.key, other.key) {
			root.addChild(other)
		} else {
			other.addChild(root)
			root = other
		}
	}
}

// addSibling inserts node just before n in the circular list.
func (n *fibNode[K]) addSibling(node *fibNode[K]) {
	node.left = n.left
	node.right = n
	n.left.right = node
	n.left = node
}

// addChild makes node (a detached singleton) a child of n.
func (n *fibNode[K]) addChild(node *fibNode[K]) {
	if n.child != nil {
		node.left = n.child.left
		node.right = n.child
		n.child.left.right = node
		n.child.left = node
	}
	n.child = node
	node.parent = n
	n.degree++
}

// cut detaches n from its parent (fixing the parent's child pointer and
// degree) and from its sibling ring, leaving it a singleton.
func (n *fibNode[K]) cut() {
	if n.parent != nil {
		if n.parent.child == n {
			if n.left == n {
				n.parent.child = nil
			} else {
				n.parent.child = n.right
			}
		}
		n.parent.degree--
		n.parent = nil
	}

	n.left.right = n.right
	n.right.left = n.left
	n.left = n
	n.right = n
}

// Validate re-checks the root ring, the per-tree links and degrees, the
// heap order, the minimum pointer and the id index bijection.
func (h *Fibonacci[K]) Validate() error {
	if len(h.index) == 0 {
		if h.minRoot != nil {
			return fmt.Errorf("heaps: fibonacci: empty heap has a minimum pointer")
		}
		if h.roots.right != &h.roots || h.roots.left != &h.roots {
			return fmt.Errorf("heaps: fibonacci: empty heap has a non-empty root list")
		}

		return nil
	}

	if len(h.rootsByDegree) != 0 {
		return fmt.Errorf("heaps: fibonacci: consolidation scratch not cleared")
	}
	if h.minRoot == nil || h.minRoot.parent != nil {
		return fmt.Errorf("heaps: fibonacci: minimum pointer does not reference a root")
	}

	seen := make(map[int]struct{})
	for root := h.roots.right; root != &h.roots; root = root.right {
		if h.less(root.key, h.minRoot.key) {
			return fmt.Errorf("heaps: fibonacci: root id %d orders before the minimum pointer", root.id)
		}
		if err := h.validateTree(root, seen); err != nil {
			return err
		}
	}

	if len(seen) != len(h.index) {
		return fmt.Errorf("heaps: fibonacci: reached %d nodes, index holds %d", len(seen), len(h.index))
	}

	return nil
}

func (h *Fibonacci[K]) validateTree(n *fibNode[K], seen map[int]struct{}) error {
	if _, dup := seen[n.id]; dup {
		return fmt.Errorf("heaps: fibonacci: id %d reached twice", n.id)
	}
	seen[n.id] = struct{}{}
	if h.index[n.id] != n {
		return fmt.Errorf("heaps: fibonacci: id %d indexed to a different node", n.id)
	}

	if n.child != nil {
		numChildren := 0
		child := n.child
		for {
			if child.parent != n {
				return fmt.Errorf("heaps: fibonacci: child id %d does not point back to id %d", child.id, n.id)
			}
			if child.right.left != child || child.left.right != child {
				return fmt.Errorf("heaps: fibonacci: sibling ring broken at id %d", child.id)
			}
			if h.less(child.key, n.key) {
				return fmt.Errorf("heaps: fibonacci: order violated between id %d and child id %d", n.id, child.id)
			}
			if err := h.validateTree(child, seen); err != nil {
				return err
			}
			child = child.right
			numChildren++
			if child == n.child {
				break
			}
		}
		if n.degree != numChildren {
			return fmt.Errorf("heaps: fibonacci: id %d has degree %d but %d children", n.id, n.degree, numChildren)
		}
	} else if n.degree != 0 {
		return fmt.Errorf("heaps: fibonacci: childless id %d has degree %d", n.id, n.degree)
	}

	return nil
}

// Dump writes the minimum pointer and every root tree.
func (h *Fibonacci[K]) Dump(w io.Writer, label string) {
	fmt.Fprintf(w, "-- Heap (%d) %s --\n", h.Size(), label)
	if h.minRoot != nil {
		fmt.Fprintf(w, "min: %v [id:%d]\n", h.minRoot.key, h.minRoot.id)
	}
	for root := h.roots.right; root != &h.roots; root = root.right {
		root.dump(w, 1)
	}
}

func (n *fibNode[K]) dump(w io.Writer, level int) {
	indent(w, level)
	fmt.Fprintf(w, "%v [id:%d][deg:%d][marked:%t]\n", n.key, n.id, n.degree, n.marked)

	if n.child != nil {
		child := n.child
		for {
			child.dump(w, level+1)
			child = child.right
			if child == n.child {
				break
			}
		}
	}
}
