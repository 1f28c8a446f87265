package heaps

import (
	"fmt"
	"io"
)

// thinNode is a node in a thin heap. left points to the previous
// sibling, or to the parent for a first child; a nil left marks a root.
// A node is thick when its highest-rank child has rank exactly one less
// than its own, thin when that child lags by two.
type thinNode[K any] struct {
	key K
	id  int

	rank int

	// child points to the highest-rank child; the rest follow right in
	// descending rank.
	child *thinNode[K]

	left  *thinNode[K]
	right *thinNode[K]
}

// Thin is a thin heap: a singly-linked list of rank-labeled roots with
// rank-lowering sibling walks on cuts and consolidation by rank on
// PopMin.
type Thin[K any] struct {
	less Less[K]

	// minRoot references one node of the root list; nil when empty.
	minRoot *thinNode[K]

	// root heads the root list.
	root *thinNode[K]

	// rootsByRank is scratch space for consolidation.
	rootsByRank []*thinNode[K]

	index map[int]*thinNode[K]
}

// NewThin returns an empty thin heap ordering keys by less.
func NewThin[K any](less Less[K]) *Thin[K] {
	return &Thin[K]{
		less:        less,
		rootsByRank: make([]*thinNode[K], 1),
		index:       make(map[int]*thinNode[K]),
	}
}

// ThinFactory returns the named constructor for Thin heaps.
func ThinFactory[K any](less Less[K]) Factory[K] {
	return Factory[K]{
		Name: "thin",
		New:  func() Interface[K] { return NewThin(less) },
	}
}

// Size returns the number of stored elements.
func (h *Thin[K]) Size() int { return len(h.index) }

// Add prepends a rank-0 singleton to the root list.
func (h *Thin[K]) Add(key K, id int) {
	if _, ok := h.index[id]; ok {
		panicDuplicateID(id)
	}
	node := &thinNode[K]{key: key, id: id}
	h.index[id] = node

	if h.minRoot == nil || h.less(key, h.minRoot.key) {
		h.minRoot = node
	}
	node.right = h.root
	h.root = node
}

// DecreaseKey lowers the key; a non-root node is cut to the root list
// after the rank-lowering sibling walk repairs its surroundings.
func (h *Thin[K]) DecreaseKey(newKey K, id int) {
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

	if !node.isRoot() {
		h.cutAndMoveToRoot(node)
	}
}

// Lookup returns the current key for id, or (zero, false) when absent.
func (h *Thin[K]) Lookup(id int) (K, bool) {
	node, ok := h.index[id]
	if !ok {
		var zero K
		return zero, false
	}

	return node.key, true
}

// Min returns the element the minimum pointer references.
func (h *Thin[K]) Min() (K, int) {
	if h.minRoot == nil {
		panicEmpty("Min")
	}

	return h.minRoot.key, h.minRoot.id
}

// PopMin removes the minimum root, promotes its children (thick-ified)
// to roots and consolidates everything by rank into a fresh root list
// headed by the new minimum.
func (h *Thin[K]) PopMin() (K, int) {
	if h.minRoot == nil {
		panicEmpty("PopMin")
	}
	minRoot := h.minRoot
	key, id := minRoot.key, minRoot.id

	// Bucket the surviving roots by rank.
	var nextTree *thinNode[K]
	for tree := h.root; tree != nil; tree = nextTree {
		nextTree = tree.right
		tree.right = nil
		if tree != minRoot {
			h.mergeRoot(tree)
		}
	}

	// The popped root's children become thick roots.
	for tree := minRoot.child; tree != nil; tree = nextTree {
		nextTree = tree.right
		tree.left = nil
		tree.right = nil
		tree.makeThick()
		h.mergeRoot(tree)
	}

	delete(h.index, id)

	// Find the new minimum, then relink the surviving roots behind it.
	h.minRoot = nil
	for _, tree := range h.rootsByRank {
		if tree != nil && (h.minRoot == nil || h.less(tree.key, h.minRoot.key)) {
			h.minRoot = tree
		}
	}
	h.root = nil
	for i := range h.rootsByRank {
		tree := h.rootsByRank[i]
		if tree == nil {
			continue
		}
		h.rootsByRank[i] = nil

		if tree == h.minRoot {
			continue
		}
		tree.right = h.root
		h.root = tree
	}
	if h.minRoot != nil {
		h.minRoot.right = h.root
		h.root = h.minRoot
	}

	return key, id
}

// cutAndMoveToRoot repairs the ranks around tree, cuts it and prepends
// it (made thick) to the root list.
func (h *Thin[K]) cutAndMoveToRoot(tree *thinNode[K]) {
	h.lowerRank(tree)

	tree.cut()
	tree.makeThick()
	tree.right = h.root
	h.root = tree
}

// lowerRank walks the left-sibling chain of a tree about to be cut.
// Thin left siblings absorb the rank drop and become thick; the first
// thick left sibling instead exposes its first child as a new right
// sibling. At the parent, a root takes the lowered rank, a thick parent
// merely turns thin, and a parent that was already thin is cut as well,
// cascading the repair upwards.
func (h *Thin[K]) lowerRank(tree *thinNode[K]) {
	rank := tree.rank
	left := tree.left

	for left.child != tree {
		// left is a sibling, not the parent.
		if left.isThick() {
			leftChild := left.detachFirstChild()
			left.insertAfter(leftChild)

			return
		}

		// Thin sibling: drop its rank, making it thick, and continue.
		left.rank = rank
		tree = left
		left = left.left
		rank++
	}

	if left.isRoot() {
		left.rank = rank
		return
	}

	// A previously thick parent merely turns thin.
	if left.rank == rank+1 {
		return
	}

	// The parent was already thin: cascade the cut.
	h.cutAndMoveToRoot(left)
	left.rank = rank
}

func (n *thinNode[K]) isRoot() bool { return n.left == nil }

// isThick reports whether the highest-rank child trails by exactly one.
func (n *thinNode[K]) isThick() bool {
	if n.child != nil {
		return n.child.rank+1 == n.rank
	}

	return n.rank == 0
}

// makeThick drops the rank so the thick predicate holds.
func (n *thinNode[K]) makeThick() {
	if n.child != nil {
		n.rank = n.child.rank + 1
	} else {
		n.rank = 0
	}
}

// addChild pushes child as the new highest-rank child, raising n's rank.
func (n *thinNode[K]) addChild(child *thinNode[K]) {
	if n.child != nil {
		n.child.left = child
	}
	child.left = n
	child.right = n.child
	n.child = child
	n.rank++
}

// insertAfter splices node in as n's next sibling.
func (n *thinNode[K]) insertAfter(node *thinNode[K]) {
	node.left = n
	node.right = n.right
	if n.right != nil {
		n.right.left = node
	}
	n.right = node
}

// detachFirstChild removes the highest-rank child without touching n's
// rank; only valid while n is thick.
func (n *thinNode[K]) detachFirstChild() *thinNode[K] {
	child := n.child
	if child.right != nil {
		child.right.left = n
	}
	n.child = child.right
	child.left = nil
	child.right = nil

	return child
}

// cut unlinks n from its parent or siblings.
func (n *thinNode[K]) cut() {
	if n.left.child == n {
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

// mergeRoot buckets root by rank, merging equal-rank trees (the smaller
// root adopts the other as its highest-rank child) until a slot is
// free.
func (h *Thin[K]) mergeRoot(root *thinNode[K]) {
	rank := root.rank
	for {
		for len(h.rootsByRank) < rank+1 {
			h.rootsByRank = append(h.rootsByRank, nil)
		}
		other := h.rootsByRank[rank]
		if other == nil {
			h.rootsByRank[rank] = root
			break
		}
		h.rootsByRank[rank] = nil

		if h.less(root.key, other.key) {
			root.addChild(other)
		} else {
			other.addChild(root)
			root = other
		}
		rank++
	}
}

// Validate re-checks root thickness, per-tree rank chains, sibling back
// links, the heap order, the minimum pointer and the id index
// bijection.
func (h *Thin[K]) Validate() error {
	if len(h.index) == 0 {
		if h.root != nil || h.minRoot != nil {
			return fmt.Errorf("heaps: thin: empty heap has roots")
		}

		return nil
	}

	seen := make(map[int]struct{})
	for root := h.root; root != nil; root = root.right {
		if !root.isRoot() {
			return fmt.Errorf("heaps: thin: root id %d has a left link", root.id)
		}
		if h.less(root.key, h.minRoot.key) {
			return fmt.Errorf("heaps: thin: root id %d orders before the minimum pointer", root.id)
		}
		if root.rank < 0 {
			return fmt.Errorf("heaps: thin: root id %d has negative rank", root.id)
		}
		if !root.isThick() {
			return fmt.Errorf("heaps: thin: root id %d is thin", root.id)
		}
		if err := h.validateTree(root, seen); err != nil {
			return err
		}
	}

	if len(seen) != len(h.index) {
		return fmt.Errorf("heaps: thin: reached %d nodes, index holds %d", len(seen), len(h.index))
	}

	return nil
}

func (h *Thin[K]) validateTree(n *thinNode[K], seen map[int]struct{}) error {
	if _, dup := seen[n.id]; dup {
		return fmt.Errorf("heaps: thin: id %d reached twice", n.id)
	}
	seen[n.id] = struct{}{}
	if h.index[n.id] != n {
		return fmt.Errorf("heaps: thin: id %d indexed to a different node", n.id)
	}

	if n.child == nil {
		if n.rank > 1 {
			return fmt.Errorf("heaps: thin: childless id %d has rank %d", n.id, n.rank)
		}

		return nil
	}

	if n.child.left != n {
		return fmt.Errorf("heaps: thin: first child of id %d does not point back", n.id)
	}
	childRank := n.child.rank
	if childRank != n.rank-1 && childRank != n.rank-2 {
		return fmt.Errorf("heaps: thin: id %d (rank %d) has highest child of rank %d", n.id, n.rank, childRank)
	}
	for child := n.child; child != nil; child = child.right {
		if child.isRoot() {
			return fmt.Errorf("heaps: thin: child id %d has no left link", child.id)
		}
		if child.rank != childRank {
			return fmt.Errorf("heaps: thin: child id %d has rank %d, want %d", child.id, child.rank, childRank)
		}
		if h.less(child.key, n.key) {
			return fmt.Errorf("heaps: thin: order violated between id %d and child id %d", n.id, child.id)
		}
		if err := h.validateTree(child, seen); err != nil {
			return err
		}
		if child.right != nil && child.right.left != child {
			return fmt.Errorf("heaps: thin: sibling chain broken at id %d", child.id)
		}
		childRank--
	}

	return nil
}

// Dump writes every root tree, flagging the minimum.
func (h *Thin[K]) Dump(w io.Writer, label string) {
	fmt.Fprintf(w, "-- Heap (%d) %s --\n", h.Size(), label)
	for root := h.root; root != nil; root = root.right {
		if root == h.minRoot {
			io.WriteString(w, "Min ")
		}
		fmt.Fprintf(w, "Tree #%d\n", root.rank)
		root.dump(w, 1)
	}
}

func (n *thinNode[K]) dump(w io.Writer, level int) {
	indent(w, level)
	fmt.Fprintf(w, "%v [id:%d][rank:%d]\n", n.key, n.id, n.rank)
	for child := n.child; child != nil; child = child.right {
		child.dump(w, level+1)
	}
}
