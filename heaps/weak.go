package heaps

import (
	"fmt"
	"io"
)

// Weak is an array-backed weak heap. Each index carries an orientation
// bit that decides which of its two slots (2i, 2i+1) is the child and
// which continues the sibling chain; the weak-heap order only relates an
// element to its distinguished ancestor, reached by climbing while the
// parity of the index matches the parent's orientation bit.
type Weak[K any] struct {
	less Less[K]

	elems []Element[K]

	// reverse[i] flips the child/sibling roles of 2i and 2i+1.
	// reverse[0] is always 0: the root has no sibling.
	reverse []byte

	index map[int]int
}

// NewWeak returns an empty weak heap ordering keys by less.
func NewWeak[K any](less Less[K]) *Weak[K] {
	return &Weak[K]{
		less:  less,
		index: make(map[int]int),
	}
}

// WeakFactory returns the named constructor for Weak heaps.
func WeakFactory[K any](less Less[K]) Factory[K] {
	return Factory[K]{
		Name: "weak",
		New:  func() Interface[K] { return NewWeak(less) },
	}
}

// Size returns the number of stored elements.
func (h *Weak[K]) Size() int { return len(h.elems) }

// Add appends the element with orientation bit 0 and sifts it up along
// its distinguished-ancestor chain.
func (h *Weak[K]) Add(key K, id int) {
	if _, ok := h.index[id]; ok {
		panicDuplicateID(id)
	}
	pos := len(h.elems)
	h.index[id] = pos
	h.elems = append(h.elems, Element[K]{Key: key, ID: id})
	h.reverse = append(h.reverse, 0)
	h.siftUp(pos)
}

// DecreaseKey lowers the key in place and sifts up from its position.
func (h *Weak[K]) DecreaseKey(newKey K, id int) {
	pos, ok := h.index[id]
	if !ok {
		panicAbsentID(id)
	}
	if h.less(h.elems[pos].Key, newKey) {
		panicKeyIncrease(id)
	}
	h.elems[pos].Key = newKey
	h.siftUp(pos)
}

// Lookup returns the current key for id, or (zero, false) when absent.
func (h *Weak[K]) Lookup(id int) (K, bool) {
	pos, ok := h.index[id]
	if !ok {
		var zero K
		return zero, false
	}

	return h.elems[pos].Key, true
}

// Min returns the root element.
func (h *Weak[K]) Min() (K, int) {
	if len(h.elems) == 0 {
		panicEmpty("Min")
	}

	return h.elems[0].Key, h.elems[0].ID
}

// PopMin removes the root, moves the last element to the top and
// restores the weak-heap order along the right spine.
func (h *Weak[K]) PopMin() (K, int) {
	if len(h.elems) == 0 {
		panicEmpty("PopMin")
	}
	min := h.elems[0]
	delete(h.index, min.ID)

	last := len(h.elems) - 1
	if last == 0 {
		h.elems = h.elems[:0]
		h.reverse = h.reverse[:0]
	} else {
		h.setElement(0, h.elems[last])
		h.elems = h.elems[:last]
		h.reverse = h.reverse[:last]
		h.siftDown()
	}

	return min.Key, min.ID
}

// ancestor climbs from pos to the distinguished ancestor: halve while
// the side pos sits on matches the parent's orientation bit.
func (h *Weak[K]) ancestor(pos int) int {
	for {
		isRightChild := pos & 1
		pos /= 2
		if int(h.reverse[pos]) != isRightChild {
			return pos
		}
	}
}

// siftUp moves the element at pos towards the root while it orders
// before its distinguished ancestor.
func (h *Weak[K]) siftUp(pos int) {
	element := h.elems[pos]

	for pos > 0 {
		anc := h.ancestor(pos)

		ancestorElement := h.elems[anc]
		if !h.less(element.Key, ancestorElement.Key) {
			break
		}

		h.setElement(pos, ancestorElement)
		pos = anc
	}

	h.setElement(pos, element)
}

// siftDown re-establishes the order after the root was replaced:
// descend the right spine from index 1 to its end, then walk back up,
// swapping the displaced top with every strictly smaller element and
// flipping that element's orientation bit.
func (h *Weak[K]) siftDown() {
	if len(h.elems) <= 1 {
		return
	}
	top := h.elems[0]

	pos := 1
	for pos < len(h.elems) {
		pos = pos*2 + int(h.reverse[pos])
	}

	for pos /= 2; pos > 0; pos /= 2 {
		if !h.less(h.elems[pos].Key, top.Key) {
			continue
		}

		swapped := h.elems[pos]
		h.setElement(pos, top)
		top = swapped

		h.reverse[pos] = 1 - h.reverse[pos]
	}

	h.setElement(0, top)
}

func (h *Weak[K]) setElement(pos int, element Element[K]) {
	h.index[element.ID] = pos
	h.elems[pos] = element
}

// Validate re-checks the distinguished-ancestor order, the root
// orientation bit and the id index bijection.
func (h *Weak[K]) Validate() error {
	if len(h.elems) > 0 && h.reverse[0] != 0 {
		return fmt.Errorf("heaps: weak: root orientation bit is set")
	}

	for pos := 1; pos < len(h.elems); pos++ {
		anc := h.ancestor(pos)
		if h.less(h.elems[pos].Key, h.elems[anc].Key) {
			return fmt.Errorf("heaps: weak: order violated between index %d and ancestor %d", pos, anc)
		}
	}
	for pos, element := range h.elems {
		mapped, ok := h.index[element.ID]
		if !ok {
			return fmt.Errorf("heaps: weak: id %d missing from index", element.ID)
		}
		if mapped != pos {
			return fmt.Errorf("heaps: weak: id %d indexed at %d, stored at %d", element.ID, mapped, pos)
		}
	}
	if len(h.index) != len(h.elems) {
		return fmt.Errorf("heaps: weak: index has %d entries for %d elements", len(h.index), len(h.elems))
	}

	return nil
}

// Dump writes the root followed by the binary-encoded multiway tree.
func (h *Weak[K]) Dump(w io.Writer, label string) {
	fmt.Fprintf(w, "-- Heap (%d) %s --\n", h.Size(), label)
	if len(h.elems) > 0 {
		h.dumpNode(0, w, 0)
		if len(h.elems) > 1 {
			h.dumpTree(1, w, 1)
		}
	}
}

func (h *Weak[K]) dumpNode(pos int, w io.Writer, level int) {
	indent(w, level)
	fmt.Fprintf(w, "%v [pos:%d][id:%d][reverse:%d]\n",
		h.elems[pos].Key, pos, h.elems[pos].ID, h.reverse[pos])
}

func (h *Weak[K]) dumpTree(pos int, w io.Writer, level int) {
	h.dumpNode(pos, w, level)

	childPos := pos * 2
	siblingPos := childPos
	if h.reverse[pos] != 0 {
		siblingPos++
	} else {
		childPos++
	}

	if childPos < len(h.elems) {
		h.dumpTree(childPos, w, level+1)
	}
	if siblingPos < len(h.elems) {
		h.dumpTree(siblingPos, w, level)
	}
}
