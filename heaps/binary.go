package heaps

import (
	"fmt"
	"io"
)

// Binary is an array-backed binary min-heap with an id→index map so that
// elements stay addressable while they move through the array.
type Binary[K any] struct {
	less Less[K]

	// elems holds the implicit tree: children of i live at 2i+1 and 2i+2.
	elems []Element[K]

	// index maps each live id to its current position in elems. Every
	// position change goes through setElement so the map never lags.
	index map[int]int
}

// NewBinary returns an empty binary heap ordering keys by less.
func NewBinary[K any](less Less[K]) *Binary[K] {
	return &Binary[K]{
		less:  less,
		index: make(map[int]int),
	}
}

// BinaryFactory returns the named constructor for Binary heaps.
func BinaryFactory[K any](less Less[K]) Factory[K] {
	return Factory[K]{
		Name: "binary",
		New:  func() Interface[K] { return NewBinary(less) },
	}
}

// Size returns the number of stored elements.
func (h *Binary[K]) Size() int { return len(h.elems) }

// Add appends the element and sifts it up to its position.
func (h *Binary[K]) Add(key K, id int) {
	if _, ok := h.index[id]; ok {
		panicDuplicateID(id)
	}
	pos := len(h.elems)
	h.elems = append(h.elems, Element[K]{Key: key, ID: id})
	h.index[id] = pos
	h.siftUp(pos)
}

// DecreaseKey lowers the key at the element's current index and sifts up
// from there.
func (h *Binary[K]) DecreaseKey(newKey K, id int) {
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
func (h *Binary[K]) Lookup(id int) (K, bool) {
	pos, ok := h.index[id]
	if !ok {
		var zero K
		return zero, false
	}

	return h.elems[pos].Key, true
}

// Min returns the root element.
func (h *Binary[K]) Min() (K, int) {
	if len(h.elems) == 0 {
		panicEmpty("Min")
	}

	return h.elems[0].Key, h.elems[0].ID
}

// PopMin removes the root, moves the last element to the top and sifts
// it down.
func (h *Binary[K]) PopMin() (K, int) {
	if len(h.elems) == 0 {
		panicEmpty("PopMin")
	}
	min := h.elems[0]
	delete(h.index, min.ID)

	last := len(h.elems) - 1
	if last == 0 {
		h.elems = h.elems[:0]
		return min.Key, min.ID
	}

	h.setElement(0, h.elems[last])
	h.elems = h.elems[:last]
	h.siftDown(0)

	return min.Key, min.ID
}

// siftUp moves the element at pos upwards until its parent is not
// larger. The element is held aside while parents shift down, then
// placed once.
func (h *Binary[K]) siftUp(pos int) {
	element := h.elems[pos]

	for pos > 0 {
		parent := (pos - 1) / 2
		parentElement := h.elems[parent]

		// Done once the parent orders first or ties.
		if !h.less(element.Key, parentElement.Key) {
			break
		}

		h.setElement(pos, parentElement)
		pos = parent
	}

	h.setElement(pos, element)
}

// siftDown moves the element at pos downwards, always descending into
// the strictly smaller child.
func (h *Binary[K]) siftDown(pos int) {
	element := h.elems[pos]

	child := pos*2 + 1
	for child < len(h.elems) {
		// Prefer the right child only when it is strictly smaller.
		if child+1 < len(h.elems) && h.less(h.elems[child+1].Key, h.elems[child].Key) {
			child++
		}

		childElement := h.elems[child]
		if !h.less(childElement.Key, element.Key) {
			break
		}

		h.setElement(pos, childElement)
		pos = child
		child = child*2 + 1
	}

	h.setElement(pos, element)
}

// setElement places element at pos and refreshes the id index before
// control returns to the caller.
func (h *Binary[K]) setElement(pos int, element Element[K]) {
	h.index[element.ID] = pos
	h.elems[pos] = element
}

// Validate re-checks the array ordering and the id index bijection.
func (h *Binary[K]) Validate() error {
	for pos := 1; pos < len(h.elems); pos++ {
		parent := (pos - 1) / 2
		if h.less(h.elems[pos].Key, h.elems[parent].Key) {
			return fmt.Errorf("heaps: binary: order violated between index %d and parent %d", pos, parent)
		}
	}
	for pos, element := range h.elems {
		mapped, ok := h.index[element.ID]
		if !ok {
			return fmt.Errorf("heaps: binary: id %d missing from index", element.ID)
		}
		if mapped != pos {
			return fmt.Errorf("heaps: binary: id %d indexed at %d, stored at %d", element.ID, mapped, pos)
		}
	}
	if len(h.index) != len(h.elems) {
		return fmt.Errorf("heaps: binary: index has %d entries for %d elements", len(h.index), len(h.elems))
	}

	return nil
}

// Dump writes the implicit tree with one line per element.
func (h *Binary[K]) Dump(w io.Writer, label string) {
	fmt.Fprintf(w, "-- Heap (%d) %s --\n", h.Size(), label)
	if len(h.elems) > 0 {
		h.dump(0, w, 1)
	}
}

func (h *Binary[K]) dump(pos int, w io.Writer, level int) {
	indent(w, level)
	fmt.Fprintf(w, "%v [id:%d]\n", h.elems[pos].Key, h.elems[pos].ID)

	for child := pos*2 + 1; child <= pos*2+2; child++ {
		if child < len(h.elems) {
			h.dump(child, w, level+1)
		}
	}
}
