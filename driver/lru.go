// SPDX-License-Identifier: Unlicense OR MIT

package driver

// IndexLRU tracks the recency order of a fixed set of integer slots, such as
// texture units or uniform buffer binding points. The slots form a single
// circular doubly-linked ring so that both marking a slot as used and
// evicting the least recently used slot are O(1).
type IndexLRU struct {
	linkage []link
	lru     int
	mru     int
}

type link struct {
	prev, next int
}

// NewIndexLRU builds a ring of capacity slots in ascending order: slot 0 is
// the least recently used, slot capacity-1 the most recently used.
func NewIndexLRU(capacity int) *IndexLRU {
	if capacity < 1 {
		panic("driver: IndexLRU capacity must be at least 1")
	}
	linkage := make([]link, capacity)
	for i := range linkage {
		linkage[i] = link{
			prev: ((i-1)%capacity + capacity) % capacity,
			next: (i + 1) % capacity,
		}
	}
	return &IndexLRU{
		linkage: linkage,
		lru:     0,
		mru:     capacity - 1,
	}
}

// Cap returns the number of slots in the ring.
func (l *IndexLRU) Cap() int {
	return len(l.linkage)
}

// UseIndex moves slot index to the most recently used position. The index
// must be in [0, Cap()).
func (l *IndexLRU) UseIndex(index int) {
	if index == l.mru {
		return
	}
	if index == l.lru {
		l.UseLRUIndex()
		return
	}
	prev, next := l.linkage[index].prev, l.linkage[index].next
	l.linkage[prev].next = next
	l.linkage[next].prev = prev
	l.linkage[l.lru].prev = index
	l.linkage[l.mru].next = index
	l.linkage[index].prev = l.mru
	l.linkage[index].next = l.lru
	l.mru = index
}

// UseLRUIndex returns the least recently used slot and marks it as the most
// recently used; the LRU cursor advances to that slot's successor.
func (l *IndexLRU) UseLRUIndex() int {
	old := l.lru
	l.lru = l.linkage[old].next
	l.mru = old
	return old
}
