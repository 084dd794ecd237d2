// SPDX-License-Identifier: Unlicense OR MIT

package driver

import "testing"

func TestIndexLRUAscendingEviction(t *testing.T) {
	for capacity := 1; capacity <= 8; capacity++ {
		l := NewIndexLRU(capacity)
		for i := 0; i < capacity; i++ {
			if got := l.UseLRUIndex(); got != i {
				t.Errorf("capacity %d: eviction %d: got slot %d", capacity, i, got)
			}
		}
		if got := l.UseLRUIndex(); got != 0 {
			t.Errorf("capacity %d: eviction wrapped to slot %d, want 0", capacity, got)
		}
	}
}

func TestIndexLRUInterleaved(t *testing.T) {
	l := NewIndexLRU(4)
	for i := 0; i < 4; i++ {
		if got := l.UseLRUIndex(); got != i {
			t.Fatalf("initial eviction %d: got slot %d", i, got)
		}
	}
	l.UseIndex(0)
	if got := l.UseLRUIndex(); got != 1 {
		t.Errorf("after UseIndex(0): evicted slot %d, want 1", got)
	}
	l.UseIndex(3)
	if got := l.UseLRUIndex(); got != 2 {
		t.Errorf("after UseIndex(3): evicted slot %d, want 2", got)
	}
}

func TestIndexLRUUseMRU(t *testing.T) {
	l := NewIndexLRU(3)
	// Slot 2 starts as MRU; using it must not disturb the order.
	l.UseIndex(2)
	for _, want := range []int{0, 1, 2} {
		if got := l.UseLRUIndex(); got != want {
			t.Fatalf("evicted slot %d, want %d", got, want)
		}
	}
}

func TestIndexLRUUseLRUEquivalence(t *testing.T) {
	a, b := NewIndexLRU(4), NewIndexLRU(4)
	a.UseIndex(0)
	b.UseLRUIndex()
	for i := 0; i < 8; i++ {
		if got, want := a.UseLRUIndex(), b.UseLRUIndex(); got != want {
			t.Fatalf("eviction %d diverged: UseIndex(lru) gave %d, UseLRUIndex gave %d", i, got, want)
		}
	}
}

func TestIndexLRUSingleSlot(t *testing.T) {
	l := NewIndexLRU(1)
	for i := 0; i < 3; i++ {
		if got := l.UseLRUIndex(); got != 0 {
			t.Fatalf("eviction %d: got slot %d, want 0", i, got)
		}
		l.UseIndex(0)
	}
}

func TestNewIndexLRUPanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewIndexLRU(0) did not panic")
		}
	}()
	NewIndexLRU(0)
}
