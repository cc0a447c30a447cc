// Package doubleres provides double-buffered values for use as byke resources.
//
// A DoubleBuffer holds two copies of a value, a current one and a next one.
// Systems read the current value while staging the following value into the
// next slot, then promote it with a call to Swap. This breaks circular update
// dependencies: the next state can be computed as a function of the current
// state without the write becoming visible mid-frame.
package doubleres

import "fmt"

// DoubleBuffer holds two instances of a value of type T. One slot is the
// current value, the other one is the next value. Swap exchanges the two
// roles in constant time by flipping an index, the payload is never copied.
//
// The zero value is usable if the zero value of T is, with both slots zero
// and slot 0 as the current one. A DoubleBuffer is a plain value and can be
// used standalone or inserted into a byke.World as a resource.
type DoubleBuffer[T any] struct {
	buffer [2]T
	index  int

	// set while an Apply is running to reject re-entrant access
	applying bool
}

// Cloner is implemented by values that can produce an independent copy of
// themselves. Use it together with NewCloned for types where a plain
// assignment copy would share underlying storage.
type Cloner[T any] interface {
	Clone() T
}

// New creates a DoubleBuffer with both slots initialized to value.
//
// The second slot is filled by assignment. For types containing slices, maps
// or pointers this is a shallow copy, use NewCloned or NewPair instead if the
// two slots must not share storage.
func New[T any](value T) DoubleBuffer[T] {
	return FromBuffer([2]T{value, value}, 0)
}

// NewCloned creates a DoubleBuffer with both slots initialized to value,
// duplicating it via its Clone method.
func NewCloned[T Cloner[T]](value T) DoubleBuffer[T] {
	return FromBuffer([2]T{value.Clone(), value}, 0)
}

// NewPair creates a DoubleBuffer from two independently constructed values.
// No duplication of T takes place.
func NewPair[T any](current, next T) DoubleBuffer[T] {
	return FromBuffer([2]T{current, next}, 0)
}

// FromBuffer creates a DoubleBuffer from a raw pair of slots and the index of
// the slot that is to act as the current one. The index must be 0 or 1.
func FromBuffer[T any](buffer [2]T, index int) DoubleBuffer[T] {
	if index != 0 && index != 1 {
		panic(fmt.Sprintf("doubleres: slot index must be 0 or 1, got %d", index))
	}

	return DoubleBuffer[T]{buffer: buffer, index: index}
}

// Current returns a pointer to the current slot.
// The pointer must not be retained across a call to Swap.
// Current must not be called while an Apply is running, the values are
// already exposed to the callback there.
func (b *DoubleBuffer[T]) Current() *T {
	b.assertNotBorrowed("Current")
	return &b.buffer[b.index]
}

// Next returns a pointer to the next slot.
// The pointer must not be retained across a call to Swap.
// Next must not be called while an Apply is running, the values are
// already exposed to the callback there.
func (b *DoubleBuffer[T]) Next() *T {
	b.assertNotBorrowed("Next")
	return &b.buffer[1-b.index]
}

// Buffer returns the raw pair of slots in storage order.
func (b *DoubleBuffer[T]) Buffer() *[2]T {
	return &b.buffer
}

// Index returns the index of the current slot within Buffer.
func (b *DoubleBuffer[T]) Index() int {
	return b.index
}

// SetIndex selects which slot acts as the current one. The index must be
// 0 or 1. It must not be called from within an Apply callback.
func (b *DoubleBuffer[T]) SetIndex(index int) {
	if index != 0 && index != 1 {
		panic(fmt.Sprintf("doubleres: slot index must be 0 or 1, got %d", index))
	}

	b.assertNotBorrowed("SetIndex")

	b.index = index
}

// Split returns pointers to both slots in storage order, independent of
// which one is the current one.
func (b *DoubleBuffer[T]) Split() (*T, *T) {
	b.assertNotBorrowed("Split")
	return &b.buffer[0], &b.buffer[1]
}

// SplitOrdered returns pointers to both slots in role order, the current
// slot first. The caller is responsible for treating the current value as
// read-only, prefer Apply where possible. Like the other slot accessors it
// must not be called while an Apply is running.
func (b *DoubleBuffer[T]) SplitOrdered() (current, next *T) {
	return b.Current(), b.Next()
}

// Apply invokes f once with the current and the next value. This is the
// primary mutation idiom: compute the next state from the current one, then
// promote it with Swap.
//
// The buffer is considered borrowed while f runs. Any other access to the
// same buffer from within f panics.
func (b *DoubleBuffer[T]) Apply(f func(current, next *T)) {
	b.assertNotBorrowed("Apply")

	current, next := b.Current(), b.Next()

	b.applying = true
	defer func() { b.applying = false }()

	f(current, next)
}

// Swap exchanges the roles of the two slots. The next value becomes the
// current one, the previous current value stays in place and becomes the
// next slot, ready to be overwritten in the following cycle.
//
// Swap requires exclusive access to the buffer. Calling it from within an
// Apply callback panics.
func (b *DoubleBuffer[T]) Swap() {
	b.assertNotBorrowed("Swap")

	b.index = 1 - b.index
}

func (b *DoubleBuffer[T]) assertNotBorrowed(op string) {
	if b.applying {
		panic("doubleres: " + op + " called while an Apply is running")
	}
}
