package core

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ErrNegativeLength is the panic value of [List.SetLength] for a negative length.
var ErrNegativeLength = errors.New("core: negative list length")

// List is a mutable, ordered sequence that requests a rebuild whenever it is
// mutated. Application code can edit it in place (Push, Splice, Sort, ...)
// instead of building a new slice for every change.
//
// Every mutating method calls the rebuild callback exactly once per call,
// before mutating, even when the call turns out to change nothing. Reads
// (Len, At, All, Items, Filter, ...) never call it.
//
// Index arguments to CopyWithin, Fill, Slice and Splice are relative: a
// negative index counts back from the end, and indices are clamped to
// [0, Len()]. At and Set take absolute indices and panic when out of range,
// like slice indexing.
//
// List is NOT thread-safe. It must only be accessed from the UI thread.
type List[T any] struct {
	items    []T
	rerender func()
}

// NewList creates a list holding items, wired to rerender.
// The items are copied and always taken literally: NewList(fn, 3) holds one
// element, 3. Construction does not call rerender. A nil rerender is allowed.
func NewList[T any](rerender func(), items ...T) *List[T] {
	return &List[T]{
		items:    slices.Clone(items),
		rerender: rerender,
	}
}

func (l *List[T]) changed() {
	if l.rerender != nil {
		l.rerender()
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, value T) {
	l.changed()
	l.items[i] = value
}

// SetLength truncates the list, or pads it with zero values, to n elements
// and returns n. It panics with ErrNegativeLength if n is negative.
func (l *List[T]) SetLength(n int) int {
	l.changed()
	if n < 0 {
		panic(ErrNegativeLength)
	}
	if n <= len(l.items) {
		clear(l.items[n:])
		l.items = l.items[:n]
	} else {
		l.items = append(l.items, make([]T, n-len(l.items))...)
	}
	return n
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.SetLength(0)
}

// CopyWithin copies the elements in [start, end) over the elements starting
// at target, without changing the length. end defaults to Len().
func (l *List[T]) CopyWithin(target, start int, end ...int) *List[T] {
	l.changed()
	n := len(l.items)
	to := relativeIndex(target, n)
	from := relativeIndex(start, n)
	final := n
	if len(end) > 0 {
		final = relativeIndex(end[0], n)
	}
	count := min(final-from, n-to)
	if count > 0 {
		copy(l.items[to:to+count], l.items[from:from+count])
	}
	return l
}

// Fill sets every element in [start, end) to value. Both bounds are
// optional: Fill(v) fills the whole list, Fill(v, 2) fills from index 2.
func (l *List[T]) Fill(value T, bounds ...int) *List[T] {
	l.changed()
	start, end := span(len(l.items), bounds)
	for i := start; i < end; i++ {
		l.items[i] = value
	}
	return l
}

// Pop removes and returns the last element. ok is false if the list is empty.
func (l *List[T]) Pop() (value T, ok bool) {
	l.changed()
	n := len(l.items)
	if n == 0 {
		return value, false
	}
	value = l.items[n-1]
	clear(l.items[n-1:])
	l.items = l.items[:n-1]
	return value, true
}

// Push appends values in order and returns the new length.
func (l *List[T]) Push(values ...T) int {
	l.changed()
	l.items = append(l.items, values...)
	return len(l.items)
}

// Reverse reverses the list in place and returns its elements in the new order.
// The returned slice is a copy.
func (l *List[T]) Reverse() []T {
	l.changed()
	slices.Reverse(l.items)
	return l.Items()
}

// Shift removes and returns the first element. ok is false if the list is empty.
func (l *List[T]) Shift() (value T, ok bool) {
	l.changed()
	if len(l.items) == 0 {
		return value, false
	}
	value = l.items[0]
	l.items = slices.Delete(l.items, 0, 1)
	return value, true
}

// Sort sorts the list in place, keeping equal elements in their original
// order. cmp returns a negative number when a sorts before b, and a positive
// number when it sorts after. A nil cmp orders elements by their fmt.Sprint
// form, so numbers compare as text: [10 9 1] sorts to [1 10 9].
func (l *List[T]) Sort(cmp func(a, b T) int) *List[T] {
	l.changed()
	if cmp == nil {
		cmp = compareText[T]
	}
	slices.SortStableFunc(l.items, cmp)
	return l
}

// DeleteCount is the optional delete count of [List.Splice].
// The zero value, [DeleteRest], means the count was not given.
type DeleteCount struct {
	n   int
	set bool
}

// DeleteRest removes every element from the splice start to the end.
var DeleteRest = DeleteCount{}

// DeleteN removes up to n elements. Negative counts remove nothing.
func DeleteN(n int) DeleteCount {
	return DeleteCount{n: n, set: true}
}

// Splice removes elements starting at start, inserts values in their place,
// and returns the removed elements.
//
// With DeleteRest, everything from start to the end is removed and values
// are ignored: Splice(1, DeleteRest, x, y) behaves exactly like
// Splice(1, DeleteRest).
func (l *List[T]) Splice(start int, count DeleteCount, values ...T) []T {
	l.changed()
	n := len(l.items)
	from := relativeIndex(start, n)
	if !count.set {
		removed := slices.Clone(l.items[from:])
		clear(l.items[from:])
		l.items = l.items[:from]
		return removed
	}
	to := from + min(max(count.n, 0), n-from)
	removed := slices.Clone(l.items[from:to])
	l.items = slices.Replace(l.items, from, to, values...)
	return removed
}

// Unshift inserts values, in order, at the front and returns the new length.
func (l *List[T]) Unshift(values ...T) int {
	l.changed()
	l.items = slices.Insert(l.items, 0, values...)
	return len(l.items)
}

// All returns an iterator over index-element pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Items returns a copy of the elements.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// Slice returns a copy of the elements in [start, end).
func (l *List[T]) Slice(bounds ...int) []T {
	start, end := span(len(l.items), bounds)
	return slices.Clone(l.items[start:end])
}

// Filter returns the elements for which keep returns true.
func (l *List[T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, v := range l.items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (l *List[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(l.items, f)
}

// Find returns the first element satisfying f.
func (l *List[T]) Find(f func(T) bool) (value T, ok bool) {
	if i := slices.IndexFunc(l.items, f); i >= 0 {
		return l.items[i], true
	}
	return value, false
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.items)
}

// MapList returns fn applied to every element of l, in order.
func MapList[T, U any](l *List[T], fn func(T) U) []U {
	out := make([]U, 0, len(l.items))
	for _, v := range l.items {
		out = append(out, fn(v))
	}
	return out
}

// ListIndex returns the index of the first element equal to value, or -1.
func ListIndex[T comparable](l *List[T], value T) int {
	return slices.Index(l.items, value)
}

// ListContains reports whether value is present in l.
func ListContains[T comparable](l *List[T], value T) bool {
	return slices.Contains(l.items, value)
}

func relativeIndex(i, n int) int {
	if i < 0 {
		return max(i+n, 0)
	}
	return min(i, n)
}

// span resolves optional [start, end) bounds against a length n.
func span(n int, bounds []int) (start, end int) {
	end = n
	if len(bounds) > 0 {
		start = relativeIndex(bounds[0], n)
	}
	if len(bounds) > 1 {
		end = relativeIndex(bounds[1], n)
	}
	if end < start {
		end = start
	}
	return start, end
}

func compareText[T any](a, b T) int {
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
