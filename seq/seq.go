// Package seq provides a small mutable sequence whose bindings share storage.
//
// A *List[T] is a binding. Copying the pointer (or calling Alias) produces a second
// binding to the same storage, so writes through one are visible through the other.
// Copy is the explicit way to get independent storage.
//
//	s := seq.New("apple", "bob")
//	t := s.Alias()
//	_ = s.Set(0, "qqrq")
//	v, _ := t.Get(0) // "qqrq"
package seq

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"
)

// Identity is a storage-identity token.
//
// Two bindings have the same Identity if and only if they share storage. The value
// is only meaningful while the storage is alive and must not be persisted.
type Identity uintptr

// String renders the token in decimal.
func (id Identity) String() string { return strconv.FormatUint(uint64(id), 10) }

// IndexError is returned when an index falls outside the list.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e IndexError) Error() string {
	// Example: seq: index 7 out of range (len 4)
	return "seq: index " + strconv.Itoa(e.Index) + " out of range (len " + strconv.Itoa(e.Len) + ")"
}

// List is an ordered, mutable, indexable collection.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	items []T
}

// New allocates fresh storage holding a copy of items.
func New[T any](items ...T) *List[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &List[T]{items: buf}
}

// Alias returns a second binding to the same storage.
func (l *List[T]) Alias() *List[T] { return l }

// Copy returns a shallow copy: new storage, elements copied at the top level only.
func (l *List[T]) Copy() *List[T] {
	if l == nil {
		return nil
	}
	return New(l.items...)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Get returns the element at i. Negative i counts from the end.
func (l *List[T]) Get(i int) (T, error) {
	idx, err := l.index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.items[idx], nil
}

// Set replaces the element at i. Negative i counts from the end.
func (l *List[T]) Set(i int, v T) error {
	idx, err := l.index(i)
	if err != nil {
		return err
	}
	l.items[idx] = v
	return nil
}

// Items returns a snapshot of the contents. Writing to the result does not touch
// the list's storage.
func (l *List[T]) Items() []T {
	out := make([]T, l.Len())
	if l != nil {
		copy(out, l.items)
	}
	return out
}

// ID returns the storage identity of the binding.
func (l *List[T]) ID() Identity { return Identity(uintptr(unsafe.Pointer(l))) }

// SameStorage reports whether a and b are bindings to the same storage.
func SameStorage[T any](a, b *List[T]) bool { return a == b }

// SliceID returns the identity of a plain slice's backing array. Slices that share
// a backing array from the same offset report the same identity. Empty slices
// report 0.
func SliceID[T any](s []T) Identity {
	if len(s) == 0 {
		return 0
	}
	return Identity(uintptr(unsafe.Pointer(unsafe.SliceData(s))))
}

// String renders the list as ['a', 'b', 'c'].
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.Items() {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := any(v).(string); ok {
			b.WriteString(quote(s))
			continue
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

func (l *List[T]) index(i int) (int, error) {
	n := l.Len()
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, IndexError{Index: i, Len: n}
	}
	return idx, nil
}

// quote wraps s in single quotes, or double quotes when s contains a single quote
// and no double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
