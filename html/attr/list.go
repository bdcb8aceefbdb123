package attr

import (
	"slices"
	"strings"
)

// List is an ordered collection of attributes keyed by name.
//
// A List either owns its backing slice or borrows one from the caller.
// Reads never copy. The first mutation of a borrowed List copies the slice
// so the caller's data is never written to. The zero List is empty and
// owned.
//
// Set is the only operation that keeps names unique. A List built from a
// slice that already repeats a name is accepted as is, and lookups return
// the first match.
type List struct {
	attrs    []Attribute
	borrowed bool
}

// Empty returns a List with no attributes.
func Empty() List {
	return List{}
}

// Borrow returns a List backed by attrs without copying it.
func Borrow(attrs []Attribute) List {
	return List{attrs: attrs, borrowed: true}
}

// Of returns a List that owns a copy of attrs.
func Of(attrs ...Attribute) List {
	return List{attrs: slices.Clone(attrs)}
}

// Len returns the number of attributes.
func (l List) Len() int {
	return len(l.attrs)
}

// All returns the attributes in order. The slice must not be modified.
func (l List) All() []Attribute {
	return l.attrs
}

// IsBorrowed reports whether the next mutation will copy the backing slice.
func (l List) IsBorrowed() bool {
	return l.borrowed
}

// Clone returns an owned copy of l.
func (l List) Clone() List {
	return List{attrs: slices.Clone(l.attrs)}
}

// Share returns a borrowed view of l's backing slice and marks l as
// borrowed too, so whichever side is mutated first copies and the other
// keeps the old contents.
func (l *List) Share() List {
	l.borrowed = true
	return Borrow(l.attrs)
}

// Equal reports whether l and o hold the same attributes in the same order.
func (l List) Equal(o List) bool {
	return slices.Equal(l.attrs, o.attrs)
}

func (l List) index(name string) int {
	return slices.IndexFunc(l.attrs, func(a Attribute) bool {
		return a.Name == name
	})
}

// Get returns the first attribute called name.
func (l List) Get(name string) (Attribute, bool) {
	if i := l.index(name); i >= 0 {
		return l.attrs[i], true
	}
	return Attribute{}, false
}

// GetMut returns a pointer to the first attribute called name, or nil. A
// borrowed List is copied before the lookup. The pointer is only valid
// until the next call to Set or Remove.
func (l *List) GetMut(name string) *Attribute {
	l.own()
	if i := l.index(name); i >= 0 {
		return &l.attrs[i]
	}
	return nil
}

// Set replaces the value of the first attribute called name, or appends a
// new attribute when there is none.
func (l *List) Set(name, value string) {
	if a := l.GetMut(name); a != nil {
		a.Value = value
		return
	}
	l.attrs = append(l.attrs, New(name, value))
}

// Remove deletes the first attribute called name and reports whether one
// was found.
func (l *List) Remove(name string) bool {
	i := l.index(name)
	if i < 0 {
		return false
	}
	l.own()
	l.attrs = slices.Delete(l.attrs, i, i+1)
	return true
}

func (l *List) own() {
	if !l.borrowed {
		return
	}
	l.attrs = slices.Clone(l.attrs)
	l.borrowed = false
}

// size is the rendered length before escaping, leading spaces included.
func (l List) size() int {
	n := 0
	for _, a := range l.attrs {
		n += a.Len() + 1
	}
	return n
}

// String renders every attribute with a leading space, e.g.
// ` id="main" class="a &amp; b"`.
func (l List) String() string {
	var b strings.Builder
	b.Grow(l.size())
	for _, a := range l.attrs {
		b.WriteByte(' ')
		a.writeTo(&b)
	}
	return b.String()
}
