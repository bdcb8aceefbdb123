// Package attr holds the attributes of a start tag.
package attr

import (
	"strings"

	"github.com/heathj/gobrowse/html/escape"
)

// Attribute is a single name="value" pair. The name is not checked against
// the HTML attribute name grammar.
type Attribute struct {
	Name  string
	Value string
}

// New creates an Attribute.
func New(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Equal reports whether both the name and value of a and o match.
func (a Attribute) Equal(o Attribute) bool {
	return a == o
}

// Len returns the length of name="value" before the value is escaped. It is
// a lower bound on the rendered size.
func (a Attribute) Len() int {
	return len(a.Name) + len(a.Value) + 3
}

// String renders the attribute as name="value" with the value escaped.
func (a Attribute) String() string {
	var b strings.Builder
	b.Grow(a.Len())
	a.writeTo(&b)
	return b.String()
}

func (a Attribute) writeTo(b *strings.Builder) {
	b.WriteString(a.Name)
	b.WriteString(`="`)
	escape.WriteString(b, a.Value)
	b.WriteByte('"')
}
