// Package html builds HTML markup out of discrete tokens and renders them
// to text.
//
// Text tokens and attribute values are escaped on output. RawText and
// Comment contents, tag names and attribute names are written verbatim;
// callers using them are responsible for the output being well formed.
// Each token renders on its own, so a sequence with unmatched end tags
// renders exactly as written.
package html

import (
	"strings"

	"github.com/heathj/gobrowse/html/attr"
	"github.com/heathj/gobrowse/html/escape"
)

//go:generate stringer -type=TokenType -linecomment

// TokenType is the variant of a Token.
type TokenType uint

const (
	invalidToken  TokenType = iota // Invalid
	StartTagToken                  // StartTag
	EndTagToken                    // EndTag
	// TextToken content is escaped when rendered. Prefer it over
	// RawTextToken whenever both could represent the text, e.g. whitespace
	// between tags.
	TextToken // Text
	// RawTextToken content is rendered as is, e.g. the body of a <style>
	// or <script> element.
	RawTextToken // RawText
	// CommentToken content sits between <!-- and -->. Nothing stops the
	// content from containing -->.
	CommentToken // Comment
	// DoctypeToken is always the HTML5 <!DOCTYPE html>.
	DoctypeToken // Doctype
)

// Token is one piece of HTML markup. Which fields are meaningful depends on
// Type: TagName, Attributes and SelfClosing for start tags, TagName for end
// tags, Data for text, raw text and comments. A Doctype carries nothing.
type Token struct {
	Type        TokenType
	TagName     string
	Attributes  attr.List
	SelfClosing bool
	Data        string
}

// StartTag creates an open start tag such as <div class="x">.
func StartTag(name string, attrs attr.List) Token {
	return Token{
		Type:       StartTagToken,
		TagName:    name,
		Attributes: attrs,
	}
}

// EndTag creates an end tag such as </div>.
func EndTag(name string) Token {
	return Token{Type: EndTagToken, TagName: name}
}

// Text creates a token whose content is escaped when rendered.
func Text(s string) Token {
	return Token{Type: TextToken, Data: s}
}

// RawText creates a token whose content is rendered verbatim.
func RawText(s string) Token {
	return Token{Type: RawTextToken, Data: s}
}

// Comment creates a <!--comment--> token.
func Comment(s string) Token {
	return Token{Type: CommentToken, Data: s}
}

// Doctype creates the <!DOCTYPE html> token.
func Doctype() Token {
	return Token{Type: DoctypeToken}
}

// Closed returns t.Closed().
func Closed(t Token) Token {
	return t.Closed()
}

// Closed marks a start tag as self-closing, as in <br />. The returned
// token owns a copy of t's attributes. Any other token is returned
// unchanged.
func (t Token) Closed() Token {
	if t.Type != StartTagToken {
		return t
	}
	t.Attributes = t.Attributes.Clone()
	t.SelfClosing = true
	return t
}

// Equal reports whether t and o are the same variant with the same
// contents.
func (t Token) Equal(o Token) bool {
	return t.Type == o.Type &&
		t.TagName == o.TagName &&
		t.SelfClosing == o.SelfClosing &&
		t.Data == o.Data &&
		t.Attributes.Equal(o.Attributes)
}

// String renders the token as HTML. A zero Token renders as "".
func (t Token) String() string {
	var b strings.Builder
	b.Grow(t.size())
	t.writeTo(&b)
	return b.String()
}

// size is a lower bound on the rendered length.
func (t Token) size() int {
	switch t.Type {
	case StartTagToken:
		n := len(t.TagName) + 2
		if t.SelfClosing {
			n += 2
		}
		for _, a := range t.Attributes.All() {
			n += a.Len() + 1
		}
		return n
	case EndTagToken:
		return len(t.TagName) + 3
	case TextToken, RawTextToken:
		return len(t.Data)
	case CommentToken:
		return len(t.Data) + 7
	case DoctypeToken:
		return len("<!DOCTYPE html>")
	}
	return 0
}

func (t Token) writeTo(b *strings.Builder) {
	switch t.Type {
	case StartTagToken:
		b.WriteByte('<')
		b.WriteString(t.TagName)
		b.WriteString(t.Attributes.String())
		if t.SelfClosing {
			b.WriteString(" />")
		} else {
			b.WriteByte('>')
		}
	case EndTagToken:
		b.WriteString("</")
		b.WriteString(t.TagName)
		b.WriteByte('>')
	case TextToken:
		escape.WriteString(b, t.Data)
	case RawTextToken:
		b.WriteString(t.Data)
	case CommentToken:
		b.WriteString("<!--")
		b.WriteString(t.Data)
		b.WriteString("-->")
	case DoctypeToken:
		b.WriteString("<!DOCTYPE html>")
	}
}

// Tokens is a sequence of tokens rendered one after another.
type Tokens []Token

// String concatenates the rendering of every token in order.
func (ts Tokens) String() string {
	n := 0
	for _, t := range ts {
		n += t.size()
	}
	var b strings.Builder
	b.Grow(n)
	for _, t := range ts {
		t.writeTo(&b)
	}
	return b.String()
}
