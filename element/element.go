// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package element

import (
	"html"
	"io"
	"slices"
	"strings"
)

// layoutProperties are the style properties whose writes cause a reflow.
var layoutProperties = map[string]bool{
	"left":        true,
	"top":         true,
	"width":       true,
	"height":      true,
	"font":        true,
	"line-height": true,
	"white-space": true,
	"direction":   true,
}

// Element is a styled box.
type Element struct {
	tag      string
	style    map[string]string
	attrs    map[string]string
	text     string
	children []*Element
	parent   *Element
	counter  *Counters
	writes   int
	reflows  int
}

// Counters aggregates the writes of every element of a block.
type Counters struct {
	Writes  int
	Reflows int
}

// NewElement creates a detached element whose writes are added to c.
// A nil c is allowed.
func NewElement(tag string, c *Counters) *Element {
	return &Element{tag: tag, counter: c}
}

// Tag returns the element name.
func (e *Element) Tag() string { return e.tag }

// Style returns a style property.
func (e *Element) Style(name string) (string, bool) {
	v, ok := e.style[name]
	return v, ok
}

// Attr returns a markup attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Text returns the text content.
func (e *Element) Text() string { return e.text }

// Children returns the child elements. The slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// Writes returns the number of mutations applied to the element.
func (e *Element) Writes() int { return e.writes }

// Reflows returns the number of writes that affected layout.
func (e *Element) Reflows() int { return e.reflows }

func (e *Element) wrote(layout bool) {
	e.writes++
	if layout {
		e.reflows++
	}
	if e.counter != nil {
		e.counter.Writes++
		if layout {
			e.counter.Reflows++
		}
	}
}

// SetStyle sets a style property. An empty value removes it.
func (e *Element) SetStyle(name, value string) {
	if value == "" {
		if _, ok := e.style[name]; !ok {
			return
		}
		delete(e.style, name)
	} else {
		if e.style == nil {
			e.style = make(map[string]string)
		}
		e.style[name] = value
	}
	e.wrote(layoutProperties[name])
}

// SetAttr sets a markup attribute. An empty value removes it.
func (e *Element) SetAttr(name, value string) {
	if value == "" {
		if _, ok := e.attrs[name]; !ok {
			return
		}
		delete(e.attrs, name)
	} else {
		if e.attrs == nil {
			e.attrs = make(map[string]string)
		}
		e.attrs[name] = value
	}
	e.wrote(false)
}

// SetText replaces the text content.
func (e *Element) SetText(s string) {
	e.text = s
	e.wrote(true)
}

// AppendChild moves c to the end of e's children.
func (e *Element) AppendChild(c *Element) {
	c.Remove()
	c.parent = e
	e.children = append(e.children, c)
	e.wrote(true)
}

// Remove detaches e from its parent. Removing a detached element is a
// no-op.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, e); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
	p.wrote(true)
}

func (e *Element) scrub(c *Counters) {
	e.Remove()
	clear(e.style)
	clear(e.attrs)
	e.text = ""
	e.children = nil
	e.counter = c
	e.writes = 0
	e.reflows = 0
}

// CSSText returns the inline style with properties in sorted order.
func (e *Element) CSSText() string {
	names := make([]string, 0, len(e.style))
	for name := range e.style {
		names = append(names, name)
	}
	slices.Sort(names)
	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(e.style[name])
		sb.WriteByte(';')
	}
	return sb.String()
}

// WriteHTML writes e and its subtree as indented HTML.
func (e *Element) WriteHTML(w io.Writer) error {
	var sb strings.Builder
	e.html(&sb, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func (e *Element) html(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("<" + e.tag)
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		sb.WriteString(" " + name + `="` + html.EscapeString(e.attrs[name]) + `"`)
	}
	if len(e.style) > 0 {
		sb.WriteString(` style="` + html.EscapeString(e.CSSText()) + `"`)
	}
	sb.WriteString(">")
	sb.WriteString(html.EscapeString(e.text))
	if len(e.children) > 0 {
		sb.WriteString("\n")
		for _, c := range e.children {
			c.html(sb, depth+1)
		}
		sb.WriteString(strings.Repeat("  ", depth))
	}
	if e.tag != "img" {
		sb.WriteString("</" + e.tag + ">")
	}
	sb.WriteString("\n")
}
