// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package markup

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
)

// Element is a node of the markup tree. Every mutation counts as one
// backend write on the element and its document.
type Element struct {
	tag      string
	attrs    map[string]string
	text     string
	children []*Element
	parent   *Element
	doc      *Document
	writes   int
}

// Tag returns the element name.
func (e *Element) Tag() string { return e.tag }

// Attr returns the value of an attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// AttrNames returns the attribute names in sorted order.
func (e *Element) AttrNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Text returns the character data.
func (e *Element) Text() string { return e.text }

// Children returns the child elements. The slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// Writes returns the number of mutations applied to the element.
func (e *Element) Writes() int { return e.writes }

func (e *Element) wrote() {
	e.writes++
	if e.doc != nil {
		e.doc.writes++
	}
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	e.wrote()
}

// RemoveAttr removes an attribute. Removing an absent attribute is a no-op.
func (e *Element) RemoveAttr(name string) {
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	e.wrote()
}

// SetText replaces the character data.
func (e *Element) SetText(s string) {
	e.text = s
	e.wrote()
}

// AppendChild moves c to the end of e's children.
func (e *Element) AppendChild(c *Element) {
	c.Detach()
	c.parent = e
	e.children = append(e.children, c)
	e.wrote()
}

// Detach removes e from its parent. Detaching a detached element is a
// no-op.
func (e *Element) Detach() {
	p := e.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, e); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
	p.wrote()
}

// scrub removes every attribute, the text and all children, and moves the
// element to doc, leaving it as if newly created.
func (e *Element) scrub(doc *Document) {
	e.Detach()
	clear(e.attrs)
	e.text = ""
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.doc = doc
	e.writes = 0
}

func (e *Element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.tag}}
	for _, name := range e.AttrNames() {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: e.attrs[name]})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Document is an SVG document: a root element holding a defs section
// followed by the content group.
type Document struct {
	root    *Element
	defs    *Element
	content *Element
	writes  int
}

// NewDocument creates an empty document of the given size.
func NewDocument(width, height float64) *Document {
	d := &Document{}
	d.root = d.NewElement("svg")
	d.root.SetAttr("xmlns", "http://www.w3.org/2000/svg")
	d.root.SetAttr("width", num(width))
	d.root.SetAttr("height", num(height))
	d.root.SetAttr("viewBox", "0 0 "+num(width)+" "+num(height))
	d.defs = d.NewElement("defs")
	d.content = d.NewElement("g")
	d.root.AppendChild(d.defs)
	d.root.AppendChild(d.content)
	d.writes = 0
	return d
}

// NewElement creates a detached element owned by d.
func (d *Document) NewElement(tag string) *Element {
	return &Element{tag: tag, doc: d}
}

// Root returns the svg element.
func (d *Document) Root() *Element { return d.root }

// Defs returns the defs element.
func (d *Document) Defs() *Element { return d.defs }

// Content returns the group holding drawable elements.
func (d *Document) Content() *Element { return d.content }

// Writes returns the number of mutations since the document was created.
func (d *Document) Writes() int { return d.writes }

// WriteTo serializes the document as XML.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := xml.NewEncoder(cw)
	if err := d.root.encode(enc); err != nil {
		return cw.n, fmt.Errorf("markup: encode: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return cw.n, fmt.Errorf("markup: encode: %w", err)
	}
	return cw.n, nil
}

// String returns the serialized document.
func (d *Document) String() string {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// num formats a coordinate with at most four decimals.
func num(v float64) string {
	s := strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
