// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package node

import (
	"strings"

	"github.com/gogpu/scenery"
)

// Kind identifies a node type.
type Kind uint8

const (
	KindRectangle Kind = iota + 1
	KindCircle
	KindLine
	KindText
	KindImage
)

var kindNames = [...]string{
	KindRectangle: "rectangle",
	KindCircle:    "circle",
	KindLine:      "line",
	KindText:      "text",
	KindImage:     "image",
}

// Kinds lists every node kind.
var Kinds = []Kind{KindRectangle, KindCircle, KindLine, KindText, KindImage}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Attribute is a bitmask of attribute categories carried by change
// notifications.
type Attribute uint16

const (
	// AttrShape covers geometry: rectangle size, radius, line endpoints.
	AttrShape Attribute = 1 << iota
	AttrFill
	AttrStroke
	AttrLineWidth
	// AttrLineStyle covers cap, join and dash.
	AttrLineStyle
	AttrText
	AttrFont
	AttrImage
	// AttrBounds is sent when the self bounds change.
	AttrBounds
	// AttrRenderers is sent when the node's renderer capabilities change.
	AttrRenderers
)

var attrNames = []struct {
	a    Attribute
	name string
}{
	{AttrShape, "shape"},
	{AttrFill, "fill"},
	{AttrStroke, "stroke"},
	{AttrLineWidth, "lineWidth"},
	{AttrLineStyle, "lineStyle"},
	{AttrText, "text"},
	{AttrFont, "font"},
	{AttrImage, "image"},
	{AttrBounds, "bounds"},
	{AttrRenderers, "renderers"},
}

// String returns the set categories joined by '|'.
func (a Attribute) String() string {
	var parts []string
	for _, n := range attrNames {
		if a&n.a != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Observer receives change notifications from a node.
type Observer interface {
	NodeChanged(n Node, changed Attribute)
}

// Node is the part of a scene-graph node that drawables consume.
type Node interface {
	// Kind returns the node type.
	Kind() Kind

	// Renderers returns the backend variants able to display the node in
	// its current state.
	Renderers() scenery.Renderer

	// AddObserver registers o for change notifications. Adding an observer
	// twice has no effect.
	AddObserver(o Observer)

	// RemoveObserver unregisters o. Removing an unknown observer is a no-op.
	RemoveObserver(o Observer)
}

// Base implements observer registration. Concrete nodes embed it and call
// notify from their setters.
type Base struct {
	self      Node
	observers []Observer
}

func (b *Base) init(self Node) {
	b.self = self
}

// AddObserver implements Node.
func (b *Base) AddObserver(o Observer) {
	for _, existing := range b.observers {
		if existing == o {
			return
		}
	}
	b.observers = append(b.observers, o)
}

// RemoveObserver implements Node.
func (b *Base) RemoveObserver(o Observer) {
	for i, existing := range b.observers {
		if existing == o {
			observers := make([]Observer, 0, len(b.observers)-1)
			observers = append(observers, b.observers[:i]...)
			b.observers = append(observers, b.observers[i+1:]...)
			return
		}
	}
}

// ObserverCount returns the number of registered observers.
func (b *Base) ObserverCount() int {
	return len(b.observers)
}

func (b *Base) notify(a Attribute) {
	if a == 0 {
		return
	}
	// Observers may detach while being notified, for example an instance
	// swapping its drawable on AttrRenderers; RemoveObserver copies, so the
	// slice captured here stays intact.
	for _, o := range b.observers {
		o.NodeChanged(b.self, a)
	}
}

// capabilities lists the variants each kind can be displayed with when its
// paint places no further restriction.
var capabilities = map[Kind]scenery.Renderer{
	KindRectangle: scenery.RendererAll,
	KindCircle:    scenery.RendererAll,
	KindLine:      scenery.RendererRaster | scenery.RendererMarkup | scenery.RendererBuffer,
	KindText:      scenery.RendererRaster | scenery.RendererMarkup | scenery.RendererElement,
	KindImage:     scenery.RendererRaster | scenery.RendererMarkup | scenery.RendererElement,
}

// Capabilities returns the variants a kind supports regardless of state.
func Capabilities(k Kind) scenery.Renderer {
	return capabilities[k]
}
