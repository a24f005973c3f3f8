// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"fmt"
	"sync"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/node"
)

// Factory constructs a zero drawable of one variant.
type Factory func() Drawable

type factoryKey struct {
	kind     node.Kind
	renderer scenery.Renderer
}

var (
	registryMu sync.RWMutex
	factories  = make(map[factoryKey]Factory)
)

// Register makes a variant available for a node kind. It is called from the
// init function of backend packages and panics if r is not a single
// renderer, if factory is nil, or if the pair is already registered.
func Register(kind node.Kind, r scenery.Renderer, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if !r.Single() {
		panic(fmt.Sprintf("drawable: Register %v with renderer %v", kind, r))
	}
	if factory == nil {
		panic("drawable: Register factory is nil")
	}
	key := factoryKey{kind, r}
	if _, dup := factories[key]; dup {
		panic(fmt.Sprintf("drawable: Register called twice for %v/%v", r, kind))
	}
	factories[key] = factory
}

// Registered returns the renderers with a factory for kind.
func Registered(kind node.Kind) scenery.Renderer {
	registryMu.RLock()
	defer registryMu.RUnlock()
	var r scenery.Renderer
	for key := range factories {
		if key.kind == kind {
			r |= key.renderer
		}
	}
	return r
}

func lookupFactory(kind node.Kind, r scenery.Renderer) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := factories[factoryKey{kind, r}]
	return f, ok
}

// Pools holds one free list per (node kind, renderer), created lazily from
// the registered factories. It is not safe for concurrent use.
type Pools struct {
	cfg   Config
	pools map[factoryKey]*Pool[Drawable]
}

// NewPools creates pools using cfg as the retention policy.
func NewPools(cfg Config) *Pools {
	return &Pools{cfg: cfg, pools: make(map[factoryKey]*Pool[Drawable])}
}

// Config returns the retention policy.
func (p *Pools) Config() Config { return p.cfg }

func (p *Pools) pool(kind node.Kind, r scenery.Renderer) (*Pool[Drawable], error) {
	key := factoryKey{kind, r}
	if pl, ok := p.pools[key]; ok {
		return pl, nil
	}
	factory, ok := lookupFactory(kind, r)
	if !ok {
		return nil, fmt.Errorf("%w: no %v variant for %v", ErrUnsupportedRenderer, r, kind)
	}
	pl := NewPool(p.cfg.For(kind, r).MaxSize, func() Drawable {
		d := factory()
		d.base().construct(d, r)
		return d
	})
	p.pools[key] = pl
	return pl, nil
}

// Acquire returns a drawable of renderer r bound to n, inst and block. A
// reused drawable is indistinguishable from a new one: fully dirty, with no
// state of its previous occupant.
func (p *Pools) Acquire(n node.Node, inst *Instance, r scenery.Renderer, block Block) (Drawable, error) {
	pl, err := p.pool(n.Kind(), r)
	if err != nil {
		return nil, err
	}
	d, reused := pl.Get()
	scenery.Logger().Debug("drawable: acquire",
		"kind", n.Kind().String(), "renderer", r.String(), "reused", reused)
	d.base().attach(n, inst, block)
	return d, nil
}

// Release detaches d and returns it to its pool. Releasing a drawable that
// is not attached is a no-op.
func (p *Pools) Release(d Drawable) {
	b := d.base()
	if b.node == nil {
		return
	}
	kind := b.node.Kind()
	pl, err := p.pool(kind, b.renderer)
	if err != nil {
		// Unreachable for drawables built by Acquire.
		b.detach(false)
		return
	}
	// A drawable that will be dropped keeps nothing.
	b.detach(p.cfg.For(kind, b.renderer).RetainResources && !pl.Full())
	pl.Put(d)
}

// Warmup pre-constructs n drawables for kind and r.
func (p *Pools) Warmup(kind node.Kind, r scenery.Renderer, n int) error {
	pl, err := p.pool(kind, r)
	if err != nil {
		return err
	}
	pl.Warmup(n)
	return nil
}

// Stats returns the counters of the pool for kind and r.
func (p *Pools) Stats(kind node.Kind, r scenery.Renderer) PoolStats {
	if pl, ok := p.pools[factoryKey{kind, r}]; ok {
		return pl.Stats()
	}
	return PoolStats{}
}
