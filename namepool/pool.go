// Package namepool interns expanded names so that they can be compared
// and stored as small integers.
package namepool

import "sync"

// ID identifies an interned name. The zero ID is never allocated.
type ID uint32

// Name is a namespace URI and local name pair.
type Name struct {
	Namespace string
	Local     string
}

func (n Name) String() string {
	if n.Namespace == "" {
		return n.Local
	}
	return "{" + n.Namespace + "}" + n.Local
}

// Pool hands out stable IDs for names. It is safe for concurrent use and
// can be shared between compilations.
type Pool struct {
	mu    sync.RWMutex
	ids   map[Name]ID
	names []Name
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{
		ids:   make(map[Name]ID),
		names: []Name{{}},
	}
}

// Allocate returns the ID of the name, allocating one the first time
// the name is seen.
func (p *Pool) Allocate(namespace, local string) ID {
	n := Name{Namespace: namespace, Local: local}

	p.mu.RLock()
	id, ok := p.ids[n]
	p.mu.RUnlock()
	if ok {
		return id
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if id, ok := p.ids[n]; ok {
		return id
	}
	id = ID(len(p.names))
	p.names = append(p.names, n)
	p.ids[n] = id
	return id
}

// Lookup returns the name behind id.
func (p *Pool) Lookup(id ID) (Name, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if id == 0 || int(id) >= len(p.names) {
		return Name{}, false
	}
	return p.names[id], true
}

// Len returns the number of names allocated.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.names) - 1
}
