package propcell

import "strings"

// Dep declares one dependency of a cached property: either a Path
// resolved against the owning store at first access, or a Fixed,
// pre-resolved node.
type Dep interface {
	resolve(s *Store) (graphNode, error)
	String() string
}

// hop is one relation traversal in a path: a step from an owner object to
// a related object.
type hop struct {
	name string
	step func(owner any) any
}

// Path names a property reachable from an owner: zero or more relation
// traversals followed by a property definition. Paths are plain values;
// they resolve to a concrete cell once, at setup time (cached-dependency
// resolution or Watch), never per alert.
type Path struct {
	hops []hop
	term Def
}

// At names a property on the owner itself.
func At(d Def) Path {
	return Path{term: d}
}

// Via starts a path with a relation traversal. The step function maps the
// current owner to the related object; returning nil fails resolution
// with ErrUnknownProperty.
func Via(name string, step func(owner any) any) Path {
	return Path{hops: []hop{{name: name, step: step}}}
}

// Via appends a relation traversal, returning a new path.
func (p Path) Via(name string, step func(owner any) any) Path {
	hops := make([]hop, len(p.hops), len(p.hops)+1)
	copy(hops, p.hops)
	return Path{hops: append(hops, hop{name: name, step: step}), term: p.term}
}

// To sets the terminal property definition, returning a new path.
func (p Path) To(d Def) Path {
	p.term = d
	return p
}

// String renders the path in dotted form.
func (p Path) String() string {
	var b strings.Builder
	for _, h := range p.hops {
		b.WriteString(h.name)
		b.WriteString(".")
	}
	if p.term != nil {
		b.WriteString(p.term.Name())
	} else {
		b.WriteString("?")
	}
	return b.String()
}

// resolve walks the relation hops starting at s's owner, obtains the
// final owner's store, and materializes the terminal property's cell.
func (p Path) resolve(s *Store) (graphNode, error) {
	if p.term == nil {
		return nil, unknownProperty(p.String())
	}
	st := s
	if len(p.hops) > 0 {
		cur := s.owner
		for _, h := range p.hops {
			if cur == nil {
				return nil, unknownProperty(p.String())
			}
			cur = h.step(cur)
		}
		if cur == nil {
			return nil, unknownProperty(p.String())
		}
		var err error
		st, err = StoreOf(cur)
		if err != nil {
			return nil, unknownProperty(p.String())
		}
	}
	return p.term.resolveCell(st)
}

// fixedDep wraps an already-resolved node, typically a constant or a cell
// obtained from another object's store.
type fixedDep struct {
	n Node
}

// Fixed declares a dependency on a concrete node instead of a path.
func Fixed(n Node) Dep {
	return fixedDep{n: n}
}

func (f fixedDep) resolve(*Store) (graphNode, error) {
	g, ok := f.n.(graphNode)
	if !ok {
		return nil, invalidDependency("fixed", f.n.Name())
	}
	return g, nil
}

func (f fixedDep) String() string {
	return f.n.Name()
}
