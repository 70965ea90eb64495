package egraph

// EGraph is a union-find congruence closure over hash-consed Node
// values: Add interns a node (returning an existing e-class if an
// equal, canonicalized node already exists), Union merges two classes
// and restores congruence via Rebuild.
type EGraph struct {
	unionFind []Id
	classes   map[Id]*EClass
	hashcons  map[Node]Id
	worklist  []Id
	nextID    Id
}

// New returns an empty EGraph.
func New() *EGraph {
	return &EGraph{
		classes:  make(map[Id]*EClass),
		hashcons: make(map[Node]Id),
	}
}

// Find returns the canonical representative of id's e-class, applying
// path compression.
func (g *EGraph) Find(id Id) Id {
	root := id
	for g.unionFind[root] != root {
		root = g.unionFind[root]
	}
	for g.unionFind[id] != root {
		next := g.unionFind[id]
		g.unionFind[id] = root
		id = next
	}
	return root
}

func (g *EGraph) canonicalize(n Node) Node {
	if n.Kid0 != noId {
		n.Kid0 = g.Find(n.Kid0)
	}
	if n.Kid1 != noId {
		n.Kid1 = g.Find(n.Kid1)
	}
	if n.Kid2 != noId {
		n.Kid2 = g.Find(n.Kid2)
	}
	return n
}

// Add interns n, canonicalizing its children first. If a congruent node
// is already present the existing e-class id is returned; otherwise a
// fresh singleton class is created and registered as a parent of each
// child class.
func (g *EGraph) Add(n Node) Id {
	n = g.canonicalize(n)
	if id, ok := g.hashcons[n]; ok {
		return g.Find(id)
	}

	id := g.nextID
	g.nextID++
	g.unionFind = append(g.unionFind, id)
	g.classes[id] = &EClass{ID: id, Nodes: []Node{n}}
	g.hashcons[n] = id

	for _, kid := range n.Children() {
		kc := g.classes[g.Find(kid)]
		kc.Parents = append(kc.Parents, Parent{Node: n, ID: id})
	}
	return id
}

// Union merges the e-classes of a and b, returning the surviving
// canonical id. Both classes' parents are scheduled for congruence
// re-checking by the next Rebuild.
func (g *EGraph) Union(a, b Id) Id {
	a, b = g.Find(a), g.Find(b)
	if a == b {
		return a
	}

	ca, cb := g.classes[a], g.classes[b]
	// Union by size: keep the larger class's id as the survivor so
	// repeated unions on a hot class stay cheap.
	if len(ca.Nodes)+len(ca.Parents) < len(cb.Nodes)+len(cb.Parents) {
		a, b = b, a
		ca, cb = cb, ca
	}

	g.unionFind[b] = a
	ca.Nodes = append(ca.Nodes, cb.Nodes...)
	ca.Parents = append(ca.Parents, cb.Parents...)
	delete(g.classes, b)

	g.worklist = append(g.worklist, a)
	return a
}

// Rebuild restores congruence after a batch of Unions: nodes whose
// children were merged may now collide in the hashcons table with a
// previously-distinct node, which forces a further Union. Runs to a
// fixed point.
func (g *EGraph) Rebuild() {
	for len(g.worklist) > 0 {
		todo := g.worklist
		g.worklist = nil

		seen := make(map[Id]bool, len(todo))
		for _, id := range todo {
			id = g.Find(id)
			if seen[id] {
				continue
			}
			seen[id] = true
			g.repairCongruence(id)
		}
	}
}

func (g *EGraph) repairCongruence(id Id) {
	class := g.classes[g.Find(id)]
	if class == nil {
		return
	}

	newHash := make(map[Node]Id, len(class.Parents))
	var newParents []Parent
	for _, p := range class.Parents {
		canon := g.canonicalize(p.Node)
		delete(g.hashcons, p.Node)
		if existing, ok := newHash[canon]; ok {
			g.Union(existing, p.ID)
		} else {
			newHash[canon] = g.Find(p.ID)
		}
		g.hashcons[canon] = g.Find(p.ID)
		newParents = append(newParents, Parent{Node: canon, ID: g.Find(p.ID)})
	}

	class = g.classes[g.Find(id)]
	if class != nil {
		class.Parents = newParents
	}
}

// EClassOf returns the e-class for id's canonical representative.
func (g *EGraph) EClassOf(id Id) *EClass {
	return g.classes[g.Find(id)]
}

// Classes returns every live e-class, keyed by canonical id.
func (g *EGraph) Classes() map[Id]*EClass {
	return g.classes
}

// NumClasses reports the number of live e-classes.
func (g *EGraph) NumClasses() int {
	return len(g.classes)
}

// NumNodes reports the total number of e-nodes across every class.
func (g *EGraph) NumNodes() int {
	n := 0
	for _, c := range g.classes {
		n += len(c.Nodes)
	}
	return n
}
