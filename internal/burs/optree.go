package burs

import "burslex/internal/errs"

// OpNode is one operator-tree node: Op is the operator it was built with
// (an implicit leaf's Op is "Reg" or "Int", spec §3), Succs are its
// operand children in argument order, and Pred is its unique parent (nil
// only for the root). Grounded on optree.py:Node.
type OpNode struct {
	Index int
	Op    string
	Pred  *OpNode
	Succs []*OpNode
}

// OpTree is a named collection of OpNodes built bottom-up: adding a node
// also resolves (and implicitly creates) any argument named for the first
// time as a leaf, exactly like optree.py's build_arg. Grounded on
// optree.py:OpTree.
type OpTree struct {
	nameToIdx map[string]int
	idxToName []string
	nodes     []*OpNode
	Root      *OpNode
}

// NewOpTree returns an empty tree ready to accept Add calls.
func NewOpTree() *OpTree {
	return &OpTree{nameToIdx: map[string]int{}}
}

// buildArg resolves name to a node, implicitly creating a leaf the first
// time it is referenced. A leaf's Op is "Reg" if name is alphabetic, "Int"
// otherwise (optree.py's isalpha check), e.g. a register name vs an
// integer immediate.
func (t *OpTree) buildArg(name string) *OpNode {
	if idx, ok := t.nameToIdx[name]; ok {
		return t.nodes[idx]
	}
	op := "Int"
	if isAlpha(name) {
		op = "Reg"
	}
	return t.add(name, op, nil)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

// Add defines node name as an application of op to argNames (each
// resolved, implicitly creating leaves), and returns the new node.
// Grounded on optree.py:OpTree.add.
func (t *OpTree) Add(name, op string, argNames []string) *OpNode {
	args := make([]*OpNode, len(argNames))
	for i, a := range argNames {
		args[i] = t.buildArg(a)
	}
	idx := len(t.idxToName)
	t.idxToName = append(t.idxToName, name)
	t.nameToIdx[name] = idx
	node := &OpNode{Index: idx, Op: op, Succs: args}
	for _, a := range args {
		a.Pred = node
	}
	t.nodes = append(t.nodes, node)
	return node
}

// Finish asserts every node has a predecessor except the node named "@",
// which becomes Root. Grounded on optree.py:OpTree.finish.
func (t *OpTree) Finish() error {
	for name, idx := range t.nameToIdx {
		node := t.nodes[idx]
		if node.Pred == nil {
			if name != "@" {
				return &errs.StructureError{Subject: "operator tree", Message: "node " + name + " has no predecessor"}
			}
			t.Root = node
		}
	}
	if t.Root == nil {
		return &errs.StructureError{Subject: "operator tree", Message: "no root node named \"@\""}
	}
	return nil
}

// Nodes returns every node in the tree, in add order.
func (t *OpTree) Nodes() []*OpNode {
	return t.nodes
}
