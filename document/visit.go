package document

// VisitTocTree visits ti and its whole subtree in pre-order: the node
// itself, then its child subtree, then the following siblings. Returning
// false from f aborts the entire traversal immediately, across all
// recursion levels, not just the current subtree. Reports whether the
// traversal ran to completion.
func VisitTocTree(ti *TocItem, f func(*TocItem) bool) bool {
	for ti != nil {
		cont := f(ti)
		if cont && ti.Child != nil {
			cont = VisitTocTree(ti.Child, f)
		}
		if !cont {
			return false
		}
		ti = ti.Next
	}
	return true
}

func visitTocTreeWithParent(ti, parent *TocItem, f func(ti, parent *TocItem) bool) bool {
	for ti != nil {
		cont := f(ti, parent)
		if cont && ti.Child != nil {
			cont = visitTocTreeWithParent(ti.Child, ti, f)
		}
		if !cont {
			return false
		}
		ti = ti.Next
	}
	return true
}

// VisitTocTreeWithParent is VisitTocTree with the structural parent of each
// node passed alongside it, nil for root-level nodes.
func VisitTocTreeWithParent(ti *TocItem, f func(ti, parent *TocItem) bool) bool {
	return visitTocTreeWithParent(ti, nil, f)
}

// SetTocTreeParents overwrites every node's Parent pointer with its actual
// structural parent. Must run once after any restructuring (build, clone,
// reparenting) before Parent is trusted.
func SetTocTreeParents(treeRoot *TocItem) {
	VisitTocTreeWithParent(treeRoot, func(ti, parent *TocItem) bool {
		ti.Parent = parent
		return true
	})
}
