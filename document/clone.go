package document

// CloneTocItemRecur deep-copies the structure rooted at ti: scalar fields,
// owned strings, destinations, then the child subtree and the remaining
// sibling chain. With removeUnchecked set, unchecked nodes are pruned
// together with the subtrees they own and cloning resumes from the first
// checked sibling.
//
// Clones inherit the original nodes' Parent pointers which are wrong for
// the new tree. Running SetTocTreeParents over the result is a required
// post-step, not an optional fix-up.
func CloneTocItemRecur(ti *TocItem, removeUnchecked bool) *TocItem {
	if ti == nil {
		return nil
	}
	if removeUnchecked && ti.IsUnchecked {
		next := ti.Next
		for next != nil && next.IsUnchecked {
			next = next.Next
		}
		return CloneTocItemRecur(next, removeUnchecked)
	}

	res := &TocItem{
		ID:             ti.ID,
		Title:          ti.Title,
		PageNo:         ti.PageNo,
		Dest:           CloneDestination(ti.Dest),
		FontFlags:      ti.FontFlags,
		Color:          ti.Color,
		IsOpenDefault:  ti.IsOpenDefault,
		IsOpenToggled:  ti.IsOpenToggled,
		IsUnchecked:    ti.IsUnchecked,
		NPages:         ti.NPages,
		RawVal1:        ti.RawVal1,
		RawVal2:        ti.RawVal2,
		EngineFilePath: ti.EngineFilePath,
		Parent:         ti.Parent,
	}
	res.Child = CloneTocItemRecur(ti.Child, removeUnchecked)

	next := ti.Next
	if removeUnchecked {
		for next != nil && next.IsUnchecked {
			next = next.Next
		}
	}
	res.Next = CloneTocItemRecur(next, removeUnchecked)
	return res
}

// CloneTocTree clones the whole tree. The caller still runs
// SetTocTreeParents over the result before trusting Parent pointers.
func CloneTocTree(tree *TocTree, removeUnchecked bool) *TocTree {
	return NewTocTree(CloneTocItemRecur(tree.RootItem(), removeUnchecked))
}
