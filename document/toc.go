// Package document defines the document object model shared by all engine
// backends: navigation destinations and the table-of-contents tree.
package document

import (
	"go.uber.org/zap"
)

// Font style flags of a ToC entry.
const (
	FontFlagItalic = 1 << iota
	FontFlagBold
)

// TocItem is a node of a document outline. Children form a singly-linked
// sibling chain: a node owns the head of its child chain (Child) and the
// remainder of its own sibling chain (Next). Parent is a back-reference
// only and must not be trusted until SetTocTreeParents has run over the
// tree.
//
// Tree mutation and traversal assume a single caller at a time, the
// sequential iteration cache used by ChildAt is deliberately unsynchronized.
type TocItem struct {
	ID     int
	Title  string
	PageNo int
	Dest   *Destination // owned, nil when the item does not navigate

	FontFlags int
	Color     uint32

	// An item is expanded when exactly one of these is set, so toggling
	// only ever flips IsOpenToggled regardless of the default.
	IsOpenDefault bool
	IsOpenToggled bool

	// Excluded from filtered ("selected pages only") views.
	IsUnchecked bool

	// Number of pages the item spans, used by page range filtering.
	NPages int

	// Backend specific payloads carried through cloning untouched.
	RawVal1        string
	RawVal2        string
	EngineFilePath string // target document for embedded-file links

	Parent *TocItem
	Child  *TocItem
	Next   *TocItem

	handle any // UI binding, see TocTree.SetHandle

	// last visited (index, node) pair, makes forward sequential ChildAt
	// scans amortized O(1)
	currChild   *TocItem
	currChildNo int
}

// NewTocItem makes a detached item. Linking it into a tree is up to the
// caller (AddChild, AddSibling, ...).
func NewTocItem(parent *TocItem, title string, pageNo int) *TocItem {
	return &TocItem{Title: title, PageNo: pageNo, Parent: parent}
}

// AddSibling splices sibling right after ti in the sibling chain. The new
// node inherits ti's parent.
func (ti *TocItem) AddSibling(sibling *TocItem) {
	currNext := ti.Next
	ti.Next = sibling
	sibling.Next = currNext
	sibling.Parent = ti.Parent
}

// AddSiblingAtEnd walks to the end of ti's sibling chain and appends
// sibling there. O(n) in chain length.
func (ti *TocItem) AddSiblingAtEnd(sibling *TocItem) {
	item := ti
	for item.Next != nil {
		item = item.Next
	}
	item.Next = sibling
	sibling.Parent = item.Parent
}

// AddChild inserts newChild as the new head of ti's child chain. Repeated
// calls therefore produce children in reverse insertion order, callers
// needing forward order insert in reverse or append with AddSiblingAtEnd.
func (ti *TocItem) AddChild(newChild *TocItem) {
	currChild := ti.Child
	ti.Child = newChild
	newChild.Parent = ti
	newChild.Next = currChild
}

// OpenSingleNode expands this node (and its only sibling, if any) unless
// the chain starting here has three or more nodes. Used to auto-expand
// root-level outlines only when there are at most two top-level entries.
func (ti *TocItem) OpenSingleNode() {
	if ti.Next != nil && ti.Next.Next != nil {
		return
	}
	if !ti.IsExpanded() {
		ti.IsOpenToggled = !ti.IsOpenToggled
	}
	if ti.Next == nil {
		return
	}
	if !ti.Next.IsExpanded() {
		ti.Next.IsOpenToggled = !ti.Next.IsOpenToggled
	}
}

// DeleteJustSelf detaches all three links so that dropping the node cannot
// take its subtree or later siblings with it. Re-linking whatever pointed
// at the node is the caller's job.
func (ti *TocItem) DeleteJustSelf() {
	ti.Child = nil
	ti.Next = nil
	ti.Parent = nil
	ti.currChild = nil
	ti.currChildNo = 0
}

// ChildCount walks the child chain. O(n).
func (ti *TocItem) ChildCount() int {
	n := 0
	for node := ti.Child; node != nil; node = node.Next {
		n++
	}
	return n
}

// ChildAt returns the n-th child. A forward sequential scan (n = 0, 1,
// 2, ...) is amortized O(1) thanks to a per-node cache, random access walks
// from the head. Not safe for concurrent iteration.
func (ti *TocItem) ChildAt(n int) *TocItem {
	if n < 0 {
		return nil
	}
	if n == 0 {
		ti.currChild = ti.Child
		ti.currChildNo = 0
		return ti.Child
	}
	if ti.currChild != nil && n == ti.currChildNo+1 {
		ti.currChild = ti.currChild.Next
		ti.currChildNo++
		return ti.currChild
	}
	node := ti.Child
	for n > 0 && node != nil {
		n--
		node = node.Next
	}
	return node
}

// IsExpanded reports whether the node shows its children. Leaf items are
// never expanded. An item is expanded when expanded by default and not
// toggled, or not expanded by default and toggled.
func (ti *TocItem) IsExpanded() bool {
	if ti.Child == nil {
		return false
	}
	return ti.IsOpenDefault != ti.IsOpenToggled
}

// PageNumbersMatch verifies that the item's destination agrees with the
// item's own page number. Nothing to check when there is no destination or
// it carries no page. A mismatch is logged and reported, never repaired.
func (ti *TocItem) PageNumbersMatch(log *zap.Logger) bool {
	if ti.Dest == nil || ti.Dest.PageNo <= 0 {
		return true
	}
	if ti.PageNo != ti.Dest.PageNo {
		log.Warn("ToC item page number differs from its destination",
			zap.String("title", ti.Title), zap.Int("item_page", ti.PageNo), zap.Int("dest_page", ti.Dest.PageNo))
		return false
	}
	return true
}
