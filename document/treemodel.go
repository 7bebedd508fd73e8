package document

// TreeItem is an opaque node reference handed across the tree-view
// boundary. Nil means "no item". UI code never inspects it, only passes it
// back to the TreeModel that produced it.
type TreeItem any

// TreeModel is the generic contract a tree-view widget binds against.
type TreeModel interface {
	Root() TreeItem
	Text(TreeItem) string
	Parent(TreeItem) TreeItem
	ChildCount(TreeItem) int
	ChildAt(TreeItem, int) TreeItem
	IsExpanded(TreeItem) bool
	IsChecked(TreeItem) bool
}

// TocTree owns a document outline and adapts it to the TreeModel contract.
// The root may be a synthetic node whose children are the real top-level
// entries.
type TocTree struct {
	root *TocItem
}

func NewTocTree(root *TocItem) *TocTree {
	return &TocTree{root: root}
}

// RootItem is the typed accessor used by engine and traversal code.
func (t *TocTree) RootItem() *TocItem {
	return t.root
}

// mustTocItem unwraps a TreeItem handed back by UI code. Anything that is
// not a live *TocItem is programmer error.
func mustTocItem(ti TreeItem) *TocItem {
	item, ok := ti.(*TocItem)
	if !ok || item == nil {
		// this should never happen
		panic("document: invalid tree item")
	}
	return item
}

func (t *TocTree) Root() TreeItem {
	if t.root == nil {
		return nil
	}
	return t.root
}

func (t *TocTree) Text(ti TreeItem) string {
	return mustTocItem(ti).Title
}

func (t *TocTree) Parent(ti TreeItem) TreeItem {
	if p := mustTocItem(ti).Parent; p != nil {
		return p
	}
	return nil
}

func (t *TocTree) ChildCount(ti TreeItem) int {
	return mustTocItem(ti).ChildCount()
}

func (t *TocTree) ChildAt(ti TreeItem, idx int) TreeItem {
	if c := mustTocItem(ti).ChildAt(idx); c != nil {
		return c
	}
	return nil
}

func (t *TocTree) IsExpanded(ti TreeItem) bool {
	return mustTocItem(ti).IsExpanded()
}

// IsChecked is the inverse of the node's unchecked flag.
func (t *TocTree) IsChecked(ti TreeItem) bool {
	return !mustTocItem(ti).IsUnchecked
}

// SetHandle binds a platform UI handle to the node.
func (t *TocTree) SetHandle(ti TreeItem, h any) {
	mustTocItem(ti).handle = h
}

// GetHandle returns the platform UI handle bound to the node, nil when none
// was set.
func (t *TocTree) GetHandle(ti TreeItem) any {
	return mustTocItem(ti).handle
}
