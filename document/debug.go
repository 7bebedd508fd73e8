package document

import (
	"docview/utils/debug"
)

// DumpString renders the outline as indented text, one node per line with
// destination details nested under it. Meant for debug output and tests.
func (t *TocTree) DumpString() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Toc")
	var dump func(ti *TocItem, depth int)
	dump = func(ti *TocItem, depth int) {
		for ; ti != nil; ti = ti.Next {
			tw.Line(depth, "Item[%q] page[%d] expanded[%t] checked[%t]",
				ti.Title, ti.PageNo, ti.IsExpanded(), !ti.IsUnchecked)
			if d := ti.Dest; d != nil {
				tw.Line(depth+1, "Dest kind[%s] page[%d] zoom[%g]", d.Kind, d.PageNo, d.Zoom)
				if d.Value != "" {
					label := "value"
					if d.Kind.IsLaunch() {
						label = "url"
					}
					tw.TextBlock(depth+1, label, d.Value)
				}
				if d.Name != "" {
					tw.TextBlock(depth+1, "name", d.Name)
				}
			}
			if ti.Child != nil {
				dump(ti.Child, depth+1)
			}
		}
	}
	dump(t.root, 1)
	return tw.String()
}
