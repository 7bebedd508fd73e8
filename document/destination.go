package document

import (
	"docview/common"
)

// Destination is a navigation target: a place inside the document
// (scrollTo) or an external resource (launchURL, launchFile, ...).
// Immutable after construction except via Clone. A TocItem referencing a
// destination owns it exclusively.
type Destination struct {
	Kind   common.DestKind
	PageNo int     // 1-based, 0 for non-page kinds
	Rect   RectF   // viewport region, empty means whole page
	Zoom   float64 // 0 means inherit current zoom
	Value  string  // URL or path payload
	Name   string  // reverse lookup key, see Engine.GetNamedDest
}

// NewSimpleDest builds a destination for backends that only distinguish
// "jump to page" from "open URL". A non-empty value wins and produces a
// launchURL destination carrying only that string, page/rect/zoom are
// ignored in that case.
func NewSimpleDest(pageNo int, rect RectF, zoom float64, value string) *Destination {
	if len(value) > 0 {
		return &Destination{Kind: common.DestKindLaunchURL, Value: value}
	}
	return &Destination{
		Kind:   common.DestKindScrollTo,
		PageNo: pageNo,
		Rect:   rect,
		Zoom:   zoom,
	}
}

// Clone deep-copies the destination. A destination must carry a concrete
// kind by the time it is cloned, anything else is programmer error.
func (d *Destination) Clone() *Destination {
	if d.Kind == common.DestKindNone || !d.Kind.IsValid() {
		// this should never happen
		panic("document: cloning destination without a kind")
	}
	res := *d
	return &res
}

// CloneDestination is the nil-safe wrapper over Clone.
func CloneDestination(d *Destination) *Destination {
	if d == nil {
		return nil
	}
	return d.Clone()
}
