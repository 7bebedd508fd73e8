// Package engine defines the backend contract every document format
// implementation satisfies and the defaults shared between them.
package engine

import (
	"context"
	"errors"
	"image"
	"strconv"

	"docview/common"
	"docview/document"
)

// ErrUnsupported marks an operation the backend does not implement.
// Capability queries never return it, they answer with their documented
// negative default instead.
var ErrUnsupported = errors.New("operation not supported by this engine")

// RenderPageArgs carries everything a backend needs to produce a page
// image. Zoom 1 is 100%, Rotation is in degrees clockwise and only
// multiples of 90 are meaningful.
type RenderPageArgs struct {
	PageNo   int
	Zoom     float64
	Rotation int
	Target   common.RenderTarget
}

// PageElement is a region of interest on a page: a link, an image or an
// annotation comment.
type PageElement struct {
	Kind   common.ElementKind
	PageNo int
	Rect   document.RectF
	Value  string // link URL or comment text
	Dest   *document.Destination
}

// LinkHandler is supplied by the navigation layer to Engine.HandleLink so
// backends with format specific link semantics can drive navigation
// directly.
type LinkHandler interface {
	GotoLink(dest *document.Destination)
}

// Engine is the capability surface a viewer calls against. Every method is
// total: unsupported capabilities answer with a documented negative default
// and never with an error.
type Engine interface {
	FileName() string
	PageCount() int
	PageMediabox(pageNo int) document.RectF
	PageContentBox(pageNo int, target common.RenderTarget) document.RectF
	RenderPage(ctx context.Context, args RenderPageArgs) (image.Image, error)
	Transform(rect document.RectF, pageNo int, zoom float64, rotation int, inverse bool) document.RectF

	SaveAsPDF(path string) bool

	IsImageCollection() bool
	AllowsPrinting() bool
	AllowsCopyingText() bool
	IsPasswordProtected() bool
	HasPageLabels() bool

	GetPageLabel(pageNo int) string
	GetPageByLabel(label string) int
	GetNamedDest(name string) *document.Destination
	GetToc() *document.TocTree
	HasToc() bool
	GetDecryptionKey() []byte
	GetImageForPageElement(el *PageElement) (image.Image, error)
	HandleLink(dest *document.Destination, h LinkHandler) bool

	Close() error
}

// Base carries the state common to all backends and supplies the default
// behavior of the Engine contract. Backends embed it, fill the exported
// fields at open time and override only what their format supports.
type Base struct {
	FilePath string
	NumPages int

	// One mediabox per page, index 0 is page 1.
	Mediaboxes []document.RectF

	ImageCollection    bool
	PrintingAllowed    bool
	CopyingTextAllowed bool
	PasswordProtected  bool
	PageLabels         bool

	DecryptionKey []byte
	Toc           *document.TocTree
}

func (b *Base) FileName() string {
	return b.FilePath
}

// PageCount fails fast on a negative count. That is a backend programming
// error, not a document problem.
func (b *Base) PageCount() int {
	if b.NumPages < 0 {
		// this should never happen
		panic("engine: negative page count")
	}
	return b.NumPages
}

// PageMediabox returns the page's bounding box, the zero rectangle when the
// page number is out of range.
func (b *Base) PageMediabox(pageNo int) document.RectF {
	if pageNo < 1 || pageNo > len(b.Mediaboxes) {
		return document.RectF{}
	}
	return b.Mediaboxes[pageNo-1]
}

// PageContentBox falls back to the full page bounding box.
func (b *Base) PageContentBox(pageNo int, _ common.RenderTarget) document.RectF {
	return b.PageMediabox(pageNo)
}

func (b *Base) RenderPage(_ context.Context, _ RenderPageArgs) (image.Image, error) {
	return nil, ErrUnsupported
}

func (b *Base) SaveAsPDF(_ string) bool {
	return false
}

func (b *Base) IsImageCollection() bool   { return b.ImageCollection }
func (b *Base) AllowsPrinting() bool      { return b.PrintingAllowed }
func (b *Base) AllowsCopyingText() bool   { return b.CopyingTextAllowed }
func (b *Base) IsPasswordProtected() bool { return b.PasswordProtected }
func (b *Base) HasPageLabels() bool       { return b.PageLabels }

// GetPageLabel defaults to the decimal page number.
func (b *Base) GetPageLabel(pageNo int) string {
	return strconv.Itoa(pageNo)
}

// GetPageByLabel defaults to parsing the label as an integer, 0 when the
// label is not numeric.
func (b *Base) GetPageByLabel(label string) int {
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0
	}
	return n
}

func (b *Base) GetNamedDest(_ string) *document.Destination {
	return nil
}

func (b *Base) GetToc() *document.TocTree {
	return b.Toc
}

func (b *Base) HasToc() bool {
	return b.GetToc() != nil
}

// GetDecryptionKey returns a copy so callers cannot mutate the stored key.
func (b *Base) GetDecryptionKey() []byte {
	if b.DecryptionKey == nil {
		return nil
	}
	key := make([]byte, len(b.DecryptionKey))
	copy(key, b.DecryptionKey)
	return key
}

func (b *Base) GetImageForPageElement(_ *PageElement) (image.Image, error) {
	return nil, ErrUnsupported
}

// HandleLink defaults to "not handled" so the generic navigation fallback
// applies.
func (b *Base) HandleLink(_ *document.Destination, _ LinkHandler) bool {
	return false
}

func (b *Base) Close() error {
	return nil
}
