// Package cbz implements the comic book archive backend: a zip container of
// images where every image is a page and the directory structure inside the
// archive becomes the outline.
package cbz

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	// page image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"docview/archive"
	"docview/common"
	"docview/document"
	"docview/engine"
	"docview/utils/images"
)

func init() {
	engine.Register(common.DocFormatCbz, open)
}

var pageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".svg":  true,
}

type cbzEngine struct {
	engine.Base
	log   *zap.Logger
	r     *archive.Reader
	pages []*archive.Entry // index 0 is page 1
}

func open(ctx context.Context, fpath string, opts *engine.Options) (engine.Engine, error) {
	cp, err := archive.ResolveCodePage(opts.CodePage)
	if err != nil {
		opts.Log.Warn("Unknown character set specification. Ignoring...",
			zap.String("charset", opts.CodePage), zap.Error(err))
	}

	r, err := archive.Open(fpath, cp)
	if err != nil {
		return nil, err
	}

	e := &cbzEngine{log: opts.Log, r: r}
	e.FilePath = fpath
	e.ImageCollection = true
	e.PrintingAllowed = true

	for _, entry := range r.Entries() {
		if pageExts[strings.ToLower(path.Ext(entry.Name))] {
			e.pages = append(e.pages, entry)
		}
	}
	if len(e.pages) == 0 {
		r.Close()
		return nil, fmt.Errorf("no page images in archive %s", fpath)
	}
	sort.SliceStable(e.pages, func(i, j int) bool {
		return natural.Less(e.pages[i].Name, e.pages[j].Name)
	})
	e.NumPages = len(e.pages)

	if err := e.measurePages(ctx); err != nil {
		r.Close()
		return nil, err
	}
	e.Toc = e.buildToc()
	return e, nil
}

// measurePages fills the mediaboxes from the image headers. A page that
// fails to parse keeps a zero box and is reported when actually rendered.
func (e *cbzEngine) measurePages(ctx context.Context) error {
	e.Mediaboxes = make([]document.RectF, len(e.pages))
	for i, entry := range e.pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		w, h, err := e.measure(entry)
		if err != nil {
			e.log.Warn("Unable to read page image header",
				zap.String("entry", entry.Name), zap.Error(err))
			continue
		}
		e.Mediaboxes[i] = document.RectF{Dx: float64(w), Dy: float64(h)}
	}
	return nil
}

func (e *cbzEngine) measure(entry *archive.Entry) (int, int, error) {
	rc, err := entry.Open()
	if err != nil {
		return 0, 0, err
	}
	defer rc.Close()

	if strings.EqualFold(path.Ext(entry.Name), ".svg") {
		data, err := io.ReadAll(rc)
		if err != nil {
			return 0, 0, err
		}
		return images.SVGSize(data)
	}
	cfg, _, err := image.DecodeConfig(rc)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// buildToc turns the directory structure inside the archive into an
// outline: every directory becomes an entry pointing at its first page.
// Flat archives have no outline.
func (e *cbzEngine) buildToc() *document.TocTree {
	var root *document.TocItem
	items := map[string]*document.TocItem{}

	var dirItem func(dir string, pageNo int) *document.TocItem
	dirItem = func(dir string, pageNo int) *document.TocItem {
		if dir == "." || dir == "" {
			return nil
		}
		if it, ok := items[dir]; ok {
			return it
		}
		parent := dirItem(path.Dir(dir), pageNo)
		it := document.NewTocItem(parent, path.Base(dir), pageNo)
		it.Dest = document.NewSimpleDest(pageNo, document.RectF{}, 0, "")
		switch {
		case parent == nil && root == nil:
			root = it
		case parent == nil:
			root.AddSiblingAtEnd(it)
		case parent.Child == nil:
			parent.Child = it
		default:
			parent.Child.AddSiblingAtEnd(it)
		}
		items[dir] = it
		return it
	}

	for i, entry := range e.pages {
		dirItem(path.Dir(entry.Name), i+1)
	}
	if root == nil {
		return nil
	}
	document.SetTocTreeParents(root)
	root.OpenSingleNode()
	return document.NewTocTree(root)
}

func (e *cbzEngine) pageEntry(pageNo int) (*archive.Entry, error) {
	if pageNo < 1 || pageNo > len(e.pages) {
		return nil, fmt.Errorf("page %d out of range 1..%d", pageNo, len(e.pages))
	}
	return e.pages[pageNo-1], nil
}

func (e *cbzEngine) decodePage(entry *archive.Entry) (image.Image, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("unable to open page entry %s: %w", entry.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("unable to read page entry %s: %w", entry.Name, err)
	}
	if strings.EqualFold(path.Ext(entry.Name), ".svg") {
		return images.RasterizeSVG(data, 0, 0)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode page entry %s: %w", entry.Name, err)
	}
	return img, nil
}

func (e *cbzEngine) RenderPage(ctx context.Context, args engine.RenderPageArgs) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry, err := e.pageEntry(args.PageNo)
	if err != nil {
		return nil, err
	}
	img, err := e.decodePage(entry)
	if err != nil {
		return nil, err
	}

	if args.Zoom > 0 && args.Zoom != 1 {
		w := int(float64(img.Bounds().Dx())*args.Zoom + 0.5)
		img = imaging.Resize(img, w, 0, imaging.Lanczos)
	}
	// imaging rotates counter-clockwise, viewer rotation is clockwise
	switch ((args.Rotation % 360) + 360) % 360 {
	case 90:
		img = imaging.Rotate270(img)
	case 180:
		img = imaging.Rotate180(img)
	case 270:
		img = imaging.Rotate90(img)
	}
	return img, nil
}

// GetImageForPageElement serves image elements by decoding the page they
// sit on at its natural size.
func (e *cbzEngine) GetImageForPageElement(el *engine.PageElement) (image.Image, error) {
	if el == nil || el.Kind != common.ElementKindImage {
		return nil, engine.ErrUnsupported
	}
	entry, err := e.pageEntry(el.PageNo)
	if err != nil {
		return nil, err
	}
	return e.decodePage(entry)
}

// GetPageLabel uses the archive entry name, comics are usually browsed by
// file name.
func (e *cbzEngine) GetPageLabel(pageNo int) string {
	entry, err := e.pageEntry(pageNo)
	if err != nil {
		return e.Base.GetPageLabel(pageNo)
	}
	name := path.Base(entry.Name)
	return strings.TrimSuffix(name, path.Ext(name))
}

func (e *cbzEngine) GetPageByLabel(label string) int {
	for i := range e.pages {
		if e.GetPageLabel(i+1) == label {
			return i + 1
		}
	}
	return e.Base.GetPageByLabel(label)
}

func (e *cbzEngine) HasPageLabels() bool {
	return true
}

func (e *cbzEngine) Close() error {
	return e.r.Close()
}
