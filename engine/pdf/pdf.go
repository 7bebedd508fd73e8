// Package pdf implements the PDF backend on top of github.com/ledongthuc/pdf.
// The library reads page geometry, plain text and the outline skeleton, it
// does not expose outline page targets, so outline entries carry no page.
package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"docview/common"
	"docview/document"
	"docview/engine"
)

func init() {
	engine.Register(common.DocFormatPdf, open)
}

// US letter in points, used when a page carries no MediaBox anywhere in its
// inheritance chain.
var defaultBox = document.RectF{Dx: 612, Dy: 792}

type pdfEngine struct {
	engine.Base
	f *os.File
	r *pdflib.Reader
}

func open(ctx context.Context, fpath string, opts *engine.Options) (e engine.Engine, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// the library panics on malformed cross reference tables, make sure the
	// file does not outlive a failed open on that path either
	var f *os.File
	defer func() {
		if r := recover(); r != nil {
			e, err = nil, fmt.Errorf("unable to parse PDF %s: %v", fpath, r)
		}
		if err != nil && f != nil {
			f.Close()
		}
	}()

	f, err = os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("unable to open PDF: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("unable to stat PDF: %w", err)
	}

	// the password is tried once, an empty second answer stops the library
	// from asking forever
	asked := false
	password := func() string {
		if asked || opts == nil {
			return ""
		}
		asked = true
		return opts.Password
	}
	r, err := pdflib.NewReaderEncrypted(f, fi.Size(), password)
	if err != nil {
		return nil, fmt.Errorf("unable to read PDF: %w", err)
	}

	pe := &pdfEngine{f: f, r: r}
	pe.FilePath = fpath
	pe.NumPages = r.NumPage()
	pe.PrintingAllowed = true
	pe.PasswordProtected = !r.Trailer().Key("Encrypt").IsNull()

	pe.Mediaboxes = make([]document.RectF, pe.NumPages)
	for i := 1; i <= pe.NumPages; i++ {
		pe.Mediaboxes[i-1] = mediabox(r.Page(i))
	}

	// text availability drives the copy capability
	if strings.TrimSpace(pe.ExtractText(1)) != "" {
		pe.CopyingTextAllowed = true
	}

	pe.Toc = OutlineToToc(r.Outline())
	return pe, nil
}

// mediabox resolves the page's MediaBox, walking up the page tree since the
// entry is inheritable.
func mediabox(page pdflib.Page) document.RectF {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if mb.Kind() != pdflib.Array || mb.Len() != 4 {
			continue
		}
		x0, y0 := mb.Index(0).Float64(), mb.Index(1).Float64()
		x1, y1 := mb.Index(2).Float64(), mb.Index(3).Float64()
		if x1 > x0 && y1 > y0 {
			return document.RectF{X: x0, Y: y0, Dx: x1 - x0, Dy: y1 - y0}
		}
	}
	return defaultBox
}

// OutlineToToc converts the library's outline skeleton to an outline tree.
// The library exposes titles and nesting but no page targets, so every item
// carries page 0. Returns nil for an empty outline.
func OutlineToToc(outline pdflib.Outline) *document.TocTree {
	root := convertOutline(outline.Child)
	if root == nil {
		return nil
	}
	document.SetTocTreeParents(root)
	root.OpenSingleNode()
	return document.NewTocTree(root)
}

func convertOutline(entries []pdflib.Outline) *document.TocItem {
	var first *document.TocItem
	for _, entry := range entries {
		it := document.NewTocItem(nil, strings.TrimSpace(entry.Title), 0)
		it.Child = convertOutline(entry.Child)
		if first == nil {
			first = it
		} else {
			first.AddSiblingAtEnd(it)
		}
	}
	return first
}

// ExtractText returns the plain text of one page, empty for pages the
// library cannot decode.
func (e *pdfEngine) ExtractText(pageNo int) (text string) {
	// content stream parsing panics on some damaged documents
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	if pageNo < 1 || pageNo > e.NumPages {
		return ""
	}
	page := e.r.Page(pageNo)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

func (e *pdfEngine) Close() error {
	return e.f.Close()
}
