// Package fb2 implements the FB2 ebook backend: sections of the main body
// are pages, the section nesting is the outline and section ids are named
// destinations.
package fb2

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"docview/common"
	"docview/document"
	"docview/engine"
)

func init() {
	engine.Register(common.DocFormatFb2, open)
}

// FB2 has no physical page geometry, sections get a synthetic A4 box.
var sectionBox = document.RectF{Dx: 595, Dy: 842}

type fb2Engine struct {
	engine.Base
	title      string
	labels     []string // per page section title, may be empty
	namedDests map[string]int
}

func open(ctx context.Context, fpath string, opts *engine.Options) (engine.Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("unable to open FB2 file: %w", err)
	}
	defer f.Close()

	doc := etree.NewDocument()
	// Old FB2s are frequently not well-formed, parse as leniently as the
	// encoding allows
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("unable to read FB2: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "FictionBook" {
		return nil, fmt.Errorf("%s is not an FB2 document", fpath)
	}

	e := &fb2Engine{namedDests: map[string]int{}}
	e.FilePath = fpath
	e.CopyingTextAllowed = true
	e.PrintingAllowed = true
	e.PageLabels = true
	e.title = bookTitle(root)

	body := mainBody(root)
	if body == nil {
		return nil, fmt.Errorf("FB2 document %s has no body", fpath)
	}

	var tocRoot *document.TocItem
	var walk func(el *etree.Element, parent *document.TocItem)
	walk = func(el *etree.Element, parent *document.TocItem) {
		for _, section := range el.SelectElements("section") {
			e.NumPages++
			pageNo := e.NumPages

			title := sectionTitle(section)
			e.labels = append(e.labels, title)
			if id := section.SelectAttrValue("id", ""); id != "" {
				e.namedDests[id] = pageNo
			}

			it := document.NewTocItem(parent, title, pageNo)
			it.Dest = document.NewSimpleDest(pageNo, document.RectF{}, 0, "")
			switch {
			case parent == nil && tocRoot == nil:
				tocRoot = it
			case parent == nil:
				tocRoot.AddSiblingAtEnd(it)
			case parent.Child == nil:
				parent.Child = it
			default:
				parent.Child.AddSiblingAtEnd(it)
			}
			walk(section, it)
		}
	}
	walk(body, nil)

	if e.NumPages == 0 {
		return nil, fmt.Errorf("FB2 document %s has no sections", fpath)
	}
	e.Mediaboxes = make([]document.RectF, e.NumPages)
	for i := range e.Mediaboxes {
		e.Mediaboxes[i] = sectionBox
	}
	if tocRoot != nil {
		document.SetTocTreeParents(tocRoot)
		tocRoot.OpenSingleNode()
		e.Toc = document.NewTocTree(tocRoot)
	}
	return e, nil
}

// mainBody picks the first body without a name attribute, note bodies
// (name="notes" and friends) are not content.
func mainBody(root *etree.Element) *etree.Element {
	bodies := root.SelectElements("body")
	for _, b := range bodies {
		if b.SelectAttrValue("name", "") == "" {
			return b
		}
	}
	if len(bodies) > 0 {
		return bodies[0]
	}
	return nil
}

func bookTitle(root *etree.Element) string {
	if el := root.FindElement("./description/title-info/book-title"); el != nil {
		return strings.TrimSpace(elementText(el))
	}
	return ""
}

func sectionTitle(section *etree.Element) string {
	title := section.SelectElement("title")
	if title == nil {
		return ""
	}
	var parts []string
	for _, p := range title.SelectElements("p") {
		if t := strings.TrimSpace(elementText(p)); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		if t := strings.TrimSpace(elementText(title)); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// elementText gathers all character data under el, in document order.
func elementText(el *etree.Element) string {
	var sb strings.Builder
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.Child {
			switch node := child.(type) {
			case *etree.CharData:
				sb.WriteString(node.Data)
			case *etree.Element:
				walk(node)
			}
		}
	}
	walk(el)
	return sb.String()
}

// Title is the book title from the FB2 description block, empty when the
// document carries none.
func (e *fb2Engine) Title() string {
	return e.title
}

// GetNamedDest resolves a section id to its page.
func (e *fb2Engine) GetNamedDest(name string) *document.Destination {
	pageNo, ok := e.namedDests[name]
	if !ok {
		return nil
	}
	d := document.NewSimpleDest(pageNo, document.RectF{}, 0, "")
	d.Name = name
	return d
}

func (e *fb2Engine) GetPageLabel(pageNo int) string {
	if pageNo >= 1 && pageNo <= len(e.labels) && e.labels[pageNo-1] != "" {
		return e.labels[pageNo-1]
	}
	return e.Base.GetPageLabel(pageNo)
}

func (e *fb2Engine) GetPageByLabel(label string) int {
	for i, l := range e.labels {
		if l == label {
			return i + 1
		}
	}
	return e.Base.GetPageByLabel(label)
}

// HandleLink resolves document-internal links (href="#id") through the
// named destination table and navigates directly. Anything else falls
// through to the generic handling.
func (e *fb2Engine) HandleLink(dest *document.Destination, h engine.LinkHandler) bool {
	if dest == nil || h == nil {
		return false
	}
	if dest.Kind != common.DestKindLaunchURL || !strings.HasPrefix(dest.Value, "#") {
		return false
	}
	resolved := e.GetNamedDest(dest.Value[1:])
	if resolved == nil {
		return false
	}
	h.GotoLink(resolved)
	return true
}
