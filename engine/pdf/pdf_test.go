package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

// makeMinimalPDF writes a valid single page document, computing the cross
// reference offsets while the objects are emitted.
func makeMinimalPDF(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	for _, obj := range []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n",
	} {
		offsets = append(offsets, buf.Len())
		buf.WriteString(obj)
	}

	xref := buf.Len()
	buf.WriteString("xref\n0 4\n0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)

	path := filepath.Join(t.TempDir(), "minimal.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutlineToToc(t *testing.T) {
	outline := pdflib.Outline{
		Child: []pdflib.Outline{
			{
				Title: "Part One",
				Child: []pdflib.Outline{
					{Title: "Chapter 1"},
					{Title: "Chapter 2"},
				},
			},
			{Title: "Part Two"},
		},
	}

	tree := OutlineToToc(outline)
	if tree == nil {
		t.Fatal("non-empty outline should produce a tree")
	}

	root := tree.RootItem()
	if root.Title != "Part One" {
		t.Errorf("root title = %q, want Part One", root.Title)
	}
	if got := root.ChildCount(); got != 2 {
		t.Fatalf("Part One has %d children, want 2", got)
	}
	if got := root.ChildAt(0); got.Title != "Chapter 1" {
		t.Errorf("first chapter = %q, want Chapter 1", got.Title)
	}
	if got := root.ChildAt(1); got.Title != "Chapter 2" {
		t.Errorf("second chapter = %q, want Chapter 2", got.Title)
	}
	if root.ChildAt(0).Parent != root {
		t.Error("parent pointers not fixed up")
	}
	if root.Next == nil || root.Next.Title != "Part Two" {
		t.Errorf("second entry = %+v, want Part Two", root.Next)
	}
	// the library exposes no page targets
	if root.PageNo != 0 || root.ChildAt(0).PageNo != 0 {
		t.Error("outline entries should carry page 0")
	}
}

func TestOutlineToTocEmpty(t *testing.T) {
	if got := OutlineToToc(pdflib.Outline{}); got != nil {
		t.Errorf("empty outline should produce nil, got %v", got)
	}
}

func TestOpenMinimalDocument(t *testing.T) {
	e, err := open(context.Background(), makeMinimalPDF(t), nil)
	if err != nil {
		t.Fatalf("unable to open document: %v", err)
	}
	defer e.Close()

	if got := e.PageCount(); got != 1 {
		t.Errorf("PageCount() = %d, want 1", got)
	}
	mb := e.PageMediabox(1)
	if mb.Dx != 612 || mb.Dy != 792 {
		t.Errorf("PageMediabox(1) = %+v, want 612x792", mb)
	}
	if e.IsPasswordProtected() {
		t.Error("plain document should not report password protection")
	}
	if e.HasToc() {
		t.Error("document without outline should have no ToC")
	}
	// the page has no content stream, nothing to extract or copy
	if got := e.(*pdfEngine).ExtractText(1); got != "" {
		t.Errorf("ExtractText(1) = %q, want empty", got)
	}
	if e.AllowsCopyingText() {
		t.Error("document without text should not allow copying")
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.7 but nothing else"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := open(context.Background(), path, nil); err == nil {
		t.Error("expected error for a truncated PDF")
	}
}

func TestOpenMalformedXref(t *testing.T) {
	// startxref points into garbage, the library blows up while reading the
	// cross reference table and open must turn that into an error with the
	// file closed behind it
	path := filepath.Join(t.TempDir(), "badxref.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\ngarbage\nstartxref\n9\n%%EOF\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := open(context.Background(), path, nil); err == nil {
		t.Error("expected error for a document with a broken cross reference table")
	}
	if err := os.Remove(path); err != nil {
		t.Errorf("failed open should not hold on to the file: %v", err)
	}
}
