// Package archive reads zip containers with entry names decoded from
// archaic code pages. The zip "standard" does not define file name encoding
// and comic archives made by old tools routinely carry names in whatever
// the author's locale was.
package archive

import (
	"fmt"
	"io"
	"path"
	"strings"

	fixzip "github.com/hidez8891/zip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Entry is a single file inside the archive. Name is the decoded path,
// always forward-slash separated.
type Entry struct {
	Name string
	file *fixzip.File
}

func (e *Entry) Open() (io.ReadCloser, error) {
	return e.file.Open()
}

func (e *Entry) Size() uint64 {
	return e.file.UncompressedSize64
}

// Reader is an open archive with its entry list already decoded and
// filtered. Directory entries are dropped, only files remain.
type Reader struct {
	rc      *fixzip.ReadCloser
	entries []*Entry
}

// ResolveCodePage looks up an encoding by its IANA name, nil for an empty
// name meaning "leave entry names alone".
func ResolveCodePage(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve code page %q: %w", name, err)
	}
	return enc, nil
}

// Open opens the archive and decodes every non-UTF-8 entry name with cp
// when cp is non-nil. Entries with path traversal components or absolute
// paths fail the open outright.
func Open(archive string, cp encoding.Encoding) (*Reader, error) {
	rc, err := fixzip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("unable to open archive %s: %w", archive, err)
	}

	r := &Reader{rc: rc}
	for _, f := range rc.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			rc.Close()
			return nil, fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		if cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(name); err == nil {
				name = n
			}
		}
		r.entries = append(r.entries, &Entry{Name: name, file: f})
	}
	return r, nil
}

// Entries returns the archive's files in stored order.
func (r *Reader) Entries() []*Entry {
	return r.entries
}

func (r *Reader) Close() error {
	return r.rc.Close()
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
