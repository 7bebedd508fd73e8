package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"docview/common"
)

// Options is what a backend gets to work with beyond the file itself.
type Options struct {
	// Log is the backend's logger, never nil after Open fills it in.
	Log *zap.Logger
	// CodePage is the IANA name of the encoding used for non-UTF-8 archive
	// entry names, empty means entry names are used as stored.
	CodePage string
	// Password is tried once when the document is protected.
	Password string
}

// OpenFunc constructs an engine over the given file.
type OpenFunc func(ctx context.Context, path string, opts *Options) (Engine, error)

var registry = map[common.DocFormat]OpenFunc{}

// Register binds a document format to its backend constructor. Backends
// call it from init, the program imports the backends it wants compiled in.
func Register(format common.DocFormat, fn OpenFunc) {
	if _, ok := registry[format]; ok {
		// this should never happen
		panic(fmt.Sprintf("engine: format %s registered twice", format))
	}
	registry[format] = fn
}

// DetectFormat sniffs the file content and falls back to the extension when
// the content is not conclusive. A zip container is reported as cbz, the
// archive layer does not care whether the extension says .zip or .cbz.
func DetectFormat(path string) (common.DocFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return common.DocFormatUnknown, fmt.Errorf("unable to open file for sniffing: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return common.DocFormatUnknown, fmt.Errorf("unable to read file header: %w", err)
	}

	if kind, err := filetype.Match(buf[:n]); err == nil {
		switch kind.Extension {
		case "pdf":
			return common.DocFormatPdf, nil
		case "zip":
			return common.DocFormatCbz, nil
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range []common.DocFormat{common.DocFormatPdf, common.DocFormatCbz, common.DocFormatFb2} {
		if ext == f.Ext() {
			return f, nil
		}
	}
	// alias extensions the formats do not own
	switch ext {
	case ".zip":
		return common.DocFormatCbz, nil
	case ".xml":
		return common.DocFormatFb2, nil
	}
	return common.DocFormatUnknown, nil
}

// Open sniffs the file, picks the registered backend for its format and
// constructs the engine. Every opened document gets its own id so log lines
// from concurrent opens stay attributable.
func Open(ctx context.Context, path string, opts *Options) (Engine, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	fn := registry[format]
	if fn == nil {
		return nil, fmt.Errorf("unable to open %s: unsupported document format", path)
	}

	o := *opts
	o.Log = opts.Log.With(
		zap.String("doc", uuid.New().String()),
		zap.String("file", filepath.Base(path)),
		zap.Stringer("format", format))

	e, err := fn(ctx, path, &o)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s document %s: %w", format, path, err)
	}
	return e, nil
}
