package viewer

import (
	"archive/zip"
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"docview/engine"

	_ "docview/engine/cbz"
)

func makeComic(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("unable to encode png: %v", err)
	}

	path := filepath.Join(t.TempDir(), "comic.cbz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("unable to create archive: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range []string{"ch1/01.png", "ch1/02.png", "ch2/01.png"} {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(buf.Bytes()); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInfoString(t *testing.T) {
	e, err := engine.Open(context.Background(), makeComic(t), &engine.Options{Log: zap.NewNop()})
	if err != nil {
		t.Fatalf("unable to open comic: %v", err)
	}
	defer e.Close()

	t.Run("without history", func(t *testing.T) {
		got, err := infoString(e, 0, false)
		if err != nil {
			t.Fatalf("infoString() error: %v", err)
		}
		for _, want := range []string{
			"pages: 3",
			"image collection: true",
			"outline: true",
			"entries: 2",
			`labels: "01 .. 01"`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("info dump missing %q:\n%s", want, got)
			}
		}
		if strings.Contains(got, "last read") {
			t.Error("info dump should not mention history without an entry")
		}
	})

	t.Run("with history", func(t *testing.T) {
		got, err := infoString(e, 2, true)
		if err != nil {
			t.Fatalf("infoString() error: %v", err)
		}
		if !strings.Contains(got, `last read: "page 2 of 3"`) {
			t.Errorf("info dump missing history line:\n%s", got)
		}
	})
}
