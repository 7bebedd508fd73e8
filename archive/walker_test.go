package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func makeTestArchive(t *testing.T, files map[string]string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "test.zip")

	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("unable to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("unable to create %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("unable to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unable to finalize zip: %v", err)
	}
	return zipPath
}

func TestOpen(t *testing.T) {
	zipPath := makeTestArchive(t, map[string]string{
		"ch1/001.txt": "first",
		"ch1/002.txt": "second",
		"cover.txt":   "cover",
	})

	r, err := Open(zipPath, nil)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer r.Close()

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	byName := map[string]*Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	e, ok := byName["ch1/002.txt"]
	if !ok {
		t.Fatal("entry ch1/002.txt missing")
	}
	if e.Size() != uint64(len("second")) {
		t.Errorf("Size() = %d, want %d", e.Size(), len("second"))
	}

	rc, err := e.Open()
	if err != nil {
		t.Fatalf("entry Open() error: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("unable to read entry: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("entry content = %q, want %q", data, "second")
	}
}

func TestOpenRejectsUnsafePaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"path traversal", "../../../etc/passwd"},
		{"nested traversal", "safe/../../escape.txt"},
		{"absolute path", "/etc/passwd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zipPath := makeTestArchive(t, map[string]string{tt.path: "evil"})
			if _, err := Open(zipPath, nil); err == nil {
				t.Errorf("Open() accepted unsafe path %q", tt.path)
			}
		})
	}
}

func TestOpenMissingArchive(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "gone.zip"), nil); err == nil {
		t.Error("expected error for missing archive")
	}
}

func TestResolveCodePage(t *testing.T) {
	tests := []struct {
		name    string
		cp      string
		wantNil bool
		wantErr bool
	}{
		{"empty means no conversion", "", true, false},
		{"cp1251", "windows-1251", false, false},
		{"unknown name", "no-such-encoding", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := ResolveCodePage(tt.cp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveCodePage(%q) error = %v, wantErr %t", tt.cp, err, tt.wantErr)
			}
			if (enc == nil) != tt.wantNil {
				t.Errorf("ResolveCodePage(%q) = %v, wantNil %t", tt.cp, enc, tt.wantNil)
			}
		})
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"normal/file.txt", true},
		{"file.txt", true},
		{"../escape.txt", false},
		{"a/../../b.txt", false},
		{"/absolute.txt", false},
		{`\windows.txt`, false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.path); got != tt.want {
			t.Errorf("isSafePath(%q) = %t, want %t", tt.path, got, tt.want)
		}
	}
}
