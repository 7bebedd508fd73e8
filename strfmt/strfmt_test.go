package strfmt

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []Arg
		want   string
	}{
		{
			name:   "positional pair",
			format: "{0} and {1}",
			args:   []Arg{Str("a"), Str("b")},
			want:   "a and b",
		},
		{
			name:   "positional reuse",
			format: "{0} {0}",
			args:   []Arg{Str("x")},
			want:   "x x",
		},
		{
			name:   "positional out of order",
			format: "{1}-{0}",
			args:   []Arg{Str("tail"), Str("head")},
			want:   "head-tail",
		},
		{
			name:   "percent integers",
			format: "%d-%d",
			args:   []Arg{Int(1), Int(2)},
			want:   "1-2",
		},
		{
			name:   "percent escape",
			format: "100%%",
			want:   "100%",
		},
		{
			name:   "brace escape",
			format: "a\\{b",
			want:   "a{b",
		},
		{
			name:   "single positional",
			format: "{0}",
			args:   []Arg{Str("only-one")},
			want:   "only-one",
		},
		{
			name:   "char placeholder",
			format: "drive %c:",
			args:   []Arg{Char('C')},
			want:   "drive C:",
		},
		{
			name:   "float drops trailing zeros",
			format: "zoom %f",
			args:   []Arg{Float(1.5)},
			want:   "zoom 1.5",
		},
		{
			name:   "any verb takes int",
			format: "page %v",
			args:   []Arg{Int(12)},
			want:   "page 12",
		},
		{
			name:   "mixed literal and placeholders",
			format: "saved %s (%d pages)",
			args:   []Arg{Str("file.pdf"), Int(3)},
			want:   "saved file.pdf (3 pages)",
		},
		{
			name:   "trailing omitted arguments trimmed",
			format: "%s",
			args:   []Arg{Str("kept"), {}, {}},
			want:   "kept",
		},
		{
			name:   "no placeholders no args",
			format: "plain text",
			want:   "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.format, tt.args...)
			if err != nil {
				t.Fatalf("Format(%q) error = %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormat_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		args    []Arg
		wantErr error
	}{
		{
			name:    "string into int placeholder",
			format:  "%d",
			args:    []Arg{Str("not-a-number")},
			wantErr: ErrArgType,
		},
		{
			name:    "int into char placeholder",
			format:  "%c",
			args:    []Arg{Int(65)},
			wantErr: ErrArgType,
		},
		{
			name:    "float placeholder rejects int",
			format:  "%f",
			args:    []Arg{Int(1)},
			wantErr: ErrArgType,
		},
		{
			name:    "positional gap",
			format:  "{1}",
			args:    []Arg{Str("only-one")},
			wantErr: ErrBadFormat,
		},
		{
			name:    "reference past supplied arguments",
			format:  "{0} {1}",
			args:    []Arg{Str("just-one")},
			wantErr: ErrMissingArg,
		},
		{
			name:    "percent placeholder without argument",
			format:  "%s %s",
			args:    []Arg{Str("one")},
			wantErr: ErrMissingArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.format, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Format(%q) error = %v, want %v", tt.format, err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("Format(%q) = %q, want empty result on failure", tt.format, got)
			}
		})
	}
}

func TestFormat_PercentCounterSeparateFromPositional(t *testing.T) {
	// %s uses its own left-to-right counter, so it takes argument 0 even
	// though {1} references argument 1 explicitly.
	got, err := Format("%s {1} {0}", Str("zero"), Str("one"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if want := "zero one zero"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_OverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on instruction overflow")
		}
	}()
	long := ""
	for range 40 {
		long += "{0}"
	}
	_, _ = Format(long, Str("x"))
}

func TestFormat_UnknownVerbPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown verb")
		}
	}()
	_, _ = Format("%q", Str("x"))
}
