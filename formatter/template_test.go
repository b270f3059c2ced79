package formatter

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/philipp01105/ulog/core"
)

func TestCompile_RoundTrip(t *testing.T) {
	tmpl, err := Compile("&(time)% - &(level)% - &(name)% - &(msg)%")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	want := []FieldKind{FieldTime, FieldLevel, FieldName, FieldMessage}
	if got := tmpl.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields() = %v, want %v", got, want)
	}

	got := tmpl.RenderString([]string{"T", core.InfoLevel.String(), "app", "hi"})
	if got != "T - INFO - app - hi\n" {
		t.Errorf("RenderString() = %q", got)
	}
}

func TestCompile_FieldCount(t *testing.T) {
	tests := []struct {
		format string
		want   int
	}{
		{"", 0},
		{"plain text", 0},
		{"&(msg)%", 1},
		{"&(msg)%&(msg)%", 2},
		{"&(bogus)% - &(msg)%", 1},
		{"&()% &(LEVEL)% &(level)%", 1},
		{"&(time)% &(level)% &(name)% &(fnname)% &(msg)%", 5},
		{"&(x&(msg)%", 0},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			tmpl, err := Compile(tt.format)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.format, err)
			}
			if got := tmpl.NumFields(); got != tt.want {
				t.Errorf("NumFields() = %d, want %d", got, tt.want)
			}
			if got := strings.Count(tmpl.Skeleton(), "%s"); got != tt.want {
				t.Errorf("Skeleton() has %d markers, want %d", got, tt.want)
			}
		})
	}
}

func TestCompile_Unterminated(t *testing.T) {
	for _, format := range []string{"&(msg) no close", "&(msg", "ok &(level)% then &(", "&(time)%&(msg)"} {
		t.Run(format, func(t *testing.T) {
			tmpl, err := Compile(format)
			if !errors.Is(err, core.ErrMalformedTemplate) {
				t.Fatalf("Compile(%q) error = %v, want ErrMalformedTemplate", format, err)
			}
			if tmpl != nil {
				t.Error("Compile returned a template alongside an error")
			}
		})
	}

	_, err := Compile("ab&(level)%cd&(msg")
	var te *core.TemplateError
	if !errors.As(err, &te) {
		t.Fatalf("expected *core.TemplateError, got %T", err)
	}
	if te.Offset != 13 {
		t.Errorf("Offset = %d, want 13", te.Offset)
	}
}

func TestCompile_UnknownPlaceholderPreserved(t *testing.T) {
	tmpl, err := Compile("&(bogus)% - &(msg)%")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got := tmpl.RenderString([]string{"hello"}); got != "&(bogus)% - hello\n" {
		t.Errorf("RenderString() = %q", got)
	}
}

func TestCompile_TrailingNewline(t *testing.T) {
	tests := []struct{ format, want string }{
		{"&(msg)%", "x\n"},
		{"&(msg)%\n", "x\n"},
		{"&(msg)%\n\n", "x\n\n"},
	}
	for _, tt := range tests {
		tmpl := MustCompile(tt.format)
		if got := tmpl.RenderString([]string{"x"}); got != tt.want {
			t.Errorf("format %q rendered %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestTemplate_SkeletonMatchesSprintf(t *testing.T) {
	tmpl := MustCompile("100% [&(level)%] &(bogus)% &(msg)%")
	values := []string{"WARN", "disk at 90%"}

	skel := tmpl.Skeleton()
	if !strings.HasSuffix(skel, "\n") {
		t.Errorf("Skeleton() = %q, want trailing newline", skel)
	}
	if got, want := fmt.Sprintf(skel, "WARN", "disk at 90%"), tmpl.RenderString(values); got != want {
		t.Errorf("Sprintf(Skeleton) = %q, Render = %q", got, want)
	}
}

func TestTemplate_RenderAppends(t *testing.T) {
	tmpl := MustCompile("<&(msg)%>")
	dst := []byte("prefix ")
	dst = tmpl.Render(dst, []string{"a"})
	if string(dst) != "prefix <a>\n" {
		t.Errorf("Render() = %q", dst)
	}
}

func TestTemplate_RenderPanicsOnWrongArity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Render with too few values did not panic")
		}
	}()
	MustCompile("&(level)% &(msg)%").Render(nil, []string{"only one"})
}

func TestTemplate_Has(t *testing.T) {
	tmpl := MustCompile("&(level)% &(msg)%")
	if !tmpl.Has(FieldMessage) || tmpl.Has(FieldTime) {
		t.Error("Has() reported wrong membership")
	}
}

func TestTemplate_FieldsIsACopy(t *testing.T) {
	tmpl := MustCompile("&(level)%")
	f := tmpl.Fields()
	f[0] = FieldMessage
	if tmpl.Fields()[0] != FieldLevel {
		t.Error("mutating Fields() result changed the template")
	}
}

func TestFieldKind_Placeholder(t *testing.T) {
	if got := FieldFunction.Placeholder(); got != "&(fnname)%" {
		t.Errorf("Placeholder() = %q", got)
	}
}

func BenchmarkCompile(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Compile("&(time)% - &(level)% - &(name)% - &(fnname)% - &(msg)%")
	}
}

func BenchmarkRender(b *testing.B) {
	tmpl := MustCompile("&(time)% - &(level)% - &(name)% - &(msg)%")
	values := []string{"1700000000", "INFO", "app", "test message"}
	buf := make([]byte, 0, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = tmpl.Render(buf[:0], values)
	}
}
