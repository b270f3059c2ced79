package formatter

import (
	"strconv"
	"strings"

	"github.com/philipp01105/ulog/core"
)

// FieldKind identifies the value substituted for one placeholder
type FieldKind uint8

const (
	// FieldLevel is &(level)%
	FieldLevel FieldKind = iota
	// FieldMessage is &(msg)%
	FieldMessage
	// FieldTime is &(time)%
	FieldTime
	// FieldName is &(name)%, the logger name
	FieldName
	// FieldFunction is &(fnname)%
	FieldFunction
)

const (
	openToken  = "&("
	closeToken = ")%"
)

var fieldNames = [...]string{
	FieldLevel:    "level",
	FieldMessage:  "msg",
	FieldTime:     "time",
	FieldName:     "name",
	FieldFunction: "fnname",
}

// String returns the placeholder name of the field
func (k FieldKind) String() string {
	if int(k) < len(fieldNames) {
		return fieldNames[k]
	}
	return "field(" + strconv.Itoa(int(k)) + ")"
}

// Placeholder returns the literal token for the field, e.g. "&(msg)%"
func (k FieldKind) Placeholder() string {
	return openToken + k.String() + closeToken
}

func lookupField(name string) (FieldKind, bool) {
	for k, n := range fieldNames {
		if n == name {
			return FieldKind(k), true
		}
	}
	return 0, false
}

// Template is a compiled format string. It is immutable and may be
// rendered from multiple goroutines.
type Template struct {
	format string
	fields []FieldKind
	// literals holds the text around each recognized placeholder;
	// len(literals) == len(fields)+1 and the last one ends in '\n'.
	literals []string
	size     int
}

// Compile parses a format string in a single left-to-right scan.
//
// Each "&(NAME)%" token with a known NAME becomes a field. Unknown names
// are consumed by the scan but left verbatim in the output. An "&(" with
// no following ")%" fails with a *core.TemplateError.
func Compile(format string) (*Template, error) {
	t := &Template{format: format}

	idx, last := 0, 0
	for {
		open := strings.Index(format[idx:], openToken)
		if open < 0 {
			break
		}
		open += idx

		end := strings.Index(format[open+len(openToken):], closeToken)
		if end < 0 {
			return nil, &core.TemplateError{Format: format, Offset: open}
		}
		end += open + len(openToken)

		name := format[open+len(openToken) : end]
		idx = end + len(closeToken)

		kind, ok := lookupField(name)
		if !ok {
			continue
		}
		t.literals = append(t.literals, format[last:open])
		t.fields = append(t.fields, kind)
		last = idx
	}

	tail := format[last:]
	if !strings.HasSuffix(format, "\n") {
		tail += "\n"
	}
	t.literals = append(t.literals, tail)

	for _, l := range t.literals {
		t.size += len(l)
	}
	return t, nil
}

// MustCompile is like Compile but panics on a malformed format string.
func MustCompile(format string) *Template {
	t, err := Compile(format)
	if err != nil {
		panic(err)
	}
	return t
}

// Format returns the source format string
func (t *Template) Format() string {
	return t.format
}

// Fields returns the placeholder fields in substitution order.
func (t *Template) Fields() []FieldKind {
	out := make([]FieldKind, len(t.fields))
	copy(out, t.fields)
	return out
}

// NumFields returns how many values Render requires
func (t *Template) NumFields() int {
	return len(t.fields)
}

// Has reports whether the template contains the field at least once
func (t *Template) Has(kind FieldKind) bool {
	for _, k := range t.fields {
		if k == kind {
			return true
		}
	}
	return false
}

// Skeleton returns the template as a fmt format string: every recognized
// placeholder is a %s verb and literal percent signs are escaped, so
// fmt.Sprintf(t.Skeleton(), values...) equals Render(nil, values).
func (t *Template) Skeleton() string {
	var b strings.Builder
	b.Grow(t.size + 2*len(t.fields))
	for i, l := range t.literals {
		if i > 0 {
			b.WriteString("%s")
		}
		b.WriteString(strings.ReplaceAll(l, "%", "%%"))
	}
	return b.String()
}

// Render appends the rendered line to dst and returns the extended slice.
// values must hold exactly one entry per field, in Fields order.
func (t *Template) Render(dst []byte, values []string) []byte {
	if len(values) != len(t.fields) {
		panic("formatter: Render called with " + strconv.Itoa(len(values)) +
			" values for " + strconv.Itoa(len(t.fields)) + " fields")
	}
	dst = append(dst, t.literals[0]...)
	for i, v := range values {
		dst = append(dst, v...)
		dst = append(dst, t.literals[i+1]...)
	}
	return dst
}

// RenderString is Render into a fresh string
func (t *Template) RenderString(values []string) string {
	n := t.size
	for _, v := range values {
		n += len(v)
	}
	return string(t.Render(make([]byte, 0, n), values))
}
