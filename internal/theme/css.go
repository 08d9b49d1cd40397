package theme

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"text/template"
)

//go:embed css.tmpl
var cssTemplate string

var cssTmpl = template.Must(template.New("theme.css").Parse(cssTemplate))

// DefaultSelector is the CSS selector variables are declared under.
const DefaultSelector = ":root"

// CSSOptions controls stylesheet rendering.
type CSSOptions struct {
	Selector string
	Prefix   string
	Amount   float64
}

type cssData struct {
	Comment   string
	Selector  string
	Variables []Variable
}

// WriteCSS renders vars as a stylesheet block to w.
func WriteCSS(w io.Writer, comment, selector string, vars []Variable) error {
	if selector == "" {
		selector = DefaultSelector
	}

	data := cssData{
		Comment:   comment,
		Selector:  selector,
		Variables: vars,
	}
	if err := cssTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render CSS: %w", err)
	}
	return nil
}

// RenderCSS renders a theme, including derived variants, as a stylesheet.
func RenderCSS(t Theme, opts CSSOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSS(&buf, t.Name, opts.Selector, Variables(t, opts.Prefix, opts.Amount)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSSSink collects published variables and renders them as a stylesheet.
type CSSSink struct {
	*MapSink
	Selector string
	Comment  string
}

// NewCSSSink creates a CSSSink for the given selector.
func NewCSSSink(selector string) *CSSSink {
	return &CSSSink{MapSink: NewMapSink(), Selector: selector}
}

// WriteTo renders the collected variables to w.
func (s *CSSSink) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := WriteCSS(&buf, s.Comment, s.Selector, s.Variables()); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
