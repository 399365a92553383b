package templates

import (
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first error so component
// bodies read top to bottom.
//
// TODO: port the components to .templ sources and drop htmlWriter once
// `templ generate` is part of the build.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (h *htmlWriter) intAttr(name string, value int) {
	h.attr(name, strconv.Itoa(value))
}

// open writes a start tag with a class attribute.
func (h *htmlWriter) open(tag, class string) {
	h.raw("<" + tag)
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

// elem writes <tag class>escaped text</tag>.
func (h *htmlWriter) elem(tag, class, text string) {
	h.open(tag, class)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) link(href, class, label string) {
	h.raw("<a")
	h.attr("href", string(templ.URL(href)))
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}
