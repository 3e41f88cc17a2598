package ast

import (
	"strings"
)

// quoteAttr picks a quote character the value does not contain. Values are
// stored as written, so nothing else is escaped. A value holding both quote
// characters is written bare when nothing in it would end an unquoted value.
func quoteAttr(s string) string {
	if !strings.Contains(s, "\"") {
		return "\"" + s + "\""
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if s[0] != '"' && s[0] != '\'' && !strings.ContainsAny(s, " \t\n\r>/") {
		return s
	}
	return "\"" + strings.Replace(s, "\"", "&quot;", -1) + "\""
}

func renderKV(b *strings.Builder, key, value string, ok bool) {
	b.WriteByte(' ')
	b.WriteString(key)
	if ok {
		b.WriteByte('=')
		b.WriteString(quoteAttr(value))
	}
}

func renderAttrs(b *strings.Builder, attrs []Attr) {
	for _, a := range attrs {
		v, ok := a.Val()
		renderKV(b, a.Key(), v, ok)
	}
}

// Render serializes nodes back to markup. Parsing the output yields the same
// tree, apart from whitespace the parser trims and attribute values that hold
// both quote characters along with whitespace, '>' or '/', or that start with
// a quote. Those are written with &quot;, which the parser keeps as text.
func Render(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		render(&b, n)
	}
	return b.String()
}

func renderChildren(b *strings.Builder, children []Node) {
	for _, c := range children {
		render(b, c)
	}
}

func render(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case *El:
		b.WriteString("<" + t.Name.String())
		renderAttrs(b, t.Attrs)
		b.WriteString(">")
		renderChildren(b, t.Children)
		b.WriteString("</" + t.Name.String() + ">")
	case *Void:
		if t.Name == Doctype {
			b.WriteString("<!DOCTYPE html>")
			return
		}
		b.WriteString("<" + t.Name.String())
		renderAttrs(b, t.Attrs)
		b.WriteString(">")
	case *Other:
		b.WriteString("<" + t.Name)
		renderAttrs(b, t.Attrs)
		b.WriteString(">")
		renderChildren(b, t.Children)
		b.WriteString("</" + t.Name + ">")
	case *Component:
		b.WriteString("<" + t.Name)
		for _, p := range t.Props {
			if p.Value != nil {
				renderKV(b, p.Key, *p.Value, true)
			} else {
				renderKV(b, p.Key, "", false)
			}
		}
		b.WriteString(">")
		renderChildren(b, t.Children)
		b.WriteString("</" + t.Name + ">")
	case *Text:
		b.WriteString(t.Data)
	case *Comment:
		b.WriteString("<!--" + t.Data + "-->")
	case *Script:
		b.WriteString("<script")
		if t.Type != nil {
			renderKV(b, "type", *t.Type, true)
		}
		b.WriteString(">" + t.Body + "</script>")
	case *ScriptSrc:
		b.WriteString("<script")
		renderKV(b, "src", t.Src, true)
		if t.Defer {
			renderKV(b, "defer", "", false)
		}
		if t.Async {
			renderKV(b, "async", "", false)
		}
		if t.Type != nil {
			renderKV(b, "type", *t.Type, true)
		}
		b.WriteString("></script>")
	case *Style:
		b.WriteString("<style>" + t.Body + "</style>")
	}
}
