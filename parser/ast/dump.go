package ast

import (
	"strings"
)

// Dump returns an indented tree listing in the html5lib tree-construction
// format: one "| " prefixed line per node, attributes on their own lines one
// level below the tag they belong to.
func Dump(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		dump(&b, n, 1)
	}
	return strings.TrimRight(b.String(), "\n")
}

func indent(depth int) string {
	spaces := "| "
	for i := 1; i < depth; i++ {
		spaces += "  "
	}
	return spaces
}

func dumpLine(b *strings.Builder, depth int, s string) {
	b.WriteString(indent(depth))
	b.WriteString(s)
	b.WriteByte('\n')
}

func dumpKV(b *strings.Builder, depth int, key string, value string, ok bool) {
	if ok {
		dumpLine(b, depth, key+"=\""+value+"\"")
	} else {
		dumpLine(b, depth, key)
	}
}

func dumpAttrs(b *strings.Builder, depth int, attrs []Attr) {
	for _, a := range attrs {
		v, ok := a.Val()
		dumpKV(b, depth, a.Key(), v, ok)
	}
}

func dump(b *strings.Builder, n Node, depth int) {
	switch t := n.(type) {
	case *El:
		dumpLine(b, depth, "<"+t.Name.String()+">")
		dumpAttrs(b, depth+1, t.Attrs)
	case *Void:
		if t.Name == Doctype {
			dumpLine(b, depth, "<!DOCTYPE>")
		} else {
			dumpLine(b, depth, "<"+t.Name.String()+">")
		}
		dumpAttrs(b, depth+1, t.Attrs)
	case *Other:
		dumpLine(b, depth, "<"+t.Name+">")
		dumpAttrs(b, depth+1, t.Attrs)
	case *Component:
		dumpLine(b, depth, "<"+t.Name+">")
		for _, p := range t.Props {
			if p.Value != nil {
				dumpKV(b, depth+1, p.Key, *p.Value, true)
			} else {
				dumpKV(b, depth+1, p.Key, "", false)
			}
		}
	case *Text:
		dumpLine(b, depth, "\""+t.Data+"\"")
	case *Comment:
		dumpLine(b, depth, "<!-- "+t.Data+" -->")
	case *Script:
		dumpLine(b, depth, "<script>")
		if t.Type != nil {
			dumpKV(b, depth+1, "type", *t.Type, true)
		}
		dumpLine(b, depth+1, "\""+t.Body+"\"")
	case *ScriptSrc:
		dumpLine(b, depth, "<script>")
		dumpKV(b, depth+1, "src", t.Src, true)
		if t.Defer {
			dumpKV(b, depth+1, "defer", "", false)
		}
		if t.Async {
			dumpKV(b, depth+1, "async", "", false)
		}
		if t.Type != nil {
			dumpKV(b, depth+1, "type", *t.Type, true)
		}
	case *Style:
		dumpLine(b, depth, "<style>")
		dumpLine(b, depth+1, "\""+t.Body+"\"")
	}
	for _, c := range Children(n) {
		dump(b, c, depth+1)
	}
}
