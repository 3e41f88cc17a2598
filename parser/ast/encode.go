package ast

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Encoded is the tagged, serializable form of a Node.
type Encoded struct {
	Type     string        `json:"type" yaml:"type"`
	Name     string        `json:"name,omitempty" yaml:"name,omitempty"`
	Attrs    []EncodedAttr `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text     string        `json:"text,omitempty" yaml:"text,omitempty"`
	Src      string        `json:"src,omitempty" yaml:"src,omitempty"`
	Defer    bool          `json:"defer,omitempty" yaml:"defer,omitempty"`
	Async    bool          `json:"async,omitempty" yaml:"async,omitempty"`
	Children []Encoded     `json:"children,omitempty" yaml:"children,omitempty"`
}

// EncodedAttr is an attribute or component prop. Kind is one of "id",
// "class", "onclick", "href", "other" or "prop".
type EncodedAttr struct {
	Kind  string  `json:"kind" yaml:"kind"`
	Name  string  `json:"name" yaml:"name"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Encode converts nodes to their serializable form.
func Encode(nodes []Node) []Encoded {
	out := make([]Encoded, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, encode(n))
	}
	return out
}

func encodeAttrs(attrs []Attr) []EncodedAttr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]EncodedAttr, 0, len(attrs))
	for _, a := range attrs {
		e := EncodedAttr{Name: a.Key()}
		switch t := a.(type) {
		case ID:
			e.Kind = "id"
		case Class:
			e.Kind = "class"
		case OnClick:
			e.Kind = "onclick"
		case Href:
			e.Kind = "href"
		case OtherAttr:
			e.Kind = "other"
			e.Value = t.Value
			out = append(out, e)
			continue
		}
		v, _ := a.Val()
		e.Value = &v
		out = append(out, e)
	}
	return out
}

func encodeChildren(children []Node) []Encoded {
	if len(children) == 0 {
		return nil
	}
	return Encode(children)
}

func encode(n Node) Encoded {
	switch t := n.(type) {
	case *El:
		return Encoded{Type: "el", Name: t.Name.String(), Attrs: encodeAttrs(t.Attrs), Children: encodeChildren(t.Children)}
	case *Void:
		return Encoded{Type: "void", Name: t.Name.String(), Attrs: encodeAttrs(t.Attrs)}
	case *Other:
		return Encoded{Type: "other", Name: t.Name, Attrs: encodeAttrs(t.Attrs), Children: encodeChildren(t.Children)}
	case *Component:
		var props []EncodedAttr
		for _, p := range t.Props {
			props = append(props, EncodedAttr{Kind: "prop", Name: p.Key, Value: p.Value})
		}
		return Encoded{Type: "component", Name: t.Name, Attrs: props, Children: encodeChildren(t.Children)}
	case *Text:
		return Encoded{Type: "text", Text: t.Data}
	case *Comment:
		return Encoded{Type: "comment", Text: t.Data}
	case *Script:
		e := Encoded{Type: "script", Text: t.Body}
		if t.Type != nil {
			e.Attrs = []EncodedAttr{{Kind: "other", Name: "type", Value: t.Type}}
		}
		return e
	case *ScriptSrc:
		e := Encoded{Type: "script-src", Src: t.Src, Defer: t.Defer, Async: t.Async}
		if t.Type != nil {
			e.Attrs = []EncodedAttr{{Kind: "other", Name: "type", Value: t.Type}}
		}
		return e
	case *Style:
		return Encoded{Type: "style", Text: t.Body}
	}
	return Encoded{Type: "unknown"}
}

// JSON encodes nodes as an indented JSON array.
func JSON(nodes []Node) ([]byte, error) {
	return json.MarshalIndent(Encode(nodes), "", "  ")
}

// YAML encodes nodes as a YAML sequence.
func YAML(nodes []Node) ([]byte, error) {
	return yaml.Marshal(Encode(nodes))
}
