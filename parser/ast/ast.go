// Package ast holds the tree produced by the parser.
//
// Every node exclusively owns its attributes and children. The tree is built
// bottom-up in one pass and is not mutated afterwards.
package ast

// Node is one parsed construct.
type Node interface {
	node()
}

// Tag is a Node produced by an HTML tag: *El, *Void or *Other.
type Tag interface {
	Node
	TagName() string
	Attributes() []Attr
}

// El is a recognized element that may carry children.
type El struct {
	Name     ElementName
	Attrs    []Attr
	Children []Node
}

// Void is a recognized element that never carries children.
type Void struct {
	Name  VoidName
	Attrs []Attr
}

// Other is a tag whose name is not in the element or void enumerations.
type Other struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// Text is character data between tags, trailing whitespace trimmed.
type Text struct {
	Data string
}

// Component is a tag whose name starts with an uppercase ASCII letter.
type Component struct {
	Name     string
	Props    []Prop
	Children []Node
}

// Prop is a component property. Value is nil for a valueless prop.
type Prop struct {
	Key   string
	Value *string
}

// Script is an inline script.
type Script struct {
	Body string
	Type *string
}

// ScriptSrc is a script that references an external source.
type ScriptSrc struct {
	Src   string
	Defer bool
	Async bool
	Type  *string
}

// Style is an inline stylesheet.
type Style struct {
	Body string
}

// Comment is the text between <!-- and -->.
type Comment struct {
	Data string
}

func (*El) node()        {}
func (*Void) node()      {}
func (*Other) node()     {}
func (*Text) node()      {}
func (*Component) node() {}
func (*Script) node()    {}
func (*ScriptSrc) node() {}
func (*Style) node()     {}
func (*Comment) node()   {}

func (e *El) TagName() string       { return e.Name.String() }
func (e *El) Attributes() []Attr    { return e.Attrs }
func (v *Void) TagName() string     { return v.Name.String() }
func (v *Void) Attributes() []Attr  { return v.Attrs }
func (o *Other) TagName() string    { return o.Name }
func (o *Other) Attributes() []Attr { return o.Attrs }

// Str returns a pointer to s, for optional values.
func Str(s string) *string {
	return &s
}

// Children returns the child nodes of n, or nil for leaf nodes.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *El:
		return t.Children
	case *Other:
		return t.Children
	case *Component:
		return t.Children
	}
	return nil
}
