package ast

// ElementName identifies a recognized element that may have children.
type ElementName uint8

const (
	Div ElementName = iota
	A
	H1
	H2
	P
	H3
	H4
	Html
	Head
	Title
	Body
	Form
	Select
	Option
	Ul
	Ol
	Li
	Table
	Tr
	Td
	Th
	Em
	B
	I
	Header
	Footer
	Article
	Aside
	Main
	Small
	U
	H5
	H6
	Nav
	numElements
)

var elementNames = [numElements]string{
	Div:     "div",
	A:       "a",
	H1:      "h1",
	H2:      "h2",
	P:       "p",
	H3:      "h3",
	H4:      "h4",
	Html:    "html",
	Head:    "head",
	Title:   "title",
	Body:    "body",
	Form:    "form",
	Select:  "select",
	Option:  "option",
	Ul:      "ul",
	Ol:      "ol",
	Li:      "li",
	Table:   "table",
	Tr:      "tr",
	Td:      "td",
	Th:      "th",
	Em:      "em",
	B:       "b",
	I:       "i",
	Header:  "header",
	Footer:  "footer",
	Article: "article",
	Aside:   "aside",
	Main:    "main",
	Small:   "small",
	U:       "u",
	H5:      "h5",
	H6:      "h6",
	Nav:     "nav",
}

func (e ElementName) String() string {
	if e < numElements {
		return elementNames[e]
	}
	return "unknown"
}

// Elements lists every ElementName in declaration order.
func Elements() []ElementName {
	out := make([]ElementName, numElements)
	for i := range out {
		out[i] = ElementName(i)
	}
	return out
}

// VoidName identifies a recognized element that never has children.
type VoidName uint8

const (
	Img VoidName = iota
	Input
	Br
	Link
	Meta
	// Doctype is produced by a leading <!...> declaration only.
	Doctype
	Source
	Embed
	Param
	Command
	Keygen
	Hr
	Area
	Base
	Col
	Track
	Wbr
	numVoids
)

var voidNames = [numVoids]string{
	Img:     "img",
	Input:   "input",
	Br:      "br",
	Link:    "link",
	Meta:    "meta",
	Doctype: "doctype",
	Source:  "source",
	Embed:   "embed",
	Param:   "param",
	Command: "command",
	Keygen:  "keygen",
	Hr:      "hr",
	Area:    "area",
	Base:    "base",
	Col:     "col",
	Track:   "track",
	Wbr:     "wbr",
}

func (v VoidName) String() string {
	if v < numVoids {
		return voidNames[v]
	}
	return "unknown"
}

// Voids lists every VoidName that can be written as a tag, which excludes Doctype.
func Voids() []VoidName {
	out := make([]VoidName, 0, numVoids-1)
	for i := VoidName(0); i < numVoids; i++ {
		if i != Doctype {
			out = append(out, i)
		}
	}
	return out
}
