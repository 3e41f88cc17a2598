package ast

// Attr is a parsed tag attribute. The four common attributes get their own
// types and always carry a value; everything else is an OtherAttr.
type Attr interface {
	// Key is the attribute name as written.
	Key() string
	// Val returns the value and whether one was present.
	Val() (string, bool)
}

// ID is the id attribute.
type ID string

// Class is the raw, unsplit class attribute.
type Class string

// OnClick is the onclick attribute.
type OnClick string

// Href is the href attribute.
type Href string

// OtherAttr is any other attribute. Value is nil for a boolean attribute.
type OtherAttr struct {
	Name  string
	Value *string
}

func (ID) Key() string      { return "id" }
func (Class) Key() string   { return "class" }
func (OnClick) Key() string { return "onclick" }
func (Href) Key() string    { return "href" }

func (a ID) Val() (string, bool)      { return string(a), true }
func (a Class) Val() (string, bool)   { return string(a), true }
func (a OnClick) Val() (string, bool) { return string(a), true }
func (a Href) Val() (string, bool)    { return string(a), true }

func (a OtherAttr) Key() string { return a.Name }

func (a OtherAttr) Val() (string, bool) {
	if a.Value == nil {
		return "", false
	}
	return *a.Value, true
}

// Attribute returns an OtherAttr carrying value.
func Attribute(name, value string) OtherAttr {
	return OtherAttr{Name: name, Value: &value}
}

// BoolAttr returns a valueless OtherAttr.
func BoolAttr(name string) OtherAttr {
	return OtherAttr{Name: name}
}

// Lookup returns the value of the first attribute named key.
func Lookup(attrs []Attr, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key() == key {
			return a.Val()
		}
	}
	return "", false
}
