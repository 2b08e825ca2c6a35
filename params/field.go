package params

import "fmt"

// Kind selects how a field value is checked.
type Kind int

const (
	KindAny Kind = iota
	KindPrimitive
	KindArray
	KindAmount
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	case KindAmount:
		return "amount"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Primitive type tags.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
)

// Field describes one expected key of a request record. Type is only used
// by KindPrimitive.
type Field struct {
	Name       string
	Kind       Kind
	Type       string
	Obligatory bool
}

func Any(name string) Field {
	return Field{Name: name, Kind: KindAny}
}

func Primitive(name, tag string) Field {
	return Field{Name: name, Kind: KindPrimitive, Type: tag}
}

func String(name string) Field {
	return Primitive(name, TypeString)
}

func Number(name string) Field {
	return Primitive(name, TypeNumber)
}

func Boolean(name string) Field {
	return Primitive(name, TypeBoolean)
}

func Object(name string) Field {
	return Primitive(name, TypeObject)
}

func Array(name string) Field {
	return Field{Name: name, Kind: KindArray}
}

func Amount(name string) Field {
	return Field{Name: name, Kind: KindAmount}
}

// Required returns a copy of f marked obligatory.
func (f Field) Required() Field {
	f.Obligatory = true
	return f
}

// ParseField maps a string type tag to a descriptor: "" is any, "array" and
// "amount" are the special kinds, everything else is a primitive tag.
func ParseField(name, tag string, obligatory bool) Field {
	var f Field
	switch tag {
	case "":
		f = Any(name)
	case "array":
		f = Array(name)
	case "amount":
		f = Amount(name)
	default:
		f = Primitive(name, tag)
	}
	f.Obligatory = obligatory
	return f
}

// TypeName is the tag reported in type mismatch messages.
func (f Field) TypeName() string {
	switch f.Kind {
	case KindArray:
		return "array"
	case KindAmount:
		return TypeString
	case KindPrimitive:
		return f.Type
	}
	return ""
}
