package gwt

import (
	"encoding/json"
	"strings"
)

const (
	STRING_OBJECT  = "java.lang.String"
	INTEGER_OBJECT = "java.lang.Integer"
	DOUBLE_OBJECT  = "java.lang.Double"
	FLOAT_OBJECT   = "java.lang.Float"
	BYTE_OBJECT    = "java.lang.Byte"
	BOOLEAN_OBJECT = "java.lang.Boolean"
	SHORT_OBJECT   = "java.lang.Short"
	CHAR_OBJECT    = "java.lang.Char"
	LONG_OBJECT    = "java.lang.Long"
)

const (
	LONG    = "J"
	DOUBLE  = "D"
	FLOAT   = "F"
	INT     = "I"
	BYTE    = "B"
	SHORT   = "S"
	BOOLEAN = "Z"
	CHAR    = "C"
)

const (
	ARRAYLIST  = "java.util.ArrayList"
	LINKEDLIST = "java.util.LinkedList"
	VECTOR     = "java.util.Vector"
)

func isOneOf(tag string, tags ...string) bool {
	for _, t := range tags {
		if tag == t {
			return true
		}
	}
	return false
}

func isBoolean(tag string) bool {
	return isOneOf(tag, BOOLEAN, BOOLEAN_OBJECT)
}

func isFloat(tag string) bool {
	return isOneOf(tag, FLOAT, DOUBLE, FLOAT_OBJECT, DOUBLE_OBJECT)
}

func isInteger(tag string) bool {
	return isOneOf(tag, INT, CHAR, BYTE, SHORT,
		INTEGER_OBJECT, CHAR_OBJECT, BYTE_OBJECT, SHORT_OBJECT)
}

func isCollection(tag string) bool {
	return isOneOf(tag, ARRAYLIST, LINKEDLIST, VECTOR)
}

//	primitives and their wrappers travel as a single already-decoded item
func isPrimitive(tag string) bool {
	return isOneOf(tag, INT, DOUBLE, FLOAT, BYTE, BOOLEAN, SHORT, CHAR,
		STRING_OBJECT, INTEGER_OBJECT, DOUBLE_OBJECT, FLOAT_OBJECT,
		BYTE_OBJECT, BOOLEAN_OBJECT, SHORT_OBJECT, CHAR_OBJECT)
}

//	typePrefix strips the "/<suffix>" some type tags carry.
func typePrefix(tag string) string {
	if i := strings.IndexByte(tag, '/'); i >= 0 {
		return tag[:i]
	}
	return tag
}

type Kind int

const (
	SCALAR Kind = iota
	COMPOSITE
)

//	Parameter is either a SCALAR holding an int64, float64, bool or string
//	Value, or a COMPOSITE holding Children (object fields or collection
//	elements).
type Parameter struct {
	Type     string
	Kind     Kind
	Value    interface{}
	Children []Parameter
}

func NewScalar(gwtType string, value interface{}) Parameter {
	return Parameter{Type: gwtType, Kind: SCALAR, Value: value}
}

func NewComposite(gwtType string, children []Parameter) Parameter {
	if children == nil {
		children = []Parameter{}
	}
	return Parameter{Type: gwtType, Kind: COMPOSITE, Children: children}
}

//	ToMap keys the parameter by its type tag: {tag: value} for scalars and
//	{tag: [child maps...]} for composites.
func (p Parameter) ToMap() map[string]interface{} {
	if p.Kind == SCALAR {
		return map[string]interface{}{p.Type: p.Value}
	}
	children := make([]interface{}, 0, len(p.Children))
	for _, child := range p.Children {
		children = append(children, child.ToMap())
	}
	return map[string]interface{}{p.Type: children}
}

func (p Parameter) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToMap())
}
