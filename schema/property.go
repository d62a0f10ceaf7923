package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// PropertyType is the inferred relational type of a feature property.
type PropertyType int

const (
	TypeUntyped PropertyType = iota
	TypeString
	TypeInteger
	TypeReal
	TypeComplex
	TypeStringList
	TypeIntegerList
	TypeRealList
)

func (t PropertyType) String() string {
	switch t {
	case TypeUntyped:
		return "Untyped"
	case TypeString:
		return "String"
	case TypeInteger:
		return "Integer"
	case TypeReal:
		return "Real"
	case TypeComplex:
		return "Complex"
	case TypeStringList:
		return "StringList"
	case TypeIntegerList:
		return "IntegerList"
	case TypeRealList:
		return "RealList"
	default:
		return fmt.Sprintf("PropertyType(%d)", int(t))
	}
}

func (t PropertyType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *PropertyType) UnmarshalText(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "Untyped":
		*t = TypeUntyped
	case "String":
		*t = TypeString
	case "Integer":
		*t = TypeInteger
	case "Real":
		*t = TypeReal
	case "Complex":
		*t = TypeComplex
	case "StringList":
		*t = TypeStringList
	case "IntegerList":
		*t = TypeIntegerList
	case "RealList":
		*t = TypeRealList
	default:
		return errors.New("unknown value")
	}
	return nil
}

// IsList reports whether t is one of the list types.
func (t PropertyType) IsList() bool {
	return t == TypeStringList || t == TypeIntegerList || t == TypeRealList
}

// PropertyDefn describes one property of a feature class: its field
// name (unique within the class), the "|"-joined source element path
// it was read from, and its inferred type.
type PropertyDefn struct {
	name       string
	srcElement string
	typ        PropertyType
}

func NewPropertyDefn(name, srcElement string) *PropertyDefn {
	return &PropertyDefn{name: name, srcElement: srcElement, typ: TypeUntyped}
}

func (p *PropertyDefn) Name() string { return p.name }

func (p *PropertyDefn) SrcElement() string { return p.srcElement }

func (p *PropertyDefn) Type() PropertyType { return p.typ }

func (p *PropertyDefn) SetType(t PropertyType) { p.typ = t }

// AnalyseValues widens the property type to cover the given occurrence
// list of one feature's raw values. Widening is monotone: the scalar
// lattice is Integer < Real < String, and a property that has ever
// held more than one occurrence in a feature keeps a list type.
func (p *PropertyDefn) AnalyseValues(values []string) {
	scalar := scalarKind(p.typ)
	for _, v := range values {
		scalar = maxKind(scalar, valueKind(v))
	}
	if len(values) > 1 || p.typ.IsList() {
		p.typ = listType(scalar)
	} else {
		p.typ = scalarType(scalar)
	}
}

type kind int

const (
	kindUntyped kind = iota
	kindInteger
	kindReal
	kindString
)

func maxKind(a, b kind) kind {
	if a > b {
		return a
	}
	return b
}

func valueKind(v string) kind {
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return kindInteger
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return kindReal
	}
	return kindString
}

func scalarKind(t PropertyType) kind {
	switch t {
	case TypeInteger, TypeIntegerList:
		return kindInteger
	case TypeReal, TypeRealList:
		return kindReal
	case TypeString, TypeStringList, TypeComplex:
		return kindString
	}
	return kindUntyped
}

func scalarType(k kind) PropertyType {
	switch k {
	case kindInteger:
		return TypeInteger
	case kindReal:
		return TypeReal
	case kindString:
		return TypeString
	}
	return TypeUntyped
}

func listType(k kind) PropertyType {
	switch k {
	case kindInteger:
		return TypeIntegerList
	case kindReal:
		return TypeRealList
	}
	return TypeStringList
}
