package validation

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
)

// Value es la unión tipada de un atributo: string | number | null.
// Las reglas custom reciben esto en vez de un any, así el caso "variante
// equivocada" se maneja explícito (ok=false) en vez de con type probing.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Null es el valor ausente.
var Null = Value{}

func String(s string) Value  { return Value{kind: KindString, str: s} }
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// StringPtr mapea nil => null (cómodo para campos opcionales del modelo).
func StringPtr(s *string) Value {
	if s == nil {
		return Null
	}
	return String(*s)
}

// NumberPtr mapea nil => null.
func NumberPtr(n *float64) Value {
	if n == nil {
		return Null
	}
	return Number(*n)
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsBlank: null, string vacío o solo espacios.
func (v Value) IsBlank() bool {
	if v.kind == KindNull {
		return true
	}
	return v.kind == KindString && strings.TrimSpace(v.str) == ""
}

// AsString devuelve ok=false si el valor no es string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsNumber devuelve ok=false si el valor no es number.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Raw devuelve la forma string del valor: null => "", number => decimal.
// Es lo que usan format y uniqueness para comparar.
func (v Value) Raw() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}
