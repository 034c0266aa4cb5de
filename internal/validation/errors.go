package validation

import (
	"errors"
	"strings"
	"unicode"
)

type finding struct {
	attr string
	msg  string
}

// Errors acumula los hallazgos (atributo, mensaje) de una corrida de
// validación. Es un multimapa ordenado: un atributo puede juntar varios
// mensajes y el orden de inserción se conserva.
//
// Implementa error para que los services puedan devolver el colector tal
// cual; los handlers lo recuperan con ErrorsFrom.
type Errors struct {
	findings []finding
}

func NewErrors() *Errors {
	return &Errors{}
}

func (e *Errors) Add(attr, msg string) {
	e.findings = append(e.findings, finding{attr: attr, msg: msg})
}

// On devuelve los mensajes crudos de un atributo, en orden de ejecución.
func (e *Errors) On(attr string) []string {
	var out []string
	for _, f := range e.findings {
		if f.attr == attr {
			out = append(out, f.msg)
		}
	}
	return out
}

// Messages devuelve atributo => mensajes crudos.
func (e *Errors) Messages() map[string][]string {
	out := make(map[string][]string, len(e.findings))
	for _, f := range e.findings {
		out[f.attr] = append(out[f.attr], f.msg)
	}
	return out
}

// FullMessages devuelve los mensajes humanizados:
// ("name", "can't be blank") => "Name can't be blank".
func (e *Errors) FullMessages() []string {
	out := make([]string, 0, len(e.findings))
	for _, f := range e.findings {
		out = append(out, Humanize(f.attr)+" "+f.msg)
	}
	return out
}

// Count es el total de mensajes, no la cantidad de atributos distintos.
func (e *Errors) Count() int {
	return len(e.findings)
}

func (e *Errors) IsEmpty() bool {
	return e == nil || len(e.findings) == 0
}

func (e *Errors) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.findings))
	for _, f := range e.findings {
		parts = append(parts, f.attr+": "+f.msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrorsFrom extrae el colector de un error (o nil si no es de validación).
func ErrorsFrom(err error) *Errors {
	if err == nil {
		return nil
	}
	var verrs *Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

// Humanize convierte un nombre de atributo en prefijo legible:
// "owner_id" => "Owner id".
func Humanize(attr string) string {
	s := strings.ReplaceAll(attr, "_", " ")
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
