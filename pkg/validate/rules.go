package validate

import (
	"fmt"
	"strconv"
	"strings"
)

type kind int

const (
	kindRequired kind = iota
	kindString
	kindInteger
	kindNumeric
	kindMax
	kindMin
	kindExists
)

func (k kind) String() string {
	switch k {
	case kindRequired:
		return "required"
	case kindString:
		return "string"
	case kindInteger:
		return "integer"
	case kindNumeric:
		return "numeric"
	case kindMax:
		return "max"
	case kindMin:
		return "min"
	case kindExists:
		return "exists"
	}
	return "unknown"
}

// rule una restricción individual ya parseada.
type rule struct {
	kind   kind
	limit  int64  // parámetro de max/min
	table  string // tabla de exists
	column string // columna de exists
}

// FieldRules restricciones de un campo en orden de declaración.
// nullable no es una restricción evaluable: marca que la ausencia del valor es válida.
// numeric indica si el campo se declaró integer/numeric (cambia la semántica de max/min).
type FieldRules struct {
	nullable bool
	numeric  bool
	rules    []rule
}

// RuleSet mapa campo -> restricciones. Se construye con MustRules.
type RuleSet map[string]FieldRules

// Messages mensajes personalizados por "campo.restricción" (ej. "name.required").
// Si falta la clave se usa el mensaje por defecto.
type Messages map[string]string

// MustRules parsea declaraciones estilo "required|string|max:255".
// Una declaración malformada es un error de configuración, no de runtime:
// la función entra en pánico para que el arranque falle de inmediato.
func MustRules(decls map[string]string) RuleSet {
	rs := make(RuleSet, len(decls))
	for field, decl := range decls {
		fr, err := parseField(decl)
		if err != nil {
			panic(fmt.Sprintf("validate: regla inválida para %q: %v", field, err))
		}
		rs[field] = fr
	}
	return rs
}

func parseField(decl string) (FieldRules, error) {
	var fr FieldRules
	for _, part := range strings.Split(decl, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			return fr, fmt.Errorf("restricción vacía en %q", decl)
		}
		name, param, _ := strings.Cut(part, ":")
		switch name {
		case "nullable":
			fr.nullable = true
		case "required":
			fr.rules = append(fr.rules, rule{kind: kindRequired})
		case "string":
			fr.rules = append(fr.rules, rule{kind: kindString})
		case "integer":
			fr.numeric = true
			fr.rules = append(fr.rules, rule{kind: kindInteger})
		case "numeric":
			fr.numeric = true
			fr.rules = append(fr.rules, rule{kind: kindNumeric})
		case "max", "min":
			n, err := strconv.ParseInt(param, 10, 64)
			if err != nil {
				return fr, fmt.Errorf("parámetro de %s inválido: %q", name, param)
			}
			k := kindMax
			if name == "min" {
				k = kindMin
			}
			fr.rules = append(fr.rules, rule{kind: k, limit: n})
		case "exists":
			table, column, ok := strings.Cut(param, ",")
			if !ok || table == "" || column == "" {
				return fr, fmt.Errorf("exists requiere tabla y columna: %q", param)
			}
			fr.rules = append(fr.rules, rule{kind: kindExists, table: table, column: column})
		default:
			return fr, fmt.Errorf("restricción desconocida %q", name)
		}
	}
	return fr, nil
}
