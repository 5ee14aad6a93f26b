package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Input cuerpo crudo de la petición (mapa campo -> valor, sin tipar).
type Input map[string]any

// ExistsChecker colaborador de solo lectura para la restricción exists:tabla,columna.
// Debe considerar únicamente registros no borrados (deleted_at IS NULL).
type ExistsChecker interface {
	ExistsByKey(ctx context.Context, table, column string, value any) (bool, error)
}

// Result resultado tipado de una validación: válido o un mensaje por campo inválido.
// Reemplaza la convención de devolver 0 como "sin error".
type Result struct {
	errs map[string]string
}

// Valid resultado sin errores.
func Valid() Result { return Result{} }

// Invalid resultado con el mapa de errores dado.
func Invalid(errs map[string]string) Result { return Result{errs: errs} }

// OK indica si la entrada pasó todas las restricciones.
func (r Result) OK() bool { return len(r.errs) == 0 }

// Errors mapa campo -> primer mensaje de error. Nil si el resultado es válido.
func (r Result) Errors() map[string]string { return r.errs }

// Validate evalúa la entrada contra el RuleSet. Función pura salvo las
// consultas de exists a través del ExistsChecker.
//
// Cada campo se evalúa de forma independiente (el reporte cubre todos los
// campos inválidos en una sola pasada), pero dentro de un campo la evaluación
// se detiene en la primera restricción que falla: exactamente un mensaje por
// campo inválido.
//
// El error de retorno es solo para fallos de infraestructura en las consultas
// exists; nunca representa una entrada inválida.
func Validate(ctx context.Context, in Input, rules RuleSet, msgs Messages, db ExistsChecker) (Result, error) {
	var errs map[string]string

	// Orden estable de campos para que las consultas exists sean deterministas.
	fields := make([]string, 0, len(rules))
	for f := range rules {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, field := range fields {
		fr := rules[field]
		value, ok := in[field]
		if fr.nullable && (!ok || value == nil) {
			continue
		}
		msg, err := checkField(ctx, field, value, present(value, ok), fr, msgs, db)
		if err != nil {
			return Result{}, err
		}
		if msg != "" {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs[field] = msg
		}
	}
	if errs != nil {
		return Invalid(errs), nil
	}
	return Valid(), nil
}

// checkField evalúa las restricciones de un campo en orden y devuelve el
// primer mensaje de fallo, o cadena vacía si todas pasan.
func checkField(ctx context.Context, field string, value any, present bool, fr FieldRules, msgs Messages, db ExistsChecker) (string, error) {
	for _, r := range fr.rules {
		switch r.kind {
		case kindRequired:
			if !present {
				return message(field, r, fr, msgs), nil
			}
		case kindString:
			if _, ok := value.(string); !ok {
				return message(field, r, fr, msgs), nil
			}
		case kindInteger:
			if !isInteger(value) {
				return message(field, r, fr, msgs), nil
			}
		case kindNumeric:
			if _, ok := asNumber(value); !ok {
				return message(field, r, fr, msgs), nil
			}
		case kindMax:
			if !withinMax(value, r.limit, fr.numeric) {
				return message(field, r, fr, msgs), nil
			}
		case kindMin:
			if !withinMin(value, r.limit) {
				return message(field, r, fr, msgs), nil
			}
		case kindExists:
			if db == nil {
				return "", fmt.Errorf("validate: regla exists sin ExistsChecker para %q", field)
			}
			found, err := db.ExistsByKey(ctx, r.table, r.column, value)
			if err != nil {
				return "", fmt.Errorf("validate: consulta exists %s.%s: %w", r.table, r.column, err)
			}
			if !found {
				return message(field, r, fr, msgs), nil
			}
		}
	}
	return "", nil
}

// present semántica de "required": la clave existe, no es nil y no es cadena vacía.
func present(value any, ok bool) bool {
	if !ok || value == nil {
		return false
	}
	if s, isStr := value.(string); isStr && strings.TrimSpace(s) == "" {
		return false
	}
	return true
}

// asNumber acepta los tipos numéricos que entrega encoding/json más cadenas numéricas.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// isInteger número con valor entero (JSON entrega float64, se admite "12" por compatibilidad).
func isInteger(value any) bool {
	f, ok := asNumber(value)
	if !ok {
		return false
	}
	return f == math.Trunc(f)
}

// withinMax para campos numéricos acota la magnitud; para cadenas, el largo en runas.
func withinMax(value any, limit int64, numeric bool) bool {
	if numeric {
		f, ok := asNumber(value)
		return ok && f <= float64(limit)
	}
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s) <= int(limit)
	}
	if f, ok := asNumber(value); ok {
		return f <= float64(limit)
	}
	return false
}

func withinMin(value any, limit int64) bool {
	f, ok := asNumber(value)
	return ok && f >= float64(limit)
}

// message resuelve el mensaje personalizado "campo.restricción" o cae al
// mensaje por defecto de la restricción.
func message(field string, r rule, fr FieldRules, msgs Messages) string {
	if m, ok := msgs[field+"."+r.kind.String()]; ok {
		return m
	}
	return defaultMessage(field, r, fr.numeric)
}

func defaultMessage(field string, r rule, numeric bool) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch r.kind {
	case kindRequired:
		return fmt.Sprintf("The %s field is required.", label)
	case kindString:
		return fmt.Sprintf("The %s must be a string.", label)
	case kindInteger:
		return fmt.Sprintf("The %s must be an integer.", label)
	case kindNumeric:
		return fmt.Sprintf("The %s must be a number.", label)
	case kindMax:
		if numeric {
			return fmt.Sprintf("The %s may not be greater than %d.", label, r.limit)
		}
		return fmt.Sprintf("The %s may not be greater than %d characters.", label, r.limit)
	case kindMin:
		return fmt.Sprintf("The %s must be at least %d.", label, r.limit)
	case kindExists:
		return fmt.Sprintf("The selected %s is invalid.", label)
	}
	return fmt.Sprintf("The %s is invalid.", label)
}
