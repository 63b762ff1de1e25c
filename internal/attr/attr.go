// Package attr parses the bitwire struct-tag attribute language into plain
// Go values internal/plan can normalize into a RecordPlan or EnumPlan. The
// grammar is a flat, comma-separated list of directives inside a single
// `bitwire:"..."` tag, modeled on the teacher's preference for small,
// explicit, closed configuration surfaces over free-form expression
// languages (see format.EncodingType's closed constant set).
package attr

import (
	"strconv"
	"strings"

	"github.com/bitwire-go/bitwire/errs"
)

// Field holds the parsed directives from one struct field's `bitwire` tag.
// Exactly one of the strategy-selecting directives (Bits, Flex, Tag, PTag)
// may be set; Parse enforces this.
type Field struct {
	Bits    int // bits=N; 0 means absent
	HasBits bool

	Flex bool // flex

	Tag    Expr // tag=<expr>
	HasTag bool

	PTagType  string // ptag(type:<T>,...)
	PTagValue Expr   // ptag(...,value=<expr>)
	HasPTag   bool

	WriteValue    Expr // wvalue=<expr>
	HasWriteValue bool

	SkipEncode bool // skipenc or skip
	SkipDecode bool // skipdec or skip

	Discriminant    int64 // disc=<literal>
	HasDiscriminant bool
}

// Type holds the parsed directives from a type-level tag string, such as
// one written on a blank sentinel field `_ struct{}`.
type Type struct {
	DiscriminantType string // discriminant_type=<go type name>, enum only
	Bits             int    // bits=N, enum packed discriminant width
	HasBits          bool

	Ctx       string   // ctx=<type name>
	HasCtx    bool
	CtxBounds []string // ctx_bounds(B1|B2|...)
}

// ParseField parses one field's bitwire struct tag. An empty tag returns a
// zero Field with no error: an untagged field uses the plain strategy.
func ParseField(tag string) (Field, error) {
	var f Field

	directives, err := split(tag)
	if err != nil {
		return f, err
	}

	strategySeen := 0

	for _, d := range directives {
		key, val, hasVal := cutDirective(d)

		switch key {
		case "":
			continue
		case "bits":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 || n > 64 {
				return f, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "bits=%q must be an integer in [1, 64]", val)
			}
			f.Bits = n
			f.HasBits = true
			strategySeen++
		case "flex":
			f.Flex = true
			strategySeen++
		case "tag":
			expr, err := ParseExpr(val)
			if err != nil {
				return f, err
			}
			f.Tag = expr
			f.HasTag = true
			strategySeen++
		case "ptag":
			ptagType, ptagValue, err := parsePTag(val)
			if err != nil {
				return f, err
			}
			f.PTagType = ptagType
			f.PTagValue = ptagValue
			f.HasPTag = true
			strategySeen++
		case "wvalue":
			expr, err := ParseExpr(val)
			if err != nil {
				return f, err
			}
			f.WriteValue = expr
			f.HasWriteValue = true
		case "skip":
			f.SkipEncode = true
			f.SkipDecode = true
		case "skipenc":
			f.SkipEncode = true
		case "skipdec":
			f.SkipDecode = true
		case "disc":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return f, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "disc=%q must be an integer literal", val)
			}
			f.Discriminant = n
			f.HasDiscriminant = true
		default:
			if !hasVal {
				return f, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "unknown directive %q", key)
			}

			return f, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "unknown directive %q", key)
		}
	}

	if f.HasPTag && !f.HasWriteValue {
		return f, errs.Wrap(errs.KindOther, errs.ErrMissingWriteValue, "ptag requires wvalue")
	}
	if strategySeen > 1 {
		return f, errs.Wrap(errs.KindOther, errs.ErrStrategyConflict, "bits, flex, tag and ptag are mutually exclusive")
	}

	return f, nil
}

// ParseType parses a type-level bitwire tag (attached to a blank sentinel
// field on a record, or an enum's discriminant metadata).
func ParseType(tag string) (Type, error) {
	var t Type

	directives, err := split(tag)
	if err != nil {
		return t, err
	}

	for _, d := range directives {
		key, val, _ := cutDirective(d)

		switch key {
		case "":
			continue
		case "discriminant_type":
			t.DiscriminantType = val
		case "bits":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 || n > 64 {
				return t, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "bits=%q must be an integer in [1, 64]", val)
			}
			t.Bits = n
			t.HasBits = true
		case "ctx":
			t.Ctx = val
			t.HasCtx = true
		case "ctx_bounds":
			t.CtxBounds = strings.Split(val, "|")
		default:
			return t, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "unknown type directive %q", key)
		}
	}

	return t, nil
}

// split tokenizes a raw tag string into its comma-separated directives,
// respecting nested parens so `ptag(type:u32,value=count)` style compound
// directives (handled by parsePTag) are not split on their own commas.
func split(tag string) ([]string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, nil
	}

	var (
		parts []string
		depth int
		start int
	)

	for i, r := range tag {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "unbalanced parens in tag %q", tag)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, tag[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "unbalanced parens in tag %q", tag)
	}
	parts = append(parts, tag[start:])

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts, nil
}

// cutDirective splits one directive into its key and its raw value, which
// for ptag may itself contain an embedded comma-joined sub-list wrapped in
// parens (e.g. `ptag(type:u32,value=count)`).
func cutDirective(d string) (key, val string, hasVal bool) {
	eq := strings.IndexByte(d, '=')
	if i := strings.Index(d, "("); i >= 0 && (eq < 0 || i < eq) && strings.HasSuffix(d, ")") {
		return d[:i], d[i+1 : len(d)-1], true
	}
	if eq >= 0 {
		return d[:eq], d[eq+1:], true
	}

	return d, "", false
}

// parsePTag parses a ptag directive's inner content, e.g.
// "type:u32,value=Data.Len()". Each sub-directive is matched against its own
// prefix directly (rather than through cutDirective's generic "(" / "="
// splitting), since "value="'s right-hand side is itself an expression that
// legitimately contains parens (e.g. "Data.Len()") and would otherwise be
// mis-cut.
func parsePTag(inner string) (ptagType string, value Expr, err error) {
	for _, sub := range strings.Split(inner, ",") {
		sub = strings.TrimSpace(sub)

		switch {
		case strings.HasPrefix(sub, "type:"):
			ptagType = strings.TrimPrefix(sub, "type:")
		case strings.HasPrefix(sub, "value="):
			value, err = ParseExpr(strings.TrimPrefix(sub, "value="))
			if err != nil {
				return "", Expr{}, err
			}
		default:
			return "", Expr{}, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "malformed ptag directive %q", sub)
		}
	}

	if ptagType == "" {
		return "", Expr{}, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "ptag missing type")
	}

	return ptagType, value, nil
}
