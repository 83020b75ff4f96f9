package schema

import (
	"errors"
	"fmt"

	bicodec "github.com/reoring/bicodec"
	"github.com/reoring/bicodec/decode"
	"github.com/reoring/bicodec/encode"
)

// Variant is one alternative of a discriminated union. It carries the
// pattern (the literal-valued discriminant fields identifying the
// alternative) and the full object schema for the alternative.
type Variant struct {
	pattern map[string]string
	order   []string
	schema  Schema[map[string]any]
}

// Pattern returns a copy of the discriminant pattern, useful when
// documenting a union's dispatch table.
func (v Variant) Pattern() map[string]string {
	out := make(map[string]string, len(v.pattern))
	for k, val := range v.pattern {
		out[k] = val
	}
	return out
}

// Schema returns the variant's full object schema.
func (v Variant) Schema() Schema[map[string]any] { return v.schema }

// ErrNoDiscriminant is returned by VariantBuilder.Build for a variant
// definition containing no literal-valued field.
var ErrNoDiscriminant = errors.New("schema: no discriminant identified")

// VariantBuilder accumulates a variant definition: literal fields form
// the pattern, schema fields carry the payload.
type VariantBuilder struct {
	fields  *ObjectBuilder
	pattern map[string]string
	order   []string
}

// NewVariant creates an empty variant builder.
func NewVariant() *VariantBuilder {
	return &VariantBuilder{fields: Object(), pattern: map[string]string{}}
}

// Literal registers a discriminant field holding exactly the given
// string. At least one literal is required.
func (b *VariantBuilder) Literal(name, value string) *VariantBuilder {
	if _, seen := b.pattern[name]; !seen {
		b.order = append(b.order, name)
	}
	b.pattern[name] = value
	b.fields.Field(name, Of(StringLiteral(value)))
	return b
}

// Field registers a payload field.
func (b *VariantBuilder) Field(name string, f AnySchema) *VariantBuilder {
	b.fields.Field(name, f)
	return b
}

// Build validates the definition and returns the Variant. A definition
// with zero literal fields is a construction-time configuration error.
func (b *VariantBuilder) Build() (Variant, error) {
	if len(b.pattern) == 0 {
		return Variant{}, ErrNoDiscriminant
	}
	pattern := make(map[string]string, len(b.pattern))
	for k, v := range b.pattern {
		pattern[k] = v
	}
	return Variant{
		pattern: pattern,
		order:   append([]string(nil), b.order...),
		schema:  b.fields.Build(),
	}, nil
}

// MustBuild is like Build but panics on error. Variants are built once
// at initialization, so a bad definition should fail loudly.
func (b *VariantBuilder) MustBuild() Variant {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}

// DiscriminatedUnion builds a sum-type schema from tagged variants.
//
// Decoding tries each variant's object schema in declaration order and
// the first success wins; when raw data could structurally satisfy more
// than one variant, the earliest-declared one is chosen, so variant
// order is semantically significant and should be documented per union.
// When every variant fails, the failure aggregates each branch's
// diagnosis.
//
// Encoding scans the variants in the same order and selects the first
// whose pattern matches the value (a non-nil map containing every
// pattern key with the equal literal value), then delegates to that
// variant's encoder. A value matching no pattern panics with
// "Invalid discriminant in union type".
func DiscriminatedUnion(variants ...Variant) Schema[map[string]any] {
	vs := append([]Variant(nil), variants...)

	decoders := make([]decode.Decoder[map[string]any], 0, len(vs))
	for _, v := range vs {
		decoders = append(decoders, v.schema.Decoder)
	}

	enc := encode.OneOf(func(m map[string]any) encode.Encoder[map[string]any] {
		for _, v := range vs {
			if matches(v.pattern, m) {
				return v.schema.Encoder
			}
		}
		panic(&bicodec.EncodeError{Message: "Invalid discriminant in union type"})
	})

	return New(decode.OneOf(decoders...), enc)
}

// matches reports whether the value contains every pattern key with
// the equal literal value.
func matches(pattern map[string]string, m map[string]any) bool {
	if m == nil {
		return false
	}
	for k, want := range pattern {
		got, ok := m[k].(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// DescribeVariant renders a variant's pattern for union documentation,
// e.g. `{type:"success"}`.
func DescribeVariant(v Variant) string {
	s := "{"
	for i, k := range v.order {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%s:%q", k, v.pattern[k])
	}
	return s + "}"
}
