package store

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Patch accumulates attribute assignments for an UpdateItem call. Assignments
// keep insertion order, and every attribute is bound through a #name/:name
// placeholder pair so attribute names never appear literally in the
// expression text.
//
// A field is assigned only when the caller supplied a value and that value is
// non-empty: nil pointers mean "leave untouched", and empty strings are
// dropped as a guard against accidentally blanking an attribute.
type Patch struct {
	fields []string
	values map[string]types.AttributeValue
}

// NewPatch returns an empty patch.
func NewPatch() *Patch {
	return &Patch{values: make(map[string]types.AttributeValue)}
}

// SetString records an assignment of value to the named attribute. Nil and
// empty values are skipped.
func (p *Patch) SetString(name string, value *string) *Patch {
	if value == nil || *value == "" {
		return p
	}
	p.fields = append(p.fields, name)
	p.values[":"+name] = &types.AttributeValueMemberS{Value: *value}
	return p
}

// IsEmpty reports whether no assignment survived. Callers must not send an
// empty patch to the store; an update expression with no clauses is rejected.
func (p *Patch) IsEmpty() bool {
	return len(p.fields) == 0
}

// Expression renders the SET clause, one assignment per recorded field in
// insertion order: "SET #a = :a, #b = :b".
func (p *Patch) Expression() string {
	var b strings.Builder
	b.WriteString("SET ")
	for i, f := range p.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("#")
		b.WriteString(f)
		b.WriteString(" = :")
		b.WriteString(f)
	}
	return b.String()
}

// Names returns the ExpressionAttributeNames binding for the SET clause.
func (p *Patch) Names() map[string]string {
	names := make(map[string]string, len(p.fields))
	for _, f := range p.fields {
		names["#"+f] = f
	}
	return names
}

// Values returns the ExpressionAttributeValues binding for the SET clause.
func (p *Patch) Values() map[string]types.AttributeValue {
	return p.values
}
