// Package service provides the service definition surface and the
// three-phase lifecycle orchestrator of fireservice.
package service

import (
	"github.com/kpchand/fireservice/errors"
	"github.com/kpchand/fireservice/field"
)

// namedField pairs a declared field with its name; Definition keeps
// them in declaration order.
type namedField struct {
	name  string
	field field.Field
}

// Definition is the immutable, ordered set of declared fields for one
// service type. It is built once, at definition time, and is read-only
// afterwards: any number of concurrent Call invocations may share it.
type Definition struct {
	name   string
	fields []namedField
	index  map[string]field.Field
}

// Builder collects field declarations for a service type. Obtain one
// with Define, chain Field calls in the order fields should validate,
// and finish with Build or MustBuild.
type Builder struct {
	name   string
	fields []namedField
	err    error
}

// Define starts the definition of a named service type.
func Define(name string) *Builder {
	return &Builder{name: name}
}

// Field declares a named field. Declaration order is preserved; it
// drives validation order and error precedence.
func (b *Builder) Field(name string, f field.Field) *Builder {
	if b.err != nil {
		return b
	}
	if name == "" {
		b.err = errors.NewDefinition("service %q: field name must not be empty", b.name)
		return b
	}
	if f == nil {
		b.err = &errors.DefinitionError{
			Message: "service " + b.name + ": field " + name,
			Err:     errors.ErrNilField,
		}
		return b
	}
	for _, existing := range b.fields {
		if existing.name == name {
			b.err = errors.NewDefinition("service %q: duplicate field %q", b.name, name)
			return b
		}
	}
	b.fields = append(b.fields, namedField{name: name, field: f})
	return b
}

// Build finalizes the definition. It fails with a DefinitionError when
// the builder recorded an invalid declaration.
func (b *Builder) Build() (*Definition, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.name == "" {
		return nil, errors.NewDefinition("service name must not be empty")
	}
	def := &Definition{
		name:   b.name,
		fields: make([]namedField, len(b.fields)),
		index:  make(map[string]field.Field, len(b.fields)),
	}
	copy(def.fields, b.fields)
	for _, nf := range def.fields {
		def.index[nf.name] = nf.field
	}
	return def, nil
}

// MustBuild is like Build but panics on error. Intended for
// package-level service definitions where a malformed schema is a
// programming error.
func (b *Builder) MustBuild() *Definition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}

// Name returns the service type name.
func (d *Definition) Name() string { return d.name }

// FieldNames returns the declared field names in declaration order.
func (d *Definition) FieldNames() []string {
	names := make([]string, len(d.fields))
	for i, nf := range d.fields {
		names[i] = nf.name
	}
	return names
}

// Lookup returns the declared field for name, if any.
func (d *Definition) Lookup(name string) (field.Field, bool) {
	f, ok := d.index[name]
	return f, ok
}
