// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

// PropertySource is anything an Edge's Properties field can hold.
// Schema inference (spec §3, "Schema inference (serialize-side)")
// needs the *first* key each propertied edge would iterate in; a bare
// Go map cannot promise that, since Go deliberately randomizes map
// iteration order. Properties (a map[string]interface{}) satisfies
// PropertySource but its Range order is unspecified; OrderedProperties
// satisfies it with a caller-controlled, insertion-ordered Range.
//
// Pass a plain Properties map when an edge's key order does not matter
// (every edge except the one that ends up donating the schema, or runs
// where the column list is supplied out of band). Pass an
// *OrderedProperties when this edge might be the first propertied edge
// and the resulting column order matters to the caller.
type PropertySource interface {
	Len() int
	Range(f func(key string, value interface{}))
	Get(key string) (interface{}, bool)
}

// Len implements PropertySource.
func (p Properties) Len() int { return len(p) }

// Range implements PropertySource. Iteration order is the Go runtime's
// randomized map order; use OrderedProperties for a deterministic one.
func (p Properties) Range(f func(key string, value interface{})) {
	for k, v := range p {
		f(k, v)
	}
}

// Get implements PropertySource.
func (p Properties) Get(key string) (interface{}, bool) {
	v, ok := p[key]
	return v, ok
}

// OrderedProperties is an ordered key/value map: Range visits keys in
// the order they were first Set. Use it as an Edge's Properties when
// that edge may be the one schema inference draws its column order
// from.
type OrderedProperties struct {
	keys   []string
	values map[string]interface{}
}

// NewOrderedProperties returns an empty OrderedProperties.
func NewOrderedProperties() *OrderedProperties {
	return &OrderedProperties{values: make(map[string]interface{})}
}

// Set records key=value, appending key to the iteration order the
// first time it is seen. Returns the receiver for chaining.
func (o *OrderedProperties) Set(key string, value interface{}) *OrderedProperties {
	if o.values == nil {
		o.values = make(map[string]interface{})
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Len implements PropertySource.
func (o *OrderedProperties) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Range implements PropertySource, visiting keys in Set order.
func (o *OrderedProperties) Range(f func(key string, value interface{})) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		f(k, o.values[k])
	}
}

// Get implements PropertySource.
func (o *OrderedProperties) Get(key string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the ordered key list. The returned slice must not be
// modified.
func (o *OrderedProperties) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}
