// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Binding describes one trigger, input, or output connection declared for a
// function. The variant set is closed: every implementation lives in this
// package. BindingType is a property of the variant, not of the instance,
// and Direction is fixed by the variant's category.
//
// DictRepr returns the binding's wire form. Key insertion order is the
// serialization order, which golden descriptors depend on, so reprs are
// built on ordered maps rather than plain Go maps.
type Binding interface {
	BindingType() string
	BindingName() string
	Direction() BindingDirection
	DictRepr() *orderedmap.OrderedMap[string, any]
}

// Trigger is the binding that causes the function to execute. A function has
// at most one. The unexported marker keeps the trigger set closed to this
// package.
type Trigger interface {
	Binding
	isTrigger()
}

func newDictRepr(bindingType string, direction BindingDirection, name string) *orderedmap.OrderedMap[string, any] {
	repr := orderedmap.New[string, any]()
	repr.Set("type", bindingType)
	repr.Set("direction", direction)
	repr.Set("name", name)
	return repr
}
