// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

// Package function implements the declarative side of a function app: user
// callables are annotated with triggers and bindings, and the accumulated
// declarations serialize to the function.json descriptors the host runtime
// reads. Nothing here executes a trigger or performs I/O against the bound
// resources; that is entirely the host's job.
package function

import (
	"encoding/json"
	"reflect"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/funchost/sdk/function/api"
)

// DefaultScriptFile is the scriptFile placeholder used when the app does not
// name one.
const DefaultScriptFile = "dummy"

// Function aggregates the declarations for one user callable: exactly one
// trigger plus zero or more input/output bindings. Binding names are not
// deduplicated; declaring two bindings with the same name produces two
// descriptor entries and the host resolves the collision.
type Function struct {
	target     any
	name       string
	scriptFile string
	trigger    api.Trigger
	bindings   []api.Binding
}

// NewFunction wraps a user callable. An empty scriptFile falls back to
// DefaultScriptFile.
func NewFunction(target any, scriptFile string) *Function {
	if scriptFile == "" {
		scriptFile = DefaultScriptFile
	}
	return &Function{
		target:     target,
		name:       callableName(target),
		scriptFile: scriptFile,
	}
}

// Name is derived from the callable's symbol name and identifies the
// function in the exported descriptor layout and on the metadata server.
// Anonymous functions yield names like "main.func1" suffixes and can
// collide; name your handlers.
func (f *Function) Name() string {
	return f.name
}

// Target returns the wrapped user callable.
func (f *Function) Target() any {
	return f.target
}

// Trigger returns the registered trigger, or nil if none was declared yet.
func (f *Function) Trigger() api.Trigger {
	return f.trigger
}

// Bindings returns the combined sequence of bindings, including the trigger
// once one has been added, in declaration order.
func (f *Function) Bindings() []api.Binding {
	return f.bindings
}

// AddBinding appends a non-trigger binding.
func (f *Function) AddBinding(binding api.Binding) {
	f.bindings = append(f.bindings, binding)
}

// AddTrigger sets the function's trigger. The trigger also joins the
// combined bindings sequence so the descriptor lists it alongside the other
// bindings, in the position it was declared.
func (f *Function) AddTrigger(trigger api.Trigger) error {
	if f.trigger != nil {
		return errors.Wrapf(ErrDuplicateTrigger,
			"function %s already has trigger %s, cannot add %s",
			f.name, f.trigger.BindingType(), trigger.BindingType())
	}
	f.trigger = trigger
	f.bindings = append(f.bindings, trigger)
	return nil
}

// DictRepr returns the descriptor mapping: scriptFile plus the serialized
// bindings in declaration order. The trigger appears wherever it was
// declared, not forced to the front.
func (f *Function) DictRepr() *orderedmap.OrderedMap[string, any] {
	bindings := make([]any, 0, len(f.bindings))
	for _, b := range f.bindings {
		bindings = append(bindings, b.DictRepr())
	}
	repr := orderedmap.New[string, any]()
	repr.Set("scriptFile", f.scriptFile)
	repr.Set("bindings", bindings)
	return repr
}

// FunctionJSON returns the compact UTF-8 JSON form of DictRepr. Key order
// is the insertion order, so the output is byte-reproducible.
func (f *Function) FunctionJSON() ([]byte, error) {
	out, err := json.Marshal(f.DictRepr())
	if err != nil {
		return nil, errors.Wrapf(err, "unable to serialize descriptor for function %s", f.name)
	}
	return out, nil
}

func (f *Function) String() string {
	out, err := f.FunctionJSON()
	if err != nil {
		return err.Error()
	}
	return string(out)
}

// callableName resolves the symbol name of a func value, trimmed to
// package.Symbol form. Method values lose the -fm suffix the runtime
// attaches.
func callableName(target any) string {
	v := reflect.ValueOf(target)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return ""
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
