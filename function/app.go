// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package function

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/funchost/sdk/function/api"
)

// App accumulates the Function records for one app script. Declarations are
// applied during the single-threaded startup phase; afterwards the app is
// read-only, so no locking is done here.
type App struct {
	scriptFile string
	functions  []*Function
	// byTarget keys in-progress records by callable identity, so the
	// trigger and bindings of one callable may be declared in any order and
	// interleaved with declarations for other callables.
	byTarget map[uintptr]*Function
}

// A Decoration attaches one trigger or binding declaration to a target. The
// target is either a raw callable or the *Function returned by an earlier
// Decoration for the same callable; both resolve to the same record.
type Decoration func(target any) (*Function, error)

// NewApp creates the registry for one app script. An empty scriptFile falls
// back to DefaultScriptFile.
func NewApp(scriptFile string) *App {
	if scriptFile == "" {
		scriptFile = DefaultScriptFile
	}
	return &App{
		scriptFile: scriptFile,
		byTarget:   make(map[uintptr]*Function),
	}
}

// ScriptFile returns the script file stamped into every descriptor.
func (a *App) ScriptFile() string {
	return a.scriptFile
}

// OnTrigger returns a Decoration that registers the trigger on the target's
// Function record, creating the record on first declaration. At most one
// trigger may be declared per callable.
func (a *App) OnTrigger(trigger api.Trigger) Decoration {
	return func(target any) (*Function, error) {
		f, err := a.resolve(target)
		if err != nil {
			return nil, err
		}
		if err := f.AddTrigger(trigger); err != nil {
			return nil, err
		}
		return f, nil
	}
}

// Binding returns a Decoration that registers a non-trigger binding on the
// target's Function record, creating the record on first declaration.
func (a *App) Binding(binding api.Binding) Decoration {
	return func(target any) (*Function, error) {
		f, err := a.resolve(target)
		if err != nil {
			return nil, err
		}
		f.AddBinding(binding)
		return f, nil
	}
}

// Functions returns the accumulated records in the order each callable was
// first declared.
func (a *App) Functions() []*Function {
	return a.functions
}

// Descriptors serializes every function for export or serving.
func (a *App) Descriptors() ([]api.FunctionDescriptor, error) {
	descriptors := make([]api.FunctionDescriptor, 0, len(a.functions))
	for _, f := range a.functions {
		body, err := f.FunctionJSON()
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, api.FunctionDescriptor{
			FunctionName: f.Name(),
			Descriptor:   body,
		})
	}
	return descriptors, nil
}

func (a *App) resolve(target any) (*Function, error) {
	if f, ok := target.(*Function); ok {
		return f, nil
	}
	v := reflect.ValueOf(target)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, errors.Wrapf(ErrInvalidDecorationTarget, "target of type %T", target)
	}
	key := v.Pointer()
	if f, ok := a.byTarget[key]; ok {
		return f, nil
	}
	f := NewFunction(target, a.scriptFile)
	a.functions = append(a.functions, f)
	a.byTarget[key] = f
	return f, nil
}
