// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package function

import (
	"github.com/cockroachdb/errors"
)

// These are programmer-error conditions detected while declarations are
// applied, before any descriptor is exported. They are surfaced immediately
// so a broken app fails at startup rather than at the host.
var (
	// ErrDuplicateTrigger is returned when a second trigger is attached to a
	// function that already has one. A function has exactly one trigger.
	ErrDuplicateTrigger = errors.New("a trigger is already registered to this function")

	// ErrInvalidDecorationTarget is returned when a declaration is applied to
	// a value that is neither an existing Function record nor a callable.
	ErrInvalidDecorationTarget = errors.New("declaration target is neither a Function nor a callable")
)
