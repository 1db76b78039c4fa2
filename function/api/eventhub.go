// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// EventHubTrigger declares that the function executes when an event arrives
// on the configured event hub connection.
type EventHubTrigger struct {
	Name       string
	Connection string
}

func NewEventHubTrigger(name, connection string) *EventHubTrigger {
	return &EventHubTrigger{
		Name:       name,
		Connection: connection,
	}
}

func (t *EventHubTrigger) BindingType() string {
	return "EventHubTrigger"
}

func (t *EventHubTrigger) BindingName() string {
	return t.Name
}

func (t *EventHubTrigger) Direction() BindingDirection {
	return BindingDirectionIn
}

// DictRepr emits only the connection and name. Unlike every other variant,
// the type and direction keys are absent. Hosts already deployed against
// this form depend on it, so the asymmetry is preserved rather than
// normalized.
func (t *EventHubTrigger) DictRepr() *orderedmap.OrderedMap[string, any] {
	repr := orderedmap.New[string, any]()
	repr.Set("connection", t.Connection)
	repr.Set("name", t.Name)
	return repr
}

func (t *EventHubTrigger) isTrigger() {}
