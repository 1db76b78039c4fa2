// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// The three blob variants share the same descriptor fields; only the type
// tag and direction differ. Connection names a host-side connection
// setting, path is the container/blob path pattern.

func blobDictRepr(bindingType string, direction BindingDirection, name string, dataType DataType, path, connection string) *orderedmap.OrderedMap[string, any] {
	repr := newDictRepr(bindingType, direction, name)
	repr.Set("dataType", dataType)
	repr.Set("path", path)
	repr.Set("connection", connection)
	return repr
}

// BlobInput declares a blob read for the function.
type BlobInput struct {
	Name       string
	Connection string
	Path       string
	DataType   DataType
}

func NewBlobInput(name, connection, path string, dataType DataType) *BlobInput {
	return &BlobInput{
		Name:       name,
		Connection: connection,
		Path:       path,
		DataType:   dataType,
	}
}

func (b *BlobInput) BindingType() string {
	return "blob"
}

func (b *BlobInput) BindingName() string {
	return b.Name
}

func (b *BlobInput) Direction() BindingDirection {
	return BindingDirectionIn
}

func (b *BlobInput) DictRepr() *orderedmap.OrderedMap[string, any] {
	return blobDictRepr(b.BindingType(), b.Direction(), b.Name, b.DataType, b.Path, b.Connection)
}

// BlobOutput declares a blob write from the function.
type BlobOutput struct {
	Name       string
	Connection string
	Path       string
	DataType   DataType
}

func NewBlobOutput(name, connection, path string, dataType DataType) *BlobOutput {
	return &BlobOutput{
		Name:       name,
		Connection: connection,
		Path:       path,
		DataType:   dataType,
	}
}

func (b *BlobOutput) BindingType() string {
	return "blob"
}

func (b *BlobOutput) BindingName() string {
	return b.Name
}

func (b *BlobOutput) Direction() BindingDirection {
	return BindingDirectionOut
}

func (b *BlobOutput) DictRepr() *orderedmap.OrderedMap[string, any] {
	return blobDictRepr(b.BindingType(), b.Direction(), b.Name, b.DataType, b.Path, b.Connection)
}

// BlobTrigger declares that the function executes when a blob matching the
// path pattern is created or updated.
type BlobTrigger struct {
	Name       string
	Connection string
	Path       string
	DataType   DataType
}

func NewBlobTrigger(name, connection, path string, dataType DataType) *BlobTrigger {
	return &BlobTrigger{
		Name:       name,
		Connection: connection,
		Path:       path,
		DataType:   dataType,
	}
}

func (t *BlobTrigger) BindingType() string {
	return "blobTrigger"
}

func (t *BlobTrigger) BindingName() string {
	return t.Name
}

func (t *BlobTrigger) Direction() BindingDirection {
	return BindingDirectionIn
}

func (t *BlobTrigger) DictRepr() *orderedmap.OrderedMap[string, any] {
	return blobDictRepr(t.BindingType(), t.Direction(), t.Name, t.DataType, t.Path, t.Connection)
}

func (t *BlobTrigger) isTrigger() {}
