// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

// Package store reads and writes the on-disk descriptor layout the host
// runtime consumes: one directory per function containing its
// function.json. Descriptors are handled as raw bytes end to end; the
// store never re-parses them into the binding model.
package store

import (
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/funchost/sdk/function/api"
)

// DescriptorFileName is the file name of each function's descriptor.
const DescriptorFileName = "function.json"

// Write materializes the descriptors under dir, one subdirectory per
// function. Existing descriptors for the same names are overwritten.
func Write(fsys afero.Fs, dir string, descriptors []api.FunctionDescriptor) error {
	for _, d := range descriptors {
		if d.FunctionName == "" {
			return errors.Newf("descriptor with empty function name cannot be written")
		}
		functionDir := filepath.Join(dir, d.FunctionName)
		if err := fsys.MkdirAll(functionDir, 0o755); err != nil {
			return errors.Wrapf(err, "unable to create directory for function %s", d.FunctionName)
		}
		path := filepath.Join(functionDir, DescriptorFileName)
		if err := afero.WriteFile(fsys, path, d.Descriptor, 0o644); err != nil {
			return errors.Wrapf(err, "unable to write descriptor for function %s", d.FunctionName)
		}
	}
	return nil
}

// Dir serves descriptors back out of the layout Write produces.
type Dir struct {
	fsys afero.Fs
	dir  string
}

func NewDir(fsys afero.Fs, dir string) *Dir {
	return &Dir{fsys: fsys, dir: dir}
}

// Descriptors lists every <dir>/<name>/function.json, sorted by function
// name for a stable serving order. Subdirectories without a descriptor file
// are skipped.
func (d *Dir) Descriptors() ([]api.FunctionDescriptor, error) {
	entries, err := afero.ReadDir(d.fsys, d.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read descriptor directory %s", d.dir)
	}
	var descriptors []api.FunctionDescriptor
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(d.dir, entry.Name(), DescriptorFileName)
		exists, err := afero.Exists(d.fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to stat %s", path)
		}
		if !exists {
			continue
		}
		body, err := afero.ReadFile(d.fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read descriptor for function %s", entry.Name())
		}
		descriptors = append(descriptors, api.FunctionDescriptor{
			FunctionName: entry.Name(),
			Descriptor:   body,
		})
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].FunctionName < descriptors[j].FunctionName
	})
	return descriptors, nil
}
