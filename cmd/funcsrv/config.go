// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "funcsrv.yaml"

type config struct {
	// DescriptorDir holds the exported descriptor layout to serve.
	DescriptorDir string `yaml:"descriptorDir"`
	// Port is used when FUNCHOST_APP_PORT is not set in the environment.
	Port               string `yaml:"port"`
	LocalhostOnly      bool   `yaml:"localhostOnly"`
	GracePeriodSeconds int    `yaml:"gracePeriodSeconds"`
}

// loadConfig reads the yaml config file if present and applies defaults.
// An explicitly named file must exist; the default file is optional.
func loadConfig(fsys afero.Fs, path string) (*config, error) {
	cfg := &config{
		DescriptorDir:      "functions",
		GracePeriodSeconds: 1,
	}

	required := path != ""
	if path == "" {
		path = defaultConfigFile
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if !required && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "unable to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "unable to parse config file %s", path)
	}

	if cfg.GracePeriodSeconds <= 0 {
		cfg.GracePeriodSeconds = 1
	}
	// The environment wins over the config file for the listen port.
	if cfg.Port != "" && os.Getenv("FUNCHOST_APP_PORT") == "" {
		os.Setenv("FUNCHOST_APP_PORT", cfg.Port)
	}

	return cfg, nil
}
