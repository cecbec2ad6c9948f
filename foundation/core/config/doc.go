// Package config loads calcalc settings from TOML or YAML files.
//
// Package: config
// Title: Configuration Management
// Description: File based configuration with dot-notation access and
//              environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// A key such as "calendar.location" is looked up in the environment first
// (CALCALC_CALENDAR_LOCATION when the prefix is CALCALC), then in the file,
// then in the defaults passed through LoadOptions or DiscoveryOptions.
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	loc := cfg.GetString("calendar.location", "local")
package config
