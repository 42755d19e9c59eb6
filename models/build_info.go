// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfo carries the linker-injected build metadata shown by the client
// on startup and in the "about" window.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns a [BuildInfo] with every empty value replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
