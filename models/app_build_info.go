// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NotAvailable stands in for build values that were not stamped.
const NotAvailable = "N/A"

// AppBuildInfo carries build-time metadata of syncd and syncctl.
//
// Values are injected by linker flags (-X main.buildVersion=...) and
// reported by GET /api/version and `syncctl version`.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported
// as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String renders the build info on one line for `syncctl version`.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s (commit %s, built %s)", a.buildVersion, a.buildCommit, a.buildDate)
}

// Response converts the build info into its control API form.
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{
		Version: a.buildVersion,
		Date:    a.buildDate,
		Commit:  a.buildCommit,
	}
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
