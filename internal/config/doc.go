// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the quilter configuration file.
//
// Configuration lives in a CUE file under the platform config directory
// and is validated against an embedded schema before use. Every field is
// optional; missing values fall back to defaults.
package config
