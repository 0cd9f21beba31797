// SPDX-License-Identifier: MIT

// Package config loads the parameters of an upword run from YAML and turns
// them into word.Params and search options.
//
// Precedence is defaults < file < command-line flags; the CLI applies the
// last step by overwriting fields of a loaded Config before Validate.
// Unknown YAML keys are rejected.
package config
