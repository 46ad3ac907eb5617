// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrSchemaVersion indicates a config file written for another schema.
	ErrSchemaVersion = errors.New("config: unsupported schema_version")

	// ErrInvalidConfig indicates a value that failed validation.
	ErrInvalidConfig = errors.New("config: invalid value")
)
