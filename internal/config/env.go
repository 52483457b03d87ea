// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// environ supplies the variables parseEnv reads. Tests replace it to avoid
// depending on the process environment.
var environ = os.Environ

// parseEnv fills cfg from variables such as SERVER_ADDRESS, STORAGE_DB_DATABASE_URI
// or ADAPTER_REQUEST_TIMEOUT. Names come from the env and envPrefix tags on
// [StructuredConfig]. Unset variables leave their fields zero so that mergo
// keeps the value from a lower-priority source.
//
// A value that does not parse, such as ADAPTER_REQUEST_TIMEOUT=soon, fails
// with [ErrInvalidEnvConfigs].
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Environment: env.ToMap(environ()),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}

	return nil
}
