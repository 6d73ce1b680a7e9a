// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package config resolves the CLI driver's --ical PATH argument and holds
// the handful of flags it accepts. No layered config file or env-var
// loader: four flags don't warrant one.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolvePath searches for name in ./ics, then the current directory, then
// treats it as given (absolute or relative to the process's cwd),
// returning the first candidate that exists.
func ResolvePath(name string) (string, error) {
	candidates := []string{
		filepath.Join("ics", name),
		filepath.Join(".", name),
		name,
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("%s: not found in ./ics, ./, or as given", name)
}

// Env selects which operation the CLI performs on the loaded calendar.
type Env string

const (
	EnvEnumerate Env = "enumerate"
	EnvValidate  Env = "validate"
)

// Flags holds the CLI's parsed input.
type Flags struct {
	ICalPath    string
	Env         Env
	DTStart     string
	DTEnd       string
	Conformance bool
}
