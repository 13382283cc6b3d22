/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds process-wide configuration, read once from a TOML
// file at startup with sane defaults for anything the file omits.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"floyd/util"
)

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the command line arguments
	LogLevel = 2

	// SearchLogLevel defines the search log level set by default or given by the command line arguments
	SearchLogLevel = 2

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	TT     ttConfiguration
	Search searchConfiguration
}

// ttConfiguration holds defaults for the transposition table.
type ttConfiguration struct {
	SizeMiB int
}

// searchConfiguration holds defaults for the thin demo search driver.
type searchConfiguration struct {
	DefaultDepth int
}

func setupTT() {
	if Settings.TT.SizeMiB == 0 {
		Settings.TT.SizeMiB = 64
	}
}

func setupSearch() {
	if Settings.Search.DefaultDepth == 0 {
		Settings.Search.DefaultDepth = 6
	}
}

// Setup reads configFile (TOML) into Settings and fills in any field the
// file left at its zero value with a sane default. Safe to call more than
// once; only the first call has effect.
func Setup(configFile string) {
	if initialized {
		return
	}

	if configFile != "" {
		resolved, err := util.ResolveFile(configFile)
		if err != nil {
			fmt.Println(err)
		} else if _, err := toml.DecodeFile(resolved, &Settings); err != nil {
			fmt.Println(err)
		}
	}

	setupLogLvl()
	setupTT()
	setupSearch()

	initialized = true
}
