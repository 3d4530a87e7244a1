// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// ExpandHome - replace a leading "~/" by the home directory
func ExpandHome(home string, filePath string) string {
	if "~" == filePath {
		return home
	}
	if strings.HasPrefix(filePath, "~/") {
		return filepath.Join(home, filePath[2:])
	}
	return filePath
}

// NodeDataDirectory - where the PAI Coin node keeps paicoin.conf
func NodeDataDirectory() string {
	home, err := os.UserHomeDir()
	if nil != err {
		return "."
	}
	return nodeDataDirectory(runtime.GOOS, home)
}

func nodeDataDirectory(goos string, home string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "PAIcoin")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "PAIcoin")
	default:
		return filepath.Join(home, ".paicoin")
	}
}
