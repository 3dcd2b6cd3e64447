// Package utils contains general helper functions used across arbol.
package utils

import "strings"

const (
	// PathSeparator terminates every directory path printed by arbol.
	PathSeparator = "/"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".arbol.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".arbol"
	// GlobalConfigFileName is the name of the global configuration file.
	GlobalConfigFileName = "config.yaml"
)

// EnsureTrailingSeparator appends "/" to path unless it already ends with one.
func EnsureTrailingSeparator(path string) string {
	if strings.HasSuffix(path, PathSeparator) {
		return path
	}
	return path + PathSeparator
}
