// Package config provides the editor configuration.
//
// Configuration is read from layered sources, later layers overriding
// earlier ones:
//
//   - built-in defaults
//   - the TOML file ($XDG_CONFIG_HOME/mte/config.toml unless -config is given)
//   - MTE_* environment variables
//   - command line flags, applied by the caller
//
// Example configuration file:
//
//	[editor]
//	autoIndent = true
//	indentChars = " \t"
//
//	[ui]
//	reverseStatus = true
//
//	[logging]
//	level = "info"   # debug|info|warn|error
//	file = ""
//
// The watcher subpackage reports changes to the file so a running editor
// can reload it.
package config
