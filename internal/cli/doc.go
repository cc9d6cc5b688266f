// Package cli provides the cobra command definitions, flag handling and
// viper configuration shared by the docxtrans and urltrans binaries.
package cli
