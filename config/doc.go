// Package config implements the file based configuration for lessconv.
//
// Configuration values are defined using a struct, whose fields can be
// tagged to include default values and help strings. Values are then
// read from a YAML file and can be overridden from the command line.
package config
