// Package config handles parsing and writing of launch.yaml files.
// The config is optional: an absent file means every setting takes its
// default value.
package config
