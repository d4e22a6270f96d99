// Package config manages user-level settings stored at ~/.forge/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the output root directory that receives generated projects.
package config
