// Package config manages user-level settings stored at ~/.jrforge/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the JRebirth repository URLs used for version lookup and the HTTP timeout.
package config
