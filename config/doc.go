// Package config loads and validates the settings of the foundation layer:
// the text conversion policy, the default character set, and logging.
//
// Settings come from DBKIT_* environment variables, an optional .env file,
// and an optional YAML file, in ascending precedence of env over file.
package config
