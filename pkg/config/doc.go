// Package config loads batch-rename settings from, in increasing priority,
// embedded defaults, a user file, BATCH_RENAME_* environment variables and
// command-line overrides.
package config
