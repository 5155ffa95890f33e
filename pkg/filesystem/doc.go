// Package filesystem provides the small set of filesystem operations the
// rename simulator needs, behind an interface so failures can be injected
// in tests.
package filesystem
