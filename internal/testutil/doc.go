// Package testutil provides fluent builders for test doubles shared across
// the upcheck test suites: scripted update providers and audience members
// with controllable presence / permission state.
package testutil
