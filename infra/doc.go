// Package infra contains technical adapters such as the logger and the
// chart and report writers. These packages should depend only on the
// interfaces and types defined in the core packages.
package infra
