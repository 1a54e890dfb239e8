// Package settings wires the loaded configuration into an immutable accessor
// facade injected into consuming components, replacing ambient module-level
// globals. It exposes the debug flag, the upstream service root, and the
// cooperator funding URL builders.
package settings
