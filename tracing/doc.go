// Package tracing wires OpenTelemetry into xdisplay. Naming operations run
// inside spans started here; when no provider is installed the spans are
// no-ops.
package tracing
