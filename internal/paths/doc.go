// Package paths resolves the two storage roots used by datakeep: the
// read-only bundled assets root and the writable per-application data root.
package paths
