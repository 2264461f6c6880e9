// Package ipc exposes daemon control to the CLI as JSON-RPC over a Unix
// domain socket.
package ipc
