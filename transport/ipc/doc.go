// Package ipc implements the client side of the Discord rich-presence IPC
// protocol: a length-prefixed, opcode-tagged, JSON-payload framing layered
// over a named pipe on Windows and a Unix domain socket elsewhere.
//
// The package is a single-purpose, single-connection, synchronous client.
// A Conn is owned by exactly one goroutine for its entire lifetime; none of
// its methods are safe for concurrent use.
package ipc
