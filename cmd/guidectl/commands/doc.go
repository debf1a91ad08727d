// Package commands implements guidectl, a terminal client for the Outer
// Sunset guide: it prints the directory exports offline and submits the
// contact and group suggestion forms to a running server.
package commands
