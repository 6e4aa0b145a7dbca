// Package rcuclient constructs RCU API clients.
//
// It is the supported entry point for the library: it normalizes the API
// endpoint, derives the token endpoint, and wires the transport, token
// handling, and resource clients together behind the rcu.Client interface.
package rcuclient
