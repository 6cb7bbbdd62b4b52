// Package tools implements the capabilities the agent can call: an
// encyclopedia lookup and a wall clock.
package tools
