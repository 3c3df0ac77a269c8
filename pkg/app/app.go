// Package app defines the runtime contract shared by executable entrypoints.
//
// cmd/docsign-bridge starts long-running components through Runner without
// depending on their concrete implementations.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
