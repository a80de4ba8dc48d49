// Package form defines the component tree types for Formwright.
// The tree is an ordered, recursive sequence of components that
// represents the canvas of a form under construction.
package form
