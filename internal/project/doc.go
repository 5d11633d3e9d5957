// Package project resolves the settings of a new project from command-line
// arguments, non-interactive defaults and operator answers.
//
// Resolution happens once, up front. The result is a Configuration value
// that generation reads but never changes, and generation never asks
// questions of its own.
package project
