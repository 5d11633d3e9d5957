// Package prompt collects answers from the operator. Every question has a
// default, so an empty answer is always valid. Implementations exist for a
// plain line reader, a terminal form, a non-interactive guard and a scripted
// replay used by tests.
package prompt
