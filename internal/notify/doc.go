// Package notify prints the owl banner and plays the hoot at the start of
// a command. Everything here is cosmetic: failures are swallowed and the
// worst outcome is a terminal bell.
package notify
