// Package ux renders the colored console output shared by every command:
// section headers, status lines and the command logger.
package ux
