// Package platform wraps filesystem operations whose behavior differs
// between Unix and Windows, mainly permission bits on generated scripts and
// extracted binaries.
package platform
