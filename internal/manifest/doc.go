// Package manifest reads artifact catalogues: YAML documents listing, in
// order, the files a project generator emits, the template or support tree
// each one comes from and the features that gate it.
//
// A catalogue is checked in two passes. The embedded JSON Schema rejects
// malformed shapes; the catalogue rules then catch what a schema cannot
// express, such as an entry with both a template and a copy source or an
// executable that is not a shell script.
package manifest
