// Package filestore loads a text file into lines and saves lines back.
//
// A file is split on '\n'. A final terminator does not produce an extra
// empty line; it is remembered in Document.TrailingNewline and written
// back on save, so loading and saving an unmodified file reproduces it
// byte for byte. '\r' is ordinary line content.
//
// Saving never writes the target in place. The content goes to a sibling
// temporary file named ".<base>.<uuid>~", which is synced and then renamed
// over the target. The original file mode is kept.
package filestore
