// Package naming converts request text into filesystem-safe project
// directory names and resolves collisions against the existing output tree
// by probing numeric suffixes (_2, _3, ...). The only state it reads is the
// current directory listing; deleted directories free their slots.
package naming
