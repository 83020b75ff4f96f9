package bicodec

import "strings"

// Path is the ordered trail of field and key names locating a decode
// failure inside a nested structure, outermost segment first. A failure
// at field "b" of an object stored under field "a" carries the path
// ["a", "b"].
type Path []string

// String renders the path with dot separators, e.g. "a.b". An empty
// path (a failure at the top level) renders as "".
func (p Path) String() string { return strings.Join(p, ".") }

// Prepend returns a new path with seg in front. The receiver is not
// modified; decoders share failure values freely.
func (p Path) Prepend(seg string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, seg)
	out = append(out, p...)
	return out
}
