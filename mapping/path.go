package mapping

import "strconv"

// Path locates a value inside a structural document, e.g. ".b[0].x" or
// ".direction(Right).when". The root is the empty path.
type Path string

// Field appends a record field or parameter name.
func (p Path) Field(name string) Path { return p + "." + Path(name) }

// Index appends a list or tuple position.
func (p Path) Index(i int) Path { return p + "[" + Path(strconv.Itoa(i)) + "]" }

// Key appends a map key.
func (p Path) Key(key string) Path { return p + "[" + Path(key) + "]" }

// Tag appends a union tag.
func (p Path) Tag(tag string) Path { return p + "(" + Path(tag) + ")" }

// Each appends the placeholder for any element of a container, used while
// building plans.
func (p Path) Each() Path { return p + "[]" }

func (p Path) String() string { return string(p) }
