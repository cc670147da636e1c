package node

import (
	"path"
	"reflect"
	"runtime"
	"strings"

	"ags/utils"
)

// FuncName splits the runtime name of a function into its package alias and the
// remaining name, e.g. ("strconv", "Itoa").
func FuncName(fnVal reflect.Value) (alias, name string) {
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	if fnPC == nil {
		return "", "func"
	}

	full := fnPC.Name()
	dir, last := path.Split(full)
	alias, name = utils.Unpack2(strings.SplitN(last, ".", 2))
	if name == "" {
		return path.Base(dir), alias
	}

	return alias, name
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
