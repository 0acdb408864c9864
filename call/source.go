package call

import (
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"

	"attrkit/internal/common"
)

// sourceOf returns "file.go:line" for a function value, or its qualified
// name when no file information is available.
func sourceOf(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<unknown>"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<unknown>"
	}

	file, line := f.FileLine(f.Entry())
	if file == "" {
		alias, name := common.SplitFuncName(f.Name())
		return alias + "." + name
	}

	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
