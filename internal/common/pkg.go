package common

import (
	"path"
	"strings"
)

// UnknownStr is the rendering used for values that have no known name.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitFuncName splits a runtime function name such as
// "example.com/mod/pkg.Type.Method.func1" into the package alias ("pkg")
// and the rest of the name ("Type.Method.func1").
func SplitFuncName(full string) (alias, name string) {
	dir, last := path.Split(full)

	pkg, rest, found := strings.Cut(last, ".")
	if !found {
		return PkgAlias(strings.TrimSuffix(dir, "/")), last
	}

	return pkg, rest
}
