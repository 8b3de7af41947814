package dbg

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable keys into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a problem
// unless you're actually using it. Mesh handles are small integers that all
// look alike in a picture or a log; "BraveOtter" is easier to track by eye
// than "triangle 37".

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondetemrinistic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

// Deep dump of any value, for failure messages.
func Dump(values ...interface{}) string {
	config := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		SortKeys:                true,
	}
	return config.Sdump(values...)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
