package process

import "strings"

// FieldSet is a set of queryable process attributes. A query request and the
// populated set reported back on Info are always distinct values, so
// "requested" and "actually obtained" can never be confused.
type FieldSet uint32

const (
	FieldExe FieldSet = 1 << iota
	FieldParent
	FieldPriority
	FieldCmdline
	FieldArgs
	FieldEnv
	FieldUser
	FieldCwd
)

// FieldAll requests every queryable attribute.
const FieldAll = FieldExe | FieldParent | FieldPriority | FieldCmdline |
	FieldArgs | FieldEnv | FieldUser | FieldCwd

// Has reports whether every field in f is present in s.
func (s FieldSet) Has(f FieldSet) bool {
	return s&f == f
}

// With returns s with the fields in f added.
func (s FieldSet) With(f FieldSet) FieldSet {
	return s | f
}

// Without returns s with the fields in f removed.
func (s FieldSet) Without(f FieldSet) FieldSet {
	return s &^ f
}

var fieldNames = []struct {
	f    FieldSet
	name string
}{
	{FieldExe, "exe"},
	{FieldParent, "parent"},
	{FieldPriority, "priority"},
	{FieldCmdline, "cmdline"},
	{FieldArgs, "args"},
	{FieldEnv, "env"},
	{FieldUser, "user"},
	{FieldCwd, "cwd"},
}

func (s FieldSet) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, fn := range fieldNames {
		if s.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
