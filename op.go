package patchdemo

import "strings"

// Op identifies a patch operation kind.
type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
)

// String returns the wire name of the operation kind.
func (o Op) String() string { return string(o) }

// ParseOp maps a wire name to an Op. Names are matched case-insensitively so
// both the JSON form ("add") and the XML element form ("Add") are accepted.
func ParseOp(name string) (Op, error) {
	switch Op(strings.ToLower(name)) {
	case OpAdd:
		return OpAdd, nil
	case OpRemove:
		return OpRemove, nil
	case OpReplace:
		return OpReplace, nil
	default:
		return "", Errorf(ErrUnknownOperation, "", "%q", name)
	}
}
