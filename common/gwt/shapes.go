package gwt

import (
	"strings"

	"github.com/op/go-logging"
)

//	TypeShapes maps a type tag to the number of fields its values carry.
type TypeShapes map[string]int

//	Verbosity selects how shapes missing from the cache are resolved.
type Verbosity int

const (
	DEFAULT Verbosity = iota + 1
	SILENT
	VERBOSE
	VVERBOSE
)

func (v Verbosity) String() string {
	switch v {
	case DEFAULT:
		return "default"
	case SILENT:
		return "silent"
	case VERBOSE:
		return "verbose"
	case VVERBOSE:
		return "vverbose"
	}
	return "unknown"
}

//	resolver owns the shape cache and the oracle for one parse.
type resolver struct {
	shapes    TypeShapes
	verbosity Verbosity
	oracle    Oracle
	log       *logging.Logger
}

func (r *resolver) askCount(tag string, pos int) (count int, err error) {
	if r.oracle == nil {
		err = decodeErr(pos, tag, ErrUnresolvedShape)
		return
	}
	count, oracleErr := r.oracle.FieldCount(tag)
	if oracleErr != nil || count < 0 {
		r.log.Debugf("oracle answered %d, %v for %s", count, oracleErr, tag)
		err = decodeErr(pos, tag, ErrOracle)
		return
	}
	r.shapes[tag] = count
	r.log.Debugf("learned shape %s = %d", tag, count)
	return
}

func (r *resolver) askIsObject(value string, pos int) (isObject bool, err error) {
	if r.oracle == nil {
		return
	}
	isObject, oracleErr := r.oracle.IsObject(value)
	if oracleErr != nil {
		err = decodeErr(pos, typePrefix(value), ErrOracle)
	}
	return
}

//	fieldCount resolves the field count of a value whose type is already
//	known to be a user object.
func (r *resolver) fieldCount(tag string, pos int) (count int, err error) {
	cached, ok := r.shapes[tag]
	switch r.verbosity {
	case SILENT:
		if !ok {
			err = decodeErr(pos, tag, ErrUnresolvedShape)
			return
		}
		count = cached
	case VVERBOSE:
		count, err = r.askCount(tag, pos)
	default:
		if ok {
			count = cached
			return
		}
		count, err = r.askCount(tag, pos)
	}
	return
}

//	classify decides whether the unresolved string value opens a nested
//	object, and if so how many fields it has. Unlike fieldCount, a cache miss
//	under SILENT degrades to a string leaf instead of failing.
func (r *resolver) classify(value string, pos int) (isObject bool, count int, err error) {
	tag := typePrefix(value)
	cached, ok := r.shapes[tag]
	switch r.verbosity {
	case SILENT:
		return ok, cached, nil
	case DEFAULT:
		//	qualified type names always contain a package separator
		if !strings.Contains(value, ".") {
			return
		}
	}
	if ok && r.verbosity != VVERBOSE {
		return true, cached, nil
	}
	isObject, err = r.askIsObject(value, pos)
	if err != nil || !isObject {
		return
	}
	count, err = r.askCount(tag, pos)
	return
}
