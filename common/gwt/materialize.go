package gwt

import (
	"fmt"
)

type materializer struct {
	cur      *cursor
	resolver *resolver
	warnings []string
}

func (m *materializer) next(tag string) (it item, err error) {
	it, ok := m.cur.next()
	if !ok {
		err = decodeErr(m.cur.lastPos(), tag, ErrTruncated)
	}
	return
}

//	topLevel builds the parameter declared with gwtType.
func (m *materializer) topLevel(gwtType string) (param Parameter, err error) {
	switch {
	case gwtType == STRING_OBJECT:
		var it item
		if it, err = m.next(gwtType); err != nil {
			return
		}
		param = NewScalar(STRING_OBJECT, it.String())
	case isPrimitive(gwtType):
		var it item
		if it, err = m.next(gwtType); err != nil {
			return
		}
		if it.kind == itemParam {
			param = it.param
		} else {
			param = NewScalar(gwtType, it.String())
		}
	case isCollection(gwtType):
		var origin, count item
		if origin, err = m.origin(gwtType); err != nil {
			return
		}
		if count, err = m.count(gwtType); err != nil {
			return
		}
		param, err = m.build(origin, gwtType, count.count)
	default:
		var origin item
		if origin, err = m.origin(gwtType); err != nil {
			return
		}
		var n int
		if n, err = m.resolver.fieldCount(gwtType, origin.pos); err != nil {
			return
		}
		param, err = m.build(origin, gwtType, n)
	}
	return
}

func (m *materializer) origin(expected string) (it item, err error) {
	if it, err = m.next(expected); err != nil {
		return
	}
	if it.kind != itemString {
		err = decodeErr(it.pos, expected, ErrUnexpectedToken)
	}
	return
}

func (m *materializer) count(tag string) (it item, err error) {
	if it, err = m.next(tag); err != nil {
		return
	}
	if it.kind != itemCount {
		err = decodeErr(it.pos, tag, ErrUnexpectedToken)
	}
	return
}

func (m *materializer) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	m.warnings = append(m.warnings, msg)
	m.resolver.log.Warning(msg)
}

//	build materializes n children under the type named by origin, which has
//	already been consumed.
func (m *materializer) build(origin item, expected string, n int) (param Parameter, err error) {
	gwtType := typePrefix(origin.str)
	if gwtType != expected && m.resolver.verbosity != SILENT {
		m.warn("Just a heads up, we're associating %s with %s", gwtType, expected)
	}

	//	n comes off the wire; never reserve more than the items left
	reserve := len(m.cur.items) - m.cur.pos
	if n < reserve {
		reserve = n
	}
	children := make([]Parameter, 0, reserve)
	for i := 0; i < n; i++ {
		var child Parameter
		if child, err = m.child(); err != nil {
			return
		}
		children = append(children, child)
	}
	param = NewComposite(gwtType, children)
	return
}

func (m *materializer) child() (param Parameter, err error) {
	it, ok := m.cur.peek()
	if !ok {
		err = decodeErr(m.cur.lastPos(), "", ErrTruncated)
		return
	}
	switch it.kind {
	case itemParam:
		m.cur.next()
		return it.param, nil
	case itemCount:
		err = decodeErr(it.pos, "", ErrUnexpectedToken)
		return
	}

	tag := typePrefix(it.str)
	if isCollection(tag) {
		m.cur.next()
		var count item
		if count, err = m.count(tag); err != nil {
			return
		}
		return m.build(it, tag, count.count)
	}

	isObject, n, err := m.resolver.classify(it.str, it.pos)
	if err != nil {
		return
	}
	m.cur.next()
	if !isObject {
		return NewScalar(STRING_OBJECT, it.str), nil
	}
	return m.build(it, tag, n)
}
