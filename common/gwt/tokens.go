package gwt

import (
	"fmt"
	"strconv"
)

type itemKind int

const (
	itemString itemKind = iota
	itemCount
	itemParam
)

//	item is one entry of the flat decoded sequence: a resolved or literal
//	string, an element count following a collection tag, or a scalar that
//	was fully decoded in place.
type item struct {
	kind  itemKind
	str   string
	count int
	param Parameter
	pos   int
}

func (it item) String() string {
	switch it.kind {
	case itemCount:
		return strconv.Itoa(it.count)
	case itemParam:
		return fmt.Sprint(it.param.Value)
	}
	return it.str
}

//	cursor is a forward-only view over the decoded items. Consumption order
//	is part of the format, so nothing ever steps back.
type cursor struct {
	items []item
	pos   int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.items)
}

func (c *cursor) peek() (it item, ok bool) {
	if c.done() {
		return
	}
	return c.items[c.pos], true
}

func (c *cursor) next() (it item, ok bool) {
	it, ok = c.peek()
	if ok {
		c.pos++
	}
	return
}

//	lastPos is the token position used to report running off the end.
func (c *cursor) lastPos() int {
	if len(c.items) == 0 {
		return -1
	}
	return c.items[len(c.items)-1].pos
}

type decodedCall struct {
	url        string
	service    string
	class      string
	method     string
	paramTypes []string
	items      []item
}

type tokenReader struct {
	raw  []string
	i    int
	base int
}

func (r *tokenReader) more() bool {
	return r.i < len(r.raw)
}

func (r *tokenReader) pos() int {
	return r.base + r.i
}

func (r *tokenReader) next(tag string) (tok string, err error) {
	if !r.more() {
		err = decodeErr(r.pos(), tag, ErrTruncated)
		return
	}
	tok = r.raw[r.i]
	r.i++
	return
}

func (r *tokenReader) resolve(table StringTable) (entry string, err error) {
	pos := r.pos()
	tok, err := r.next("")
	if err != nil {
		return
	}
	entry, err = table.Lookup(tok)
	if err != nil {
		err = decodeErr(pos, "", err)
	}
	return
}

//	decodeTokens turns the raw tokens following the string table into the
//	call header and the flat item sequence. base is the position of raw[0]
//	in the pipe-split call string.
func decodeTokens(table StringTable, raw []string, base int) (call decodedCall, err error) {
	r := &tokenReader{raw: raw, base: base}

	header := []*string{&call.url, &call.service, &call.class, &call.method}
	for _, field := range header {
		*field, err = r.resolve(table)
		if err != nil {
			return
		}
	}

	countPos := r.pos()
	countTok, err := r.next("")
	if err != nil {
		return
	}
	paramCount, convErr := strconv.Atoi(countTok)
	if convErr != nil || paramCount < 0 {
		err = decodeErr(countPos, "", ErrMalformedHeader)
		return
	}
	for j := 0; j < paramCount; j++ {
		var paramType string
		paramType, err = r.resolve(table)
		if err != nil {
			return
		}
		call.paramTypes = append(call.paramTypes, typePrefix(paramType))
	}

	for r.more() {
		pos := r.pos()
		tok, _ := r.next("")
		if !table.Resolvable(tok) {
			call.items = append(call.items, item{kind: itemString, str: tok, pos: pos})
			continue
		}
		data, _ := table.Lookup(tok)
		tag := typePrefix(data)

		var it item
		it, err = decodeValue(r, data, tag, pos)
		if err != nil {
			return
		}
		call.items = append(call.items, it)
		if it.kind == itemString && isCollection(tag) {
			countPos := r.pos()
			var countTok string
			if countTok, err = r.next(tag); err != nil {
				return
			}
			n, convErr := strconv.Atoi(countTok)
			if convErr != nil || n < 0 {
				err = decodeErr(countPos, tag, ErrBadValue)
				return
			}
			call.items = append(call.items, item{kind: itemCount, count: n, pos: countPos})
		}
	}
	return
}

//	decodeValue classifies a resolved table entry. Scalars consume their value
//	token here; everything else is left for the materializer.
func decodeValue(r *tokenReader, data string, tag string, pos int) (it item, err error) {
	it = item{kind: itemString, str: data, pos: pos}
	switch {
	case isBoolean(tag):
		var v string
		if v, err = r.next(tag); err != nil {
			return
		}
		//	"0" is true on this wire
		it = item{kind: itemParam, param: NewScalar(tag, v == "0"), pos: pos}
	case isFloat(tag):
		valPos := r.pos()
		var v string
		if v, err = r.next(tag); err != nil {
			return
		}
		f, convErr := strconv.ParseFloat(v, 64)
		if convErr != nil {
			err = decodeErr(valPos, tag, ErrBadValue)
			return
		}
		it = item{kind: itemParam, param: NewScalar(tag, f), pos: pos}
	case isInteger(tag):
		valPos := r.pos()
		var v string
		if v, err = r.next(tag); err != nil {
			return
		}
		n, convErr := strconv.ParseInt(v, 10, 64)
		if convErr != nil {
			err = decodeErr(valPos, tag, ErrBadValue)
			return
		}
		it = item{kind: itemParam, param: NewScalar(tag, n), pos: pos}
	case isCollection(tag):
		it.str = tag
	}
	return
}
