package gwt

import (
	"strconv"
)

//	StringTable holds the header strings of one call. Entries are addressed
//	1-based; index 0 is never valid.
type StringTable []string

func (st StringTable) index(ref string) (i int, ok bool) {
	i, err := strconv.Atoi(ref)
	if err != nil || i < 1 || i > len(st) {
		return
	}
	ok = true
	return
}

//	Resolvable reports whether ref is a valid back-reference into the table.
func (st StringTable) Resolvable(ref string) bool {
	_, ok := st.index(ref)
	return ok
}

func (st StringTable) Lookup(ref string) (entry string, err error) {
	i, ok := st.index(ref)
	if !ok {
		err = ErrIndexOutOfRange
		return
	}
	entry = st[i-1]
	return
}
