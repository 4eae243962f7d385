package gwt

import (
	"fmt"
)

type Flag int

const (
	ELIDE_TYPE_NAMES   Flag = 0x1
	RPC_TOKEN_INCLUDED Flag = 0x2
)

var ALL_FLAGS = []Flag{ELIDE_TYPE_NAMES, RPC_TOKEN_INCLUDED}

func (f Flag) String() string {
	switch f {
	case ELIDE_TYPE_NAMES:
		return "ELIDE_TYPE_NAMES"
	case RPC_TOKEN_INCLUDED:
		return "RPC_TOKEN_INCLUDED"
	}
	return fmt.Sprintf("Flag(%#x)", int(f))
}

func (f Flag) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

//	ParseFlags returns the known flags set in mask. Unknown bits are ignored.
func ParseFlags(mask int) (flags []Flag) {
	flags = []Flag{}
	for _, flag := range ALL_FLAGS {
		if mask&int(flag) != 0 {
			flags = append(flags, flag)
		}
	}
	return
}
