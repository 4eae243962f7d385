package version

import (
	"github.com/blang/semver"
)

var CURRENT_VERSION = semver.MustParse("1.1.0")

//	Wire protocol versions this decoder has been exercised against. Others
//	still decode, with a notice.
const (
	MIN_WIRE_VERSION = 5
	MAX_WIRE_VERSION = 7
)

func KnownWireVersion(v int) bool {
	return v >= MIN_WIRE_VERSION && v <= MAX_WIRE_VERSION
}
