package version

import (
	"testing"

	"github.com/blang/semver"
)

func TestCurrentVersion(t *testing.T) {
	if CURRENT_VERSION.LT(semver.MustParse("1.0.0")) {
		t.Fatal("version regressed")
	}
}

func TestKnownWireVersion(t *testing.T) {
	if !KnownWireVersion(7) || KnownWireVersion(4) || KnownWireVersion(8) {
		t.Fatal("wrong wire version range")
	}
}
