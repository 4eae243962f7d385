package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGwtDirHonorsEnv(t *testing.T) {
	dir, err := ioutil.TempDir("", "gwtdir")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	defer os.Unsetenv(GWT_DIR_ENV)

	stateDir := filepath.Join(dir, "state")
	os.Setenv(GWT_DIR_ENV, stateDir)
	gwtPath, err := GwtDir()
	if err != nil {
		t.Fatal(err)
	}
	if gwtPath != stateDir {
		t.Fatalf("dir = %s", gwtPath)
	}
	if info, err := os.Stat(stateDir); err != nil || !info.IsDir() {
		t.Fatal("state dir not created")
	}
}

func TestRecoverToLog(t *testing.T) {
	if RecoverToLog(func() { panic("boom") }, nil) {
		t.Fatal("panic not reported")
	}
	if !RecoverToLog(func() {}, nil) {
		t.Fatal("normal return reported as panic")
	}
}

func TestForceColor(t *testing.T) {
	defer ForceColor(false)

	ForceColor(false)
	if got := Red("plain"); got != "plain" {
		t.Fatalf("colored output with color disabled: %q", got)
	}
	ForceColor(true)
	if got := Red("piped"); !strings.Contains(got, "\x1b[") || !strings.Contains(got, "piped") {
		t.Fatalf("color not forced: %q", got)
	}
}
