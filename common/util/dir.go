package util

import (
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
)

const GWT_DIR_ENV = "GWT_DIR"

func User() string {
	user := os.Getenv("SUDO_USER")
	if user == "" {
		user = os.Getenv("USER")
	}
	if user == "" {
		whoami, err := exec.Command("whoami").Output()
		if err == nil {
			user = strings.TrimSpace(string(whoami))
		}
	}
	return user
}

//	Find home directory of logged-in user even when run as sudo
func HomeDir() (home string) {
	currentUser, err := user.Lookup(User())
	if err == nil && currentUser != nil {
		home = currentUser.HomeDir
	} else {
		home = os.Getenv("HOME")
	}
	return
}

//	GwtDir is the state directory, ~/.gwt unless GWT_DIR overrides it.
func GwtDir() (gwtPath string, err error) {
	gwtPath = os.Getenv(GWT_DIR_ENV)
	if gwtPath == "" {
		gwtPath = filepath.Join(HomeDir(), ".gwt")
	}
	err = os.MkdirAll(gwtPath, os.FileMode(0700))
	return
}
