package util

import (
	"fmt"
	"runtime/debug"

	"github.com/op/go-logging"
)

//	RecoverToLog runs f, logging instead of crashing if it panics. It
//	reports whether f returned normally.
func RecoverToLog(f func(), log *logging.Logger) (ok bool) {
	defer func() {
		if x := recover(); x != nil {
			if log != nil {
				log.Error(fmt.Sprintf("run time panic: %v", x))
				log.Error(string(debug.Stack()))
			}
			ok = false
		}
	}()
	f()
	return true
}
