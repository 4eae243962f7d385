// +build !windows

package log

import (
	stdlog "log"
	"log/syslog"

	"github.com/op/go-logging"
)

func getSyslogBackend(prefix string) logging.Backend {
	var backend logging.Backend
	var err error
	backend, err = logging.NewSyslogBackendPriority(prefix, syslog.LOG_NOTICE)
	if err != nil {
		return nil
	}
	logging.SetFormatter(syslogFormat)
	//	direct panic output to syslog as well
	if syslogBackend, ok := backend.(*logging.SyslogBackend); ok {
		stdlog.SetOutput(syslogBackend.Writer)
	}
	return backend
}
