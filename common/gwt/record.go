package gwt

import (
	"fmt"
	"strings"
)

type CallRecord struct {
	Version     int         `json:"version"`
	Flags       []Flag      `json:"flags"`
	URL         string      `json:"url"`
	ServiceName string      `json:"name"`
	ClassName   string      `json:"class"`
	MethodName  string      `json:"method"`
	Parameters  []Parameter `json:"parameters"`
	Warnings    []string    `json:"warnings,omitempty"`
}

func (r CallRecord) String() string {
	params := []string{}
	for _, p := range r.Parameters {
		params = append(params, fmt.Sprint(p.ToMap()))
	}
	return fmt.Sprintf("%d %v %s %s %s.%s [%s]", r.Version, r.Flags, r.URL,
		r.ServiceName, r.ClassName, r.MethodName, strings.Join(params, ", "))
}
