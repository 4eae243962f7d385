package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"krypt.co/gwt/common/gwt"
	. "krypt.co/gwt/common/util"
)

const (
	FORMAT_TEXT = "text"
	FORMAT_JSON = "json"
	FORMAT_YAML = "yaml"
)

func Write(w io.Writer, record *gwt.CallRecord, format string) (err error) {
	switch format {
	case FORMAT_TEXT, "":
		err = Text(w, record)
	case FORMAT_JSON:
		err = JSON(w, record)
	case FORMAT_YAML:
		err = YAML(w, record)
	default:
		err = ErrUnknownFormat
	}
	return
}

//	marshalIndent renders v as sorted, 4-space indented JSON without HTML
//	escaping, since parameter values are shown verbatim.
func marshalIndent(v interface{}) (out []byte, err error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	err = enc.Encode(v)
	out = buf.Bytes()
	return
}

//	Text prints the record header followed by each parameter as JSON.
func Text(w io.Writer, record *gwt.CallRecord) (err error) {
	_, err = fmt.Fprintf(w, "%s %d\n%s %v\n%s %s\n%s %s\n%s %s.%s\n%s\n",
		Cyan("Version:"), record.Version,
		Cyan("Flags:"), record.Flags,
		Cyan("URL:"), record.URL,
		Cyan("Name:"), record.ServiceName,
		Cyan("Method:"), record.ClassName, record.MethodName,
		Cyan("Parameters:"))
	if err != nil {
		return
	}
	for _, param := range record.Parameters {
		var paramJson []byte
		if paramJson, err = marshalIndent(param.ToMap()); err != nil {
			return
		}
		if _, err = w.Write(paramJson); err != nil {
			return
		}
	}
	for _, warning := range record.Warnings {
		if _, err = fmt.Fprintln(w, Yellow("Warning: "+warning)); err != nil {
			return
		}
	}
	return
}

func recordMap(record *gwt.CallRecord) map[string]interface{} {
	flags := []string{}
	for _, flag := range record.Flags {
		flags = append(flags, flag.String())
	}
	params := []interface{}{}
	for _, param := range record.Parameters {
		params = append(params, param.ToMap())
	}
	m := map[string]interface{}{
		"version":    record.Version,
		"flags":      flags,
		"url":        record.URL,
		"name":       record.ServiceName,
		"class":      record.ClassName,
		"method":     record.MethodName,
		"parameters": params,
	}
	if len(record.Warnings) > 0 {
		m["warnings"] = record.Warnings
	}
	return m
}

func JSON(w io.Writer, record *gwt.CallRecord) (err error) {
	out, err := marshalIndent(recordMap(record))
	if err != nil {
		return
	}
	_, err = w.Write(out)
	return
}

func YAML(w io.Writer, record *gwt.CallRecord) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(4)
	if err = enc.Encode(recordMap(record)); err != nil {
		return
	}
	err = enc.Close()
	return
}
