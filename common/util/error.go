package util

import (
	"fmt"
)

var ErrNoCallString = fmt.Errorf("No RPC string given. Pass the GWT-RPC request body as the first argument.")
var ErrBadClasses = fmt.Errorf("Could not read the classes map. Pass a JSON object of type names to field counts, e.g. '{\"com.example.Person\": 2}'.")
var ErrUnknownFormat = fmt.Errorf("Unknown output format. Use \"text\", \"json\" or \"yaml\".")
