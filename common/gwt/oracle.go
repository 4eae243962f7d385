package gwt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//	Oracle answers the questions the wire format leaves open. Calls block
//	the parse until they return.
type Oracle interface {
	//	FieldCount returns how many fields values of typeTag carry.
	FieldCount(typeTag string) (int, error)
	//	IsObject reports whether value starts a nested object rather than
	//	being a plain string.
	IsObject(value string) (bool, error)
}

//	PromptOracle asks a human on Out and reads answers line by line from In.
type PromptOracle struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func NewPromptOracle(in io.Reader, out io.Writer) *PromptOracle {
	return &PromptOracle{In: in, Out: out}
}

func (o *PromptOracle) readLine() (line string, err error) {
	if o.reader == nil {
		o.reader = bufio.NewReader(o.In)
	}
	line, err = o.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	line = strings.TrimSpace(line)
	return
}

func (o *PromptOracle) FieldCount(typeTag string) (count int, err error) {
	fmt.Fprintf(o.Out, "How many parameters does %s have?: ", typeTag)
	answer, err := o.readLine()
	if err != nil {
		return
	}
	count, err = strconv.Atoi(answer)
	if err != nil {
		err = fmt.Errorf("%q is not a field count", answer)
	}
	return
}

func (o *PromptOracle) IsObject(value string) (isObject bool, err error) {
	fmt.Fprintf(o.Out, "Is %s an object (ie not a string value)? (y/[n]): ", value)
	answer, err := o.readLine()
	if err != nil {
		return
	}
	isObject = answer == "y"
	return
}

//	MapOracle answers from a pre-supplied type map instead of a person.
type MapOracle TypeShapes

func (o MapOracle) FieldCount(typeTag string) (count int, err error) {
	count, ok := o[typeTag]
	if !ok {
		err = fmt.Errorf("no field count known for %s", typeTag)
	}
	return
}

func (o MapOracle) IsObject(value string) (bool, error) {
	_, ok := o[typePrefix(value)]
	return ok, nil
}
