package gwt

import (
	"strconv"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("gwt")

//	Parser decodes call strings. Shapes is read and extended in place, so a
//	caller can seed it and keep what was learned.
type Parser struct {
	Verbosity Verbosity
	Shapes    TypeShapes
	Oracle    Oracle
	Log       *logging.Logger
}

//	Parse decodes one call string with a fresh Parser.
func Parse(call string, shapes TypeShapes, verbosity Verbosity, oracle Oracle) (*CallRecord, error) {
	p := &Parser{Verbosity: verbosity, Shapes: shapes, Oracle: oracle}
	return p.Parse(call)
}

func headerInt(data []string, pos int) (n int, err error) {
	if pos >= len(data) {
		err = decodeErr(pos, "", ErrMalformedHeader)
		return
	}
	n, convErr := strconv.Atoi(data[pos])
	if convErr != nil {
		err = decodeErr(pos, "", ErrMalformedHeader)
	}
	return
}

func (p *Parser) Parse(call string) (record *CallRecord, err error) {
	logger := p.Log
	if logger == nil {
		logger = log
	}
	if p.Verbosity == 0 {
		p.Verbosity = DEFAULT
	}
	if p.Shapes == nil {
		p.Shapes = TypeShapes{}
	}

	data := strings.Split(call, "|")
	if data[len(data)-1] == "" {
		data = data[:len(data)-1]
	}

	version, err := headerInt(data, 0)
	if err != nil {
		return
	}
	mask, err := headerInt(data, 1)
	if err != nil {
		return
	}
	tableLen, err := headerInt(data, 2)
	if err != nil {
		return
	}
	if tableLen < 0 || tableLen > len(data)-3 {
		err = decodeErr(2, "", ErrMalformedHeader)
		return
	}
	table := StringTable(data[3 : 3+tableLen])

	decoded, err := decodeTokens(table, data[3+tableLen:], 3+tableLen)
	if err != nil {
		return
	}
	logger.Debugf("decoded %d items for %s.%s", len(decoded.items), decoded.class, decoded.method)

	m := &materializer{
		cur: &cursor{items: decoded.items},
		resolver: &resolver{
			shapes:    p.Shapes,
			verbosity: p.Verbosity,
			oracle:    p.Oracle,
			log:       logger,
		},
	}
	params := []Parameter{}
	for _, paramType := range decoded.paramTypes {
		var param Parameter
		param, err = m.topLevel(paramType)
		if err != nil {
			return
		}
		params = append(params, param)
	}
	if !m.cur.done() {
		logger.Noticef("%d trailing items left after the last parameter", len(m.cur.items)-m.cur.pos)
	}

	record = &CallRecord{
		Version:     version,
		Flags:       ParseFlags(mask),
		URL:         decoded.url,
		ServiceName: decoded.service,
		ClassName:   decoded.class,
		MethodName:  decoded.method,
		Parameters:  params,
		Warnings:    m.warnings,
	}
	return
}
