package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	lru "github.com/hashicorp/golang-lru"
	"github.com/urfave/cli"

	"krypt.co/gwt/common/gwt"
	. "krypt.co/gwt/common/persistance"
	"krypt.co/gwt/common/render"
	. "krypt.co/gwt/common/util"
	"krypt.co/gwt/common/version"
)

const BATCH_CACHE_SIZE = 256

type options struct {
	verbosity gwt.Verbosity
	shapes    gwt.TypeShapes
	format    string
	save      bool
	copy      bool
	persister Persister
}

func verbosityFromFlags(c *cli.Context) gwt.Verbosity {
	switch {
	case c.GlobalBool("s"):
		return gwt.SILENT
	case c.GlobalBool("v"):
		return gwt.VERBOSE
	case c.GlobalBool("vv"):
		return gwt.VVERBOSE
	}
	return gwt.DEFAULT
}

func parseClasses(classes string) (shapes gwt.TypeShapes, err error) {
	shapes = gwt.TypeShapes{}
	if classes == "" {
		return
	}
	if jsonErr := json.Unmarshal([]byte(classes), &shapes); jsonErr != nil {
		err = ErrBadClasses
		return
	}
	for _, count := range shapes {
		if count < 0 {
			err = ErrBadClasses
			return
		}
	}
	return
}

func loadOptions(c *cli.Context) (opts options, err error) {
	opts = options{
		verbosity: verbosityFromFlags(c),
		format:    c.GlobalString("format"),
		save:      c.GlobalBool("save"),
		copy:      c.GlobalBool("copy"),
		shapes:    gwt.TypeShapes{},
	}
	if opts.save {
		var fp FilePersister
		if fp, err = DefaultPersister(); err != nil {
			return
		}
		opts.persister = fp
		if opts.shapes, err = fp.LoadShapes(); err != nil {
			return
		}
	}
	classes, err := parseClasses(c.GlobalString("classes"))
	if err != nil {
		return
	}
	for tag, count := range classes {
		opts.shapes[tag] = count
	}
	return
}

func newParser(opts options, oracle gwt.Oracle) *gwt.Parser {
	p := &gwt.Parser{
		Verbosity: opts.verbosity,
		Shapes:    opts.shapes,
		Log:       log,
	}
	if opts.verbosity != gwt.SILENT && oracle != nil {
		p.Oracle = oracle
	}
	return p
}

func checkWireVersion(record *gwt.CallRecord) {
	if !version.KnownWireVersion(record.Version) {
		log.Noticef("unfamiliar wire version %d, decoding anyway", record.Version)
	}
}

func saveShapes(opts options) (err error) {
	if !opts.save || opts.persister == nil {
		return
	}
	err = opts.persister.SaveShapes(opts.shapes)
	return
}

func parseCommand(c *cli.Context) (err error) {
	call := c.Args().First()
	if call == "" {
		PrintFatal(os.Stderr, "%v", ErrNoCallString)
	}
	opts, err := loadOptions(c)
	if err != nil {
		PrintFatal(os.Stderr, "%v", err)
	}
	err = parseOver(call, opts, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		PrintFatal(os.Stderr, "%v", err)
	}
	return
}

//	parseOver decodes a single call, asking questions on stderr and reading
//	the answers from stdin.
func parseOver(call string, opts options, stdin io.Reader, stdout io.Writer, stderr io.Writer) (err error) {
	p := newParser(opts, gwt.NewPromptOracle(stdin, stderr))
	record, err := p.Parse(strings.TrimSpace(call))
	if err != nil {
		err = fmt.Errorf("Could not parse RPC string: %v", err)
		return
	}
	checkWireVersion(record)

	out := &bytes.Buffer{}
	if err = render.Write(out, record, opts.format); err != nil {
		return
	}
	if _, err = stdout.Write(out.Bytes()); err != nil {
		return
	}
	if opts.copy {
		if copyErr := clipboard.WriteAll(out.String()); copyErr != nil {
			PrintErr(stderr, Yellow("Could not copy to clipboard: "+copyErr.Error()))
		} else {
			PrintErr(stderr, Green("Copied to clipboard ✔"))
		}
	}
	err = saveShapes(opts)
	return
}

func batchCommand(c *cli.Context) (err error) {
	path := c.Args().First()
	if path == "" {
		PrintFatal(os.Stderr, "Usage: gwtparse batch FILE")
	}
	opts, err := loadOptions(c)
	if err != nil {
		PrintFatal(os.Stderr, "%v", err)
	}

	var in io.Reader
	var oracleIn io.Reader = os.Stdin
	if path == "-" {
		in = os.Stdin
		oracleIn = nil
	} else {
		f, openErr := os.Open(path)
		if openErr != nil {
			PrintFatal(os.Stderr, "%v", openErr)
		}
		defer f.Close()
		in = f
	}
	err = batchOver(in, opts, oracleIn, os.Stdout, os.Stderr)
	if err != nil {
		PrintFatal(os.Stderr, "%v", err)
	}
	return
}

//	batchOver decodes every non-empty line of in with one shape map carried
//	across lines. With a nil oracleIn nothing is asked interactively.
func batchOver(in io.Reader, opts options, oracleIn io.Reader, stdout io.Writer, stderr io.Writer) (err error) {
	var oracle gwt.Oracle
	if oracleIn != nil {
		oracle = gwt.NewPromptOracle(oracleIn, stderr)
	}
	p := newParser(opts, oracle)

	//	without an oracle the result only depends on the line and the seed
	var memo *lru.Cache
	if opts.verbosity == gwt.SILENT {
		if memo, err = lru.New(BATCH_CACHE_SIZE); err != nil {
			return
		}
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo, total, failed := 0, 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++

		var record *gwt.CallRecord
		if memo != nil {
			if cached, ok := memo.Get(line); ok {
				record = cached.(*gwt.CallRecord)
				log.Debugf("line %d: reusing decoded call", lineNo)
			}
		}
		if record == nil {
			var parseErr error
			ok := RecoverToLog(func() {
				record, parseErr = p.Parse(line)
			}, log)
			if !ok {
				parseErr = fmt.Errorf("decoder panicked")
			}
			if parseErr != nil {
				failed++
				PrintErr(stderr, Red(fmt.Sprintf("line %d: %v", lineNo, parseErr)))
				continue
			}
			checkWireVersion(record)
			if memo != nil {
				memo.Add(line, record)
			}
		}

		if err = render.Write(stdout, record, opts.format); err != nil {
			return
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if err = saveShapes(opts); err != nil {
		return
	}
	if failed > 0 {
		err = fmt.Errorf("%d of %d calls could not be parsed", failed, total)
	}
	return
}

func classesCommand(c *cli.Context) (err error) {
	fp, err := DefaultPersister()
	if err != nil {
		PrintFatal(os.Stderr, "%v", err)
	}
	err = printClasses(fp, os.Stdout)
	if err != nil {
		PrintFatal(os.Stderr, "%v", err)
	}
	return
}

func printClasses(persister Persister, stdout io.Writer) (err error) {
	shapes, err := persister.LoadShapes()
	if err != nil {
		return
	}
	shapesJson, err := json.MarshalIndent(shapes, "", "    ")
	if err != nil {
		return
	}
	_, err = stdout.Write(append(shapesJson, '\n'))
	return
}

func classesClearCommand(c *cli.Context) (err error) {
	fp, err := DefaultPersister()
	if err != nil {
		PrintFatal(os.Stderr, "%v", err)
	}
	err = fp.DeleteShapes()
	if err != nil {
		PrintFatal(os.Stderr, "%v", err)
	}
	PrintErr(os.Stderr, Green("Saved classes cleared ✔"))
	return
}
