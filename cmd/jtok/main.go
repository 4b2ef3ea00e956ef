package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/term"

	"github.com/augurmark/jtok"
	"github.com/augurmark/jtok/internal/simdhint"
)

var version = "dev"

type tokenRecord struct {
	Kind  string
	Depth int
	Line  int
	Col   int
	Value string
}

func parseOptions(args []string) (opts struct {
	File     string `short:"f" long:"file" description:"Read JSON from the file, rather than stdin" value-name:"path" default:"-"`
	Comments string `long:"comments" description:"Comment tolerance: default, allow, skip" value-name:"mode" default:"default"`
	MaxDepth uint   `long:"max-depth" description:"Maximum container nesting depth" value-name:"depth" default:"64"`
	Config   string `long:"config" description:"YAML file overriding comments/max-depth"`
	CPUInfo  bool   `long:"cpu-info" description:"Print detected CPU scanning capability and exit"`
	Version  bool   `long:"version" description:"Show this version"`
	Help     bool   `long:"help" description:"Show this help"`
}, rest []string) {
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	return opts, rest
}

func main() {
	opts, _ := parseOptions(os.Args[1:])

	if opts.CPUInfo {
		fmt.Println(simdhint.Summary())
		os.Exit(0)
	}

	options := jtok.Options{MaxDepth: int(opts.MaxDepth)}
	switch strings.ToLower(opts.Comments) {
	case "", "default":
		options.Comments = jtok.Default
	case "allow":
		options.Comments = jtok.AllowComments
	case "skip":
		options.Comments = jtok.SkipComments
	default:
		fmt.Printf("unknown --comments mode %q\n", opts.Comments)
		os.Exit(1)
	}

	if opts.Config != "" {
		fileOpts, err := loadConfig(opts.Config)
		if err != nil {
			log.Fatal(err)
		}
		options = fileOpts
	}

	var src io.Reader = os.Stdin
	if opts.File != "" && opts.File != "-" {
		f, err := os.Open(opts.File)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		src = f
	}

	if strings.HasSuffix(opts.File, ".gz") {
		gz, err := gzip.NewReader(bufio.NewReader(src))
		if err != nil {
			log.Fatal(err)
		}
		defer gz.Close()
		src = gz
	}

	buf, err := io.ReadAll(src)
	if err != nil {
		log.Fatal(err)
	}

	records, err := tokenize(buf, options)
	if err != nil {
		log.Fatal(err)
	}

	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	printer := pp.New()
	printer.SetColoringEnabled(pretty)
	for _, rec := range records {
		printer.Println(rec)
	}
}

// tokenize drains a Reader constructed over the whole buffer -- the CLI
// always has the complete document in memory, so it never needs to
// Snapshot/resume.
func tokenize(buf []byte, options jtok.Options) ([]tokenRecord, error) {
	r := jtok.NewReader(buf, true, options, nil)
	var records []tokenRecord
	for {
		ok, err := r.Advance()
		if err != nil {
			return records, err
		}
		if !ok {
			return records, nil
		}
		rec := tokenRecord{
			Kind:  r.TokenKind().String(),
			Depth: r.Depth(),
			Line:  r.Line(),
			Col:   r.Column(),
		}
		if r.TokenKind().HasValue() {
			if r.TokenKind() == jtok.String || r.TokenKind() == jtok.PropertyName {
				s, err := r.AsString()
				if err != nil {
					return records, err
				}
				rec.Value = s
			} else {
				rec.Value = string(r.ValueSlice())
			}
		}
		records = append(records, rec)
	}
}
