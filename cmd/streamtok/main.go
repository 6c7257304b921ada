// Command streamtok tokenizes files (or stdin) through the streamio scan
// layer, printing tokens or token counts. It exists both as a demonstration
// of and a workout for the stream and scan packages.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/streamio/internal/sioutil"
	"github.com/jcorbin/streamio/scan"
	"github.com/jcorbin/streamio/stream"
)

type CLI struct {
	Split     string     `name:"split" help:"Tokenizer to use." enum:"lines,words,bytes,runes" default:"lines" env:"STREAMTOK_SPLIT"`
	MaxToken  int        `name:"max-token" help:"Maximum token size in bytes." default:"65536"`
	Buffer    int        `name:"buffer" help:"Initial scan buffer size in bytes." default:"4096"`
	Count     bool       `name:"count" help:"Print a token count per input instead of the tokens."`
	Join      string     `name:"join" help:"Separator printed between tokens; newline when empty." optional:""`
	Label     bool       `name:"label" help:"Prefix every output line with its input name."`
	StrictEnd bool       `name:"strict-end" help:"Fail on a trailing partial token instead of discarding it."`
	Jobs      int        `name:"jobs" short:"j" help:"How many files to scan concurrently." default:"1"`
	Profiles  string     `name:"profiles" help:"Path to a YAML scan profile file." optional:""`
	Profile   string     `name:"profile" help:"Named profile to apply from the profile file." optional:""`
	LogLevel  slog.Level `name:"log-level" help:"Log level." default:"WARN" enum:"DEBUG,INFO,WARN,ERROR"`

	Paths []string `arg:"" optional:"" help:"Input files; stdin when omitted."`
}

func (cli *CLI) initLogger(*kong.Context) *slog.Logger {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{Level: cli.LogLevel})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cli.LogLevel})
	}
	return slog.New(handler)
}

func (cli *CLI) splitFunc() scan.SplitFunc {
	switch cli.Split {
	case "words":
		return scan.ScanWords
	case "bytes":
		return scan.ScanBytes
	case "runes":
		return scan.ScanRunes
	}
	return scan.ScanLines
}

// scanInto tokenizes one input stream into out.
func (cli *CLI) scanInto(out stream.Writer, src stream.Reader, name string, logger *slog.Logger) error {
	if cli.Label && !cli.Count {
		p := sioutil.PrefixWriter(name+": ", out)
		defer p.Close()
		out = p
	}

	sc := scan.NewScanner(src)
	sc.Split(cli.splitFunc())
	sc.Buffer(make([]byte, cli.Buffer), cli.MaxToken)
	sc.StrictEnd(cli.StrictEnd)

	if cli.Count {
		n := 0
		for sc.Scan() {
			n++
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("scan %s: %w", name, err)
		}
		_, err := fmt.Fprintf(out, "%d %s\n", n, name)
		return err
	}

	sep := cli.Join
	if sep == "" {
		sep = "\n"
	}
	n, err := scan.CopyWith(out, sc, []byte(sep))
	logger.Debug("scanned input", slog.String("name", name), slog.Int64("bytes", n))
	if err != nil {
		return fmt.Errorf("scan %s: %w", name, err)
	}
	if n > 0 {
		_, err = out.Write([]byte("\n"))
	}
	return err
}

func (cli *CLI) scanFile(out stream.Writer, path string, logger *slog.Logger) error {
	f, err := stream.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("close failed", slog.String("path", path), slog.Any("error", cerr))
		}
	}()
	return cli.scanInto(out, f, path, logger)
}

func (cli *CLI) run(logger *slog.Logger) error {
	out := &sioutil.ErrWriter{Writer: stream.Stdout()}

	if len(cli.Paths) == 0 {
		in := stream.Stdin()
		err := cli.scanInto(out, in, "stdin", logger)
		if err == nil {
			err = out.Err
		}
		return err
	}

	jobs := cli.Jobs
	if jobs < 1 {
		jobs = 1
	}

	// scan concurrently into per-file buffers, then emit in argument order
	var group errgroup.Group
	group.SetLimit(jobs)
	results := make([]stream.Buffer, len(cli.Paths))
	for i, path := range cli.Paths {
		i, path := i, path
		group.Go(func() error {
			return cli.scanFile(&results[i], path, logger)
		})
	}
	err := group.Wait()
	for i := range results {
		if _, werr := sioutil.WriteFull(out, results[i].Bytes()); werr != nil {
			break
		}
	}
	if err == nil {
		err = out.Err
	}
	return err
}

func main() {
	var cli CLI
	kongCtx := kong.Parse(&cli)
	logger := cli.initLogger(kongCtx)
	kongCtx.FatalIfErrorf(cli.applyProfile(logger))
	if err := cli.run(logger); err != nil {
		logger.Error("streamtok failed", slog.Any("error", err))
		os.Exit(1)
	}
}
