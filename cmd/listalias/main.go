// cmd/listalias/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sghaida/listalias/demo"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// run executes the demonstration and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("listalias", flag.ContinueOnError)
	flags.SetOutput(stderr)

	modeFlag := flags.String("mode", string(demo.ModeAlias), "how the second binding is made: alias|copy")
	format := flags.String("format", formatText, "output format: text|yaml")
	verbose := flags.Bool("v", false, "debug logging on stderr")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintln(stderr, "usage: listalias [-mode alias|copy] [-format text|yaml] [-v]")
		return 2
	}

	mode, err := demo.ParseMode(*modeFlag)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	var write func(demo.Report, io.Writer) error
	switch *format {
	case formatText:
		write = demo.Report.WriteText
	case formatYAML:
		write = demo.Report.WriteYAML
	default:
		_, _ = fmt.Fprintf(stderr, "listalias: unknown format %q\n", *format)
		return 2
	}

	level := zapcore.WarnLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	log := newLogger(stderr, level)
	defer func() { _ = log.Sync() }()

	report, err := demo.Run(log, mode)
	if err != nil {
		log.Error("demo failed", zap.Error(err))
		return 1
	}
	if err := write(report, stdout); err != nil {
		log.Error("writing report failed", zap.Error(err))
		return 1
	}
	return 0
}

// newLogger builds a development-style console logger writing to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
