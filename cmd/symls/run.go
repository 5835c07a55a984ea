package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/symls-lang/symls/internal/config"
	"github.com/symls-lang/symls/internal/diag"
	"github.com/symls-lang/symls/internal/interp"
	"github.com/symls-lang/symls/internal/preprocess"
	"github.com/symls-lang/symls/internal/repl"
	"github.com/symls-lang/symls/internal/report"
)

func runSymls(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	d := diag.New(os.Stderr)
	d.ConfigLoaded(configPath, configExists(configPath))

	if dumpConfig {
		return config.WriteDefault(cfg.Registry, configPath)
	}

	if len(args) == 0 {
		stdin, stdout, stderr := resolveStreams(cfg)
		repl.Start(cfg.Registry, stdin, stdout, stderr, d)
		return nil
	}

	return runFile(args[0], cfg, d)
}

func configExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func resolvePath(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".symls"
	}
	return name
}

func resolveStreams(cfg config.Config) (stdin io.Reader, stdout, stderr io.Writer) {
	stdin = os.Stdin
	stdout = os.Stdout
	stderr = os.Stderr
	if cfg.IO.InputFile != "" {
		if f, err := os.Open(cfg.IO.InputFile); err == nil {
			stdin = f
		}
	}
	if cfg.IO.OutputFile != "" {
		if f, err := os.Create(cfg.IO.OutputFile); err == nil {
			stdout = f
		}
	}
	if cfg.IO.ErrorFile != "" {
		if f, err := os.Create(cfg.IO.ErrorFile); err == nil {
			stderr = f
		}
	}
	return stdin, stdout, stderr
}

func runFile(path string, cfg config.Config, d *diag.Diag) error {
	srcPath := resolvePath(path)
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("symls: opening %s: %w", srcPath, err)
	}
	defer src.Close()

	result, err := preprocess.Run(src, cfg.Registry)
	if err != nil {
		return fmt.Errorf("symls: preprocessing %s: %w", srcPath, err)
	}

	if err := os.WriteFile(cfg.IO.PreProcessedFile, []byte(result.Normalised), 0o644); err != nil {
		return fmt.Errorf("symls: writing %s: %w", cfg.IO.PreProcessedFile, err)
	}
	d.Preprocessed(cfg.IO.PreProcessedFile, len(result.Normalised), len(result.Subroutines))

	if preprocessOnly {
		return nil
	}

	if dumpSubroutines != "" {
		return printSubroutines(os.Stdout, result.Subroutines, dumpSubroutines)
	}

	stdin, stdout, stderr := resolveStreams(cfg)
	ip := interp.New(cfg.Registry, stdin, stdout, stderr)
	ip.Subroutines = result.Subroutines

	tracing := os.Getenv("SYMLS_TRACE") == "1"
	if tracing {
		ip.Trace = make([]interp.TraceEntry, 0, len(result.Subroutines))
	}

	for _, line := range strings.Split(result.Normalised, "\n") {
		if line == "" {
			continue
		}
		ip.CurrentLine++
		err := ip.Interpret(line)
		if tracing {
			entry := interp.TraceEntry{Line: ip.CurrentLine, Source: line, Outcome: "ok"}
			if err != nil && err != interp.ErrEnd {
				entry.Outcome = report.Kind(err)
			}
			ip.Trace = append(ip.Trace, entry)
		}
		if err == interp.ErrEnd {
			break
		}
		if err != nil {
			report.Fatal(stderr, cfg.Registry, err)
			d.FatalExit(report.Line(err), report.Kind(err))
			// The source's own behaviour is to exit 0 even on a fatal
			// interpreter error; a faithful rewrite preserves that quirk
			// rather than signalling failure to the shell.
			break
		}
	}

	if tracing {
		if err := writeTrace(ip.Trace); err != nil {
			return err
		}
	}

	if dumpVars {
		repr.Println(ip.Store)
	}
	return nil
}

const traceFile = ".symls-trace.yaml"

// writeTrace marshals the line-by-line execution trace for a run started
// with SYMLS_TRACE=1, a debugging aid for students of the interpreter
// itself rather than part of the program's own output contract.
func writeTrace(entries []interp.TraceEntry) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("symls: marshalling trace: %w", err)
	}
	return os.WriteFile(traceFile, data, 0o644)
}

func printSubroutines(w io.Writer, subs map[string][]string, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(subs)
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(subs); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("symls: unknown --dump-subroutines format %q (want yaml or json)", format)
	}
}
