package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/psanodiya94/doxygen-comment-generator/internal/config"
	"github.com/psanodiya94/doxygen-comment-generator/internal/log"
	"github.com/psanodiya94/doxygen-comment-generator/internal/processor"
	"github.com/psanodiya94/doxygen-comment-generator/internal/reporter"
)

var (
	version = "1.0.0"
)

func main() {
	// Define flags
	fileFlag := flag.String("f", "", "Process a single C++ file")
	dirFlag := flag.String("d", "", "Process all C++ files in a directory")
	projectFlag := flag.String("p", "", "Process the standard source directories of a project root")
	outputFlag := flag.String("o", "", "Output file (with -f) or directory (with -d/-p) instead of rewriting in place")
	dryRunFlag := flag.Bool("dry-run", false, "Analyze files without writing any changes")
	enhanceFlag := flag.Bool("enhance-existing", false, "Keep existing Doxygen comments instead of skipping commented declarations")
	noRecursiveFlag := flag.Bool("no-recursive", false, "Do not descend into subdirectories")
	excludeFlag := flag.String("exclude", "", "Comma-separated list of directories to exclude (e.g., vendor,third_party)")
	jsonFlag := flag.Bool("json", false, "Output results in JSON format")
	configFlag := flag.String("config", "", "Path to a config file (default: .doxygenrc.yaml if present)")
	verboseFlag := flag.Bool("v", false, "Enable verbose logging")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show help message")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: doxygen-gen [options]\n\n")
		fmt.Fprintf(os.Stderr, "C++ Doxygen Comment Generator - Adds Doxygen comment blocks to C++ declarations\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  doxygen-gen -f include/widget.h          Comment a single header in place\n")
		fmt.Fprintf(os.Stderr, "  doxygen-gen -d src -o commented          Comment ./src into ./commented\n")
		fmt.Fprintf(os.Stderr, "  doxygen-gen -p . -dry-run                Analyze a project without writing\n")
		fmt.Fprintf(os.Stderr, "  doxygen-gen -d tests -json > report.json Emit a JSON report\n")
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("doxygen-gen version %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override config file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "enhance-existing":
			cfg.EnhanceExisting = *enhanceFlag
		case "no-recursive":
			cfg.Recursive = !*noRecursiveFlag
		case "dry-run":
			cfg.DryRun = *dryRunFlag
		case "o":
			cfg.OutputDir = *outputFlag
		case "json":
			cfg.JSON = *jsonFlag
		case "v":
			cfg.Verbose = *verboseFlag
		}
	})
	if *excludeFlag != "" {
		for _, e := range strings.Split(*excludeFlag, ",") {
			if e = strings.TrimSpace(e); e != "" {
				cfg.Exclude = append(cfg.Exclude, e)
			}
		}
	}

	log.SetVerbose(cfg.Verbose)
	defer log.Sync()

	targets := 0
	for _, t := range []string{*fileFlag, *dirFlag, *projectFlag} {
		if t != "" {
			targets++
		}
	}
	if targets != 1 {
		fmt.Fprintln(os.Stderr, "Error: Exactly one of -f, -d or -p must be given")
		fmt.Fprintln(os.Stderr, "Run 'doxygen-gen --help' for usage")
		os.Exit(1)
	}

	proc := processor.New(processor.Options{
		EnhanceExisting: cfg.EnhanceExisting,
		Recursive:       cfg.Recursive,
		DryRun:          cfg.DryRun,
		OutputDir:       cfg.OutputDir,
		Exclude:         cfg.Exclude,
	})

	var results []processor.Result
	switch {
	case *fileFlag != "":
		results = []processor.Result{proc.ProcessFile(*fileFlag, "")}
	case *dirFlag != "":
		results, err = proc.ProcessDirectory(*dirFlag)
	case *projectFlag != "":
		results, err = proc.ProcessProject(*projectFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r := reporter.NewReporter(os.Stdout, cfg.JSON)
	if err := r.Report(results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	for _, res := range results {
		if !res.OK {
			os.Exit(1)
		}
	}
}
