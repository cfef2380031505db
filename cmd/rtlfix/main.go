// Command rtlfix rewrites right-to-left text segments in audio file
// names and metadata tags, so that players which render text in file
// order display Hebrew, Arabic and other RTL scripts legibly.
// It processes a folder recursively and can remove substrings from file
// names, reverse RTL segments in names and tags, back up files before
// touching them, and restore from such backups.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/rtlfix/internal/backup"
	"github.com/npillmayer/rtlfix/internal/batch"
	"github.com/npillmayer/rtlfix/script"
	"github.com/npillmayer/rtlfix/tagio"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	remove := flag.String("remove", "", "substring to remove from file names")
	reverseRTL := flag.Bool("reverse-rtl", false, "reverse RTL segments in file names")
	reverseTags := flag.Bool("reverse-tags", false, "reverse RTL segments in metadata tags")
	dryRun := flag.Bool("dry-run", false, "show what would be done without changing any file")
	backupDir := flag.String("backup-dir", "", "create backups in this directory before modifications")
	restore := flag.String("restore-backup", "", "restore from backup: a timestamp, or 'latest'")
	jobs := flag.Int("jobs", 1, "number of files to process in parallel")
	check := flag.Bool("check", false, "print backend capabilities and locale, then exit")
	trace := flag.String("trace", "Info", "trace level: Debug, Info or Error")
	flag.Usage = usage
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	setTraceLevel(*trace)

	if *check {
		printCheck()
		return 0
	}
	if *restore != "" {
		if *backupDir == "" {
			fmt.Fprintln(os.Stderr, "rtlfix: --restore-backup requires --backup-dir")
			return 1
		}
		stamp := *restore
		if stamp == "latest" {
			stamp = ""
		}
		n, err := backup.Restore(*backupDir, stamp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rtlfix: %v\n", err)
			return 1
		}
		fmt.Printf("Restored %d file(s)\n", n)
		return 0
	}
	if flag.NArg() != 1 {
		usage()
		return 1
	}
	folder := flag.Arg(0)
	if *remove == "" && !*reverseRTL && !*reverseTags {
		fmt.Fprintln(os.Stderr,
			"rtlfix: at least one operation (--remove, --reverse-rtl or --reverse-tags) must be given")
		return 1
	}

	if ctx := script.ContextFromEnvironment(); ctx.Cat.IsRTL() {
		gtrace.CoreTracer.Infof("locale %s is written in %s", ctx.Locale, ctx.Cat)
	}
	progress := term.IsTerminal(int(os.Stderr.Fd())) && !strings.EqualFold(*trace, "debug")

	collector, err := batch.Run(folder, batch.Options{
		Remove:       *remove,
		ReverseNames: *reverseRTL,
		ReverseTags:  *reverseTags,
		DryRun:       *dryRun,
		BackupDir:    *backupDir,
		Jobs:         *jobs,
		Progress:     progress,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rtlfix: %v\n", err)
		return 1
	}
	if collector.FilesProcessed() == 0 {
		fmt.Printf("No audio files found in %s\n", folder)
		return 0
	}
	fmt.Println(collector.Report())
	return 0
}

func printCheck() {
	fmt.Println("Tag backends:")
	for _, s := range tagio.Doctor() {
		mode := "unsupported"
		switch {
		case s.Write:
			mode = "read-write"
		case s.Read:
			mode = "read-only"
		}
		fmt.Printf("  %-5s %-6s %-12s %s\n", s.Format, s.Ext, mode, s.Note)
	}
	ctx := script.ContextFromEnvironment()
	if ctx.Cat.IsRTL() {
		fmt.Printf("Locale %s is written in %s, a script this tool rewrites.\n", ctx.Locale, ctx.Cat)
	} else {
		fmt.Printf("Locale %s is not written in a supported RTL script.\n", ctx.Locale)
	}
}

func setTraceLevel(name string) {
	switch strings.ToLower(name) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: rtlfix [options] <folder>\n\n")
	fmt.Fprintf(out, "Rewrites RTL text segments in audio file names and tags for players\n")
	fmt.Fprintf(out, "that render them in file order.\n\nOptions:\n")
	flag.PrintDefaults()
}
