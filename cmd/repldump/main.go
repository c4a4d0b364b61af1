package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Jason881/sqlmap/internal/export"
	"github.com/Jason881/sqlmap/internal/replication"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: repldump <tables|dump>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "tables":
		cmdTables(os.Args[2:])
	case "dump":
		cmdDump(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: repldump <tables|dump>\n", os.Args[1])
		os.Exit(1)
	}
}

func cmdTables(args []string) {
	fs := flag.NewFlagSet("tables", flag.ExitOnError)
	dbPath := fs.String("db", "", "path to replication SQLite file")
	fs.Parse(args)

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -db is required")
		fs.Usage()
		os.Exit(1)
	}

	r, err := replication.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open replication file", "error", err)
		os.Exit(1)
	}
	defer r.Close()

	names, err := r.TableNames()
	if err != nil {
		slog.Error("failed to list tables", "error", err)
		os.Exit(1)
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	dbPath := fs.String("db", "", "path to replication SQLite file")
	table := fs.String("table", "", "table to dump")
	outPath := fs.String("out", "", "output CSV file (default: stdout)")
	where := fs.String("where", "", "optional raw SQL condition")
	fs.Parse(args)

	if *dbPath == "" || *table == "" {
		fmt.Fprintln(os.Stderr, "Error: -db and -table are required")
		fs.Usage()
		os.Exit(1)
	}

	r, err := replication.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open replication file", "error", err)
		os.Exit(1)
	}
	defer r.Close()

	rows, err := r.Table(*table, nil).Select(*where)
	if err != nil {
		slog.Error("failed to select rows", "table", *table, "error", err)
		os.Exit(1)
	}
	defer rows.Close()

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			slog.Error("failed to create output file", "path", *outPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	n, err := export.WriteCSV(out, rows)
	if err != nil {
		slog.Error("failed to export table", "table", *table, "error", err)
		os.Exit(1)
	}

	if *outPath != "" {
		slog.Info("table exported", "table", *table, "rows", n, "path", *outPath)
	}
}
