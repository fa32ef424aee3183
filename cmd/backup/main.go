package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"learnquest/internal/app"
	"learnquest/internal/config"
	"learnquest/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()

	stores, closeStores, err := app.OpenStores(cfg)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	defer closeStores()

	backup := service.NewBackupService(stores)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "export":
		exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
		out := exportCmd.String("out", defaultSnapshotName(), "path of the snapshot file to write")
		exportCmd.Parse(os.Args[2:])

		if _, err := backup.Export(ctx, *out); err != nil {
			log.Fatalf("Export failed: %v", err)
		}

	case "import":
		importCmd := flag.NewFlagSet("import", flag.ExitOnError)
		in := importCmd.String("in", "", "path of the snapshot file to restore")
		importCmd.Parse(os.Args[2:])

		if *in == "" {
			log.Fatal("import requires -in <snapshot.json>")
		}
		if _, err := backup.Import(ctx, *in); err != nil {
			log.Fatalf("Import failed: %v", err)
		}

	default:
		usage()
		os.Exit(1)
	}
}

func defaultSnapshotName() string {
	return fmt.Sprintf("learnquest-%s.json", time.Now().UTC().Format("2006-01-02"))
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: backup <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  export -out <file>   write every collection to a JSON snapshot")
	fmt.Fprintln(os.Stderr, "  import -in <file>    restore a snapshot into the configured store")
}
