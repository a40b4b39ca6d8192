package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkamnerd/linkdesk/pkg/adapters/repository/sqlite"
	"github.com/pkamnerd/linkdesk/pkg/config"
	"github.com/pkamnerd/linkdesk/pkg/core/domain"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "JSON file to import")

	if len(os.Args) < 2 {
		fmt.Println("expected 'export' or 'import' subcommands")
		os.Exit(1)
	}

	cfg := config.Load("shorturl")
	repo, err := sqlite.NewLinkRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		doExport(repo)
	case "import":
		importCmd.Parse(os.Args[2:])
		if *importFile == "" {
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		doImport(repo, *importFile)
	default:
		fmt.Println("expected 'export' or 'import' subcommands")
		os.Exit(1)
	}
}

func doExport(repo *sqlite.LinkRepository) {
	links, err := repo.Dump(context.Background())
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(links); err != nil {
		log.Fatalf("Encode failed: %v", err)
	}
}

func doImport(repo *sqlite.LinkRepository, filename string) {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer file.Close()

	var links []domain.ShortLink
	if err := json.NewDecoder(file).Decode(&links); err != nil {
		log.Fatalf("Decode failed: %v", err)
	}

	ctx := context.Background()
	count := 0
	for _, l := range links {
		// short_id is unique, so records already present are skipped
		// rather than upserted; imported rows get fresh row ids.
		l.ID = 0
		err := repo.Insert(ctx, &l)
		if errors.Is(err, domain.ErrConflict) {
			log.Printf("Skipping existing code: %s", l.ShortID)
			continue
		}
		if err != nil {
			log.Printf("Failed to import %s: %v", l.ShortID, err)
			continue
		}
		count++
	}
	log.Printf("Imported %d links", count)
}
