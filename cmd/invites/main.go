package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"weddingrsvp/internal/config"
	"weddingrsvp/internal/database"
	"weddingrsvp/internal/repository"
	"weddingrsvp/internal/service"
	"weddingrsvp/internal/sms"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: invites_YYYYMMDD_HHMMSS.csv)")

	// Import flags
	importInput := importCmd.String("input", "", "Input CSV file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// The CLI never sends messages, so the sender stays unconfigured
	inviteRepo := repository.NewInviteRepository(db)
	sender := sms.NewTwilioSender("", "", "", "")
	inviteService := service.NewInviteService(inviteRepo, sender, cfg.SiteBaseURL)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(inviteService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(inviteService, *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(inviteService *service.InviteService, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("invites_%s.csv", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	csv, err := inviteService.ExportCSV()
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	if err := os.WriteFile(outputPath, []byte(csv+"\n"), 0644); err != nil {
		log.Fatalf("Failed to write export file: %v", err)
	}

	log.Printf("Export complete: %s", outputPath)
}

func handleImport(inviteService *service.InviteService, inputPath string) {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	result, err := inviteService.ImportCSV(string(content))
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import complete: %d invites imported, %d rows skipped", result.Imported, result.Rejected)
}

func printUsage() {
	fmt.Println("Wedding RSVP Invite Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  invites export [options]    Export the invite list to a CSV file")
	fmt.Println("  invites import [options]    Import draft invites from a CSV file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: invites_YYYYMMDD_HHMMSS.csv)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input CSV file path (required)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Export the invite list")
	fmt.Println("  invites export")
	fmt.Println("  invites export -output guests.csv")
	fmt.Println()
	fmt.Println("  # Import draft invites")
	fmt.Println("  invites import -input guests.csv")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE          Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./wedding.db)")
	fmt.Println("  DB_URL           PostgreSQL or MySQL connection URL")
	fmt.Println("  SITE_BASE_URL    Public site URL used to build invite links")
}
