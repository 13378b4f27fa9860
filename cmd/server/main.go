package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "daftar/internal/adapters/email"
	web "daftar/internal/adapters/http"
	"daftar/internal/adapters/http/perf"
	"daftar/internal/adapters/storage"
	accountStore "daftar/internal/adapters/storage/account"
	contactStore "daftar/internal/adapters/storage/contact"
	"daftar/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("DAFTAR_DB", "daftar.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore: acctStore,
		ContactStore: contactStore.NewSQLiteStore(timedDB),
	}

	// Seed the operator account if no accounts exist
	adminEmail := envOrDefault("DAFTAR_ADMIN_EMAIL", "owner@daftar.local")
	adminPassword := envOrDefault("DAFTAR_ADMIN_PASSWORD", "change me soon")
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed operator account: %v", err)
	}

	// Configure email sender for export backups
	resendKey := os.Getenv("DAFTAR_RESEND_KEY")
	backupTo := os.Getenv("DAFTAR_BACKUP_EMAIL")
	if resendKey != "" {
		from := envOrDefault("DAFTAR_RESEND_FROM", "Daftar <noreply@daftar.local>")
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, from), backupTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), backupTo)
		log.Println("Email sender configured (noop — set DAFTAR_RESEND_KEY for real delivery)")
	}

	mux := web.NewMux("static", stores, collector)

	addr := envOrDefault("DAFTAR_ADDR", ":8080")
	log.Printf("Daftar %s starting on %s (env=%s)", version, addr, envOrDefault("DAFTAR_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
