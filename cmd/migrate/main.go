package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/lib/pq"

	"life-dashboard/internal/infrastructure/config"
	"life-dashboard/internal/infrastructure/logger"
)

const versionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	migrationsPath := flag.String("dir", "db/migrations", "path to migrations directory")
	flag.Parse()

	cfg, err := config.LoadFromFile(*cfgPath)
	if err != nil {
		fatal(slog.Default(), "讀取組態失敗", err)
	}
	log := logger.New(cfg.Log)

	if cfg.DB.DSN == "" {
		fatal(log, "config.db.dsn 未設定，無法執行 migration", nil)
	}

	files, err := migrationFiles(*migrationsPath)
	if err != nil {
		fatal(log, "讀取 migrations 失敗", err)
	}

	db, err := sql.Open("postgres", cfg.DB.DSN)
	if err != nil {
		fatal(log, "連線資料庫失敗", err)
	}
	defer db.Close()

	applied, err := apply(db, files, log)
	if err != nil {
		fatal(log, "執行 migration 失敗", err)
	}
	fmt.Printf("Migration 完成，新套用 %d 個檔案\n", applied)
}

// migrationFiles 依檔名排序回傳目錄下的 .sql 檔案。
func migrationFiles(dir string) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absDir); err != nil {
		return nil, err
	}
	files, err := filepath.Glob(filepath.Join(absDir, "*.sql"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .sql migration files in %s", absDir)
	}
	sort.Strings(files)
	return files, nil
}

// apply 依序執行尚未套用的檔案，每個檔案與版本紀錄在同一個交易內。
func apply(db *sql.DB, files []string, log *slog.Logger) (int, error) {
	if _, err := db.Exec(versionTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	count := 0
	for _, f := range files {
		version := filepath.Base(f)
		var exists bool
		if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists); err != nil {
			return count, fmt.Errorf("check %s: %w", version, err)
		}
		if exists {
			log.Debug("migration already applied", "version", version)
			continue
		}
		body, err := os.ReadFile(f)
		if err != nil {
			return count, fmt.Errorf("read %s: %w", version, err)
		}
		log.Info("applying migration", "version", version)
		tx, err := db.Begin()
		if err != nil {
			return count, err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return count, fmt.Errorf("exec %s: %w", version, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			_ = tx.Rollback()
			return count, fmt.Errorf("record %s: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func fatal(log *slog.Logger, msg string, err error) {
	if err != nil {
		log.Error(msg, "error", err)
	} else {
		log.Error(msg)
	}
	os.Exit(1)
}
