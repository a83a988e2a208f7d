// Package store keeps generated UUIDs in a MySQL table keyed by their 16 raw
// bytes, so that uniqueness can be checked across processes and hosts.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/Lzww0608/uuid4"
)

// erDupEntry is MySQL's ER_DUP_ENTRY.
const erDupEntry = 1062

var (
	// ErrDuplicate indicates that the UUID is already registered
	ErrDuplicate = errors.New("store: duplicate UUID")

	// ErrInvalidTable indicates a table name that is not a plain identifier
	ErrInvalidTable = errors.New("store: invalid table name")
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Config describes the MySQL connection and pool.
type Config struct {
	DSN             string
	Table           string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	DialTimeout     time.Duration
	Logger          *slog.Logger
}

// DefaultConfig returns the pool tuning used when fields are left zero.
func DefaultConfig() Config {
	return Config{
		Table:           "uuid_registry",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		DialTimeout:     5 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Table == "" {
		c.Table = d.Table
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = d.MaxOpenConns
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = d.MaxIdleConns
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = d.ConnMaxLifetime
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = d.DialTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// driverConfig parses the DSN and applies the settings the registry relies on.
func (c Config) driverConfig() (*mysql.Config, error) {
	mc, err := mysql.ParseDSN(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("store: parse DSN: %w", err)
	}
	if mc.Timeout == 0 {
		mc.Timeout = c.DialTimeout
	}
	mc.ParseTime = true
	return mc, nil
}

// Registry records UUIDs in one table.
type Registry struct {
	db     *sql.DB
	table  string
	logger *slog.Logger
}

// Open connects to MySQL and verifies the connection.
func Open(ctx context.Context, cfg Config) (*Registry, error) {
	cfg = cfg.withDefaults()
	if !tableName.MatchString(cfg.Table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, cfg.Table)
	}

	mc, err := cfg.driverConfig()
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, fmt.Errorf("store: connector: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", mc.Addr, err)
	}

	cfg.Logger.Info("connected to uuid registry", "addr", mc.Addr, "db", mc.DBName, "table", cfg.Table)
	return NewRegistry(db, cfg.Table, cfg.Logger)
}

// NewRegistry wraps an existing database handle.
func NewRegistry(db *sql.DB, table string, logger *slog.Logger) (*Registry, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{db: db, table: table, logger: logger.With("table", table)}, nil
}

// Close closes the underlying database.
func (r *Registry) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the registry table if it does not exist.
func (r *Registry) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS `%s` ("+
			"id BINARY(16) NOT NULL PRIMARY KEY, "+
			"created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)"+
			") ENGINE=InnoDB", r.table))
	if err != nil {
		return fmt.Errorf("store: create table: %w", err)
	}
	return nil
}

// Insert registers id. It returns an error wrapping ErrDuplicate if id is
// already present.
func (r *Registry) Insert(ctx context.Context, id uuid4.UUID) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf("INSERT INTO `%s` (id) VALUES (?)", r.table), id.Bytes())
	if isDuplicate(err) {
		r.logger.Warn("duplicate uuid", "id", id.String())
		return fmt.Errorf("%w: %s", ErrDuplicate, id)
	}
	if err != nil {
		return fmt.Errorf("store: insert %s: %w", id, err)
	}
	return nil
}

// InsertBatch registers ids in a single statement, skipping ones already
// present. It returns how many rows were newly inserted; the difference from
// len(ids) is the number of duplicates.
func (r *Registry) InsertBatch(ctx context.Context, ids []uuid4.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args := batchInsert(r.table, ids)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("store: insert batch of %d: %w", len(ids), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("store: rows affected: %w", err)
	}
	if dup := len(ids) - int(n); dup > 0 {
		r.logger.Warn("duplicates in batch", "batch", len(ids), "duplicates", dup)
	}
	return int(n), nil
}

func batchInsert(table string, ids []uuid4.UUID) (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT IGNORE INTO `%s` (id) VALUES ", table)
	args := make([]any, len(ids))
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString("(?)")
		args[i] = id.Bytes()
	}
	return sb.String(), args
}

// Exists reports whether id is registered.
func (r *Registry) Exists(ctx context.Context, id uuid4.UUID) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT 1 FROM `%s` WHERE id = ?", r.table), id.Bytes()).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("store: lookup %s: %w", id, err)
	}
	return true, nil
}

// Count returns the number of registered UUIDs.
func (r *Registry) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM `%s`", r.table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}

// Recent returns up to limit of the most recently registered UUIDs.
func (r *Registry) Recent(ctx context.Context, limit int) ([]uuid4.UUID, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT id FROM `%s` ORDER BY created_at DESC LIMIT ?", r.table), limit)
	if err != nil {
		return nil, fmt.Errorf("store: recent: %w", err)
	}
	defer rows.Close()

	var ids []uuid4.UUID
	for rows.Next() {
		var id uuid4.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == erDupEntry
}
