package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Symbol is one row of the catalog table.
type Symbol struct {
	ID       uint   `gorm:"primarykey"`
	Name     string `gorm:"uniqueIndex"`
	Position int    `gorm:"index"`
}

// SQLStore keeps the catalog in a sqlite database.
type SQLStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// OpenSQLStore opens (or creates) the catalog database at path and seeds it
// with DefaultSymbols when the table is empty.
func OpenSQLStore(path string, logger *zap.Logger) (*SQLStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite catalog requires a path")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		if db != nil {
			closeDB(db)
		}
		return nil, fmt.Errorf("error opening catalog database: %w", err)
	}

	store := &SQLStore{db: db, logger: logger}
	if err := store.init(path); err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}

// init migrates the schema and seeds an empty table.
func (s *SQLStore) init(path string) error {
	if err := s.db.AutoMigrate(&Symbol{}); err != nil {
		return fmt.Errorf("error auto-migrating catalog schema: %w", err)
	}

	var count int64
	if err := s.db.Model(&Symbol{}).Count(&count).Error; err != nil {
		return fmt.Errorf("error counting catalog symbols: %w", err)
	}
	if count == 0 {
		if err := s.Add(context.Background(), DefaultSymbols...); err != nil {
			return err
		}
		s.logger.Info("seeded catalog", zap.String("path", path), zap.Int("symbols", len(DefaultSymbols)))
	}

	return nil
}

// Add appends symbols after the current last position. Names are
// uppercased; duplicates are rejected by the unique index.
func (s *SQLStore) Add(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	var last struct{ Max int }
	if err := s.db.WithContext(ctx).Model(&Symbol{}).Select("COALESCE(MAX(position), 0) AS max").Scan(&last).Error; err != nil {
		return fmt.Errorf("error reading catalog position: %w", err)
	}

	rows := make([]Symbol, len(names))
	for i, name := range names {
		rows[i] = Symbol{Name: strings.ToUpper(name), Position: last.Max + i + 1}
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("error adding catalog symbols: %w", err)
	}
	return nil
}

// Search implements Store.
func (s *SQLStore) Search(ctx context.Context, query string) ([]string, error) {
	needle := strings.ToUpper(query)
	if needle == "" {
		return []string{}, nil
	}

	names := []string{}
	result := s.db.WithContext(ctx).
		Model(&Symbol{}).
		Where(`name LIKE ? ESCAPE '\'`, "%"+escapeLike(needle)+"%").
		Order("position").
		Pluck("name", &names)
	if result.Error != nil {
		return nil, fmt.Errorf("error searching catalog: %w", result.Error)
	}
	if names == nil {
		names = []string{}
	}

	return names, nil
}

// Close implements Store.
func (s *SQLStore) Close() error {
	return closeDB(s.db)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
