// Package catalog holds the stock symbols served by the suggestion endpoint.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// DefaultSymbols is the NSE symbol list the endpoint ships with, in display
// order.
var DefaultSymbols = []string{
	"RELIANCE", "TCS", "INFY", "HDFCBANK", "ICICIBANK",
	"SBIN", "AXISBANK", "ITC", "WIPRO", "LT",
	"BAJFINANCE", "HCLTECH", "MARUTI", "TATAMOTORS",
	"ADANIENT", "ADANIPORTS", "TITAN", "SUNPHARMA",
	"ONGC", "COALINDIA", "NTPC", "POWERGRID",
	"BPCL", "IOC", "BHARTIARTL", "ASIANPAINT",
	"HINDUNILVR", "ULTRACEMCO", "JSWSTEEL", "VEDL",
}

// Store looks up symbols matching a query.
type Store interface {
	// Search returns every symbol containing the uppercased query, in
	// catalog order. An empty query matches nothing.
	Search(ctx context.Context, query string) ([]string, error)
	Close() error
}

// Match applies the catalog matching rule to an in-memory symbol list.
func Match(symbols []string, query string) []string {
	needle := strings.ToUpper(query)
	if needle == "" {
		return []string{}
	}

	return lo.Filter(symbols, func(symbol string, _ int) bool {
		return strings.Contains(symbol, needle)
	})
}

// MemoryStore serves a fixed symbol list.
type MemoryStore struct {
	symbols []string
}

// NewMemoryStore creates a store over a copy of symbols.
func NewMemoryStore(symbols []string) *MemoryStore {
	return &MemoryStore{symbols: append([]string(nil), symbols...)}
}

// Search implements Store.
func (s *MemoryStore) Search(ctx context.Context, query string) ([]string, error) {
	return Match(s.symbols, query), nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}

// Open creates the store selected by driver. path is only used by sqlite.
func Open(driver, path string, logger *zap.Logger) (Store, error) {
	switch driver {
	case DriverMemory, "":
		return NewMemoryStore(DefaultSymbols), nil
	case DriverSQLite:
		return OpenSQLStore(path, logger)
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", driver)
	}
}
