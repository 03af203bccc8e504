// Package history turns the raw deposit and withdraw arrays stored on an
// account into a uniform, time-ordered activity feed.
package history

import (
	"encoding/json"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// DefaultLimit is the size of the recent activity feed.
const DefaultLimit = 10

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// Aliased field names, first present wins.
var (
	amountFields = []string{"amount", "amt", "value"}
	timeFields   = []string{"createdAt", "at"}
)

// Normalize converts raw history items into ledger entries of the given type.
// Items may be numbers, strings embedding an amount, maps in any of the
// historical shapes, or canonical entries. Nil and unsupported items are
// dropped. Normalize never fails.
func Normalize(raw []any, typ models.EntryType) []models.LedgerEntry {
	out := make([]models.LedgerEntry, 0, len(raw))
	for _, item := range raw {
		entry, ok := normalizeItem(item)
		if !ok {
			continue
		}
		entry.Type = typ
		out = append(out, entry)
	}
	return out
}

// NormalizeEntries re-normalizes entries that are already canonical.
func NormalizeEntries(entries []models.LedgerEntry, typ models.EntryType) []models.LedgerEntry {
	raw := make([]any, len(entries))
	for i, e := range entries {
		raw[i] = e
	}
	return Normalize(raw, typ)
}

func normalizeItem(item any) (models.LedgerEntry, bool) {
	switch v := item.(type) {
	case nil:
		return models.LedgerEntry{}, false
	case models.LedgerEntry:
		return v, true
	case *models.LedgerEntry:
		if v == nil {
			return models.LedgerEntry{}, false
		}
		return *v, true
	case string:
		amount := 0.0
		if m := numberPattern.FindString(v); m != "" {
			amount, _ = strconv.ParseFloat(m, 64)
		}
		return models.LedgerEntry{Amount: amount}, true
	case map[string]any:
		return normalizeMap(v), true
	default:
		if n, ok := toNumber(v); ok {
			return models.LedgerEntry{Amount: n}, true
		}
		return models.LedgerEntry{}, false
	}
}

func normalizeMap(m map[string]any) models.LedgerEntry {
	entry := models.LedgerEntry{
		Method: stringField(m, "method"),
		Phone:  stringField(m, "phone"),
		TrxID:  stringField(m, "trxId"),
		Status: stringField(m, "status"),
	}
	if id, err := uuid.Parse(stringField(m, "requestId")); err == nil {
		entry.RequestID = id
	}
	if v, ok := firstPresent(m, amountFields); ok {
		entry.Amount = NumberOrZero(v)
	}
	if v, ok := firstPresent(m, timeFields); ok {
		entry.CreatedAt = ParseTime(v)
	}
	return entry
}

func firstPresent(m map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// NumberOrZero coerces numbers and numeric strings, anything else is 0.
func NumberOrZero(v any) float64 {
	if n, ok := toNumber(v); ok {
		return n
	}
	if s, ok := v.(string); ok {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(n) {
			return n
		}
	}
	return 0
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// ParseTime resolves a stored timestamp. It understands provider timestamp
// objects ({seconds, nanoseconds} or {_seconds, _nanoseconds}), epoch
// milliseconds, RFC 3339 strings and YYYY-MM-DD dates. Anything else yields
// the zero time.
func ParseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts
		}
		if ts, err := time.Parse(time.DateOnly, t); err == nil {
			return ts
		}
		if ms, err := strconv.ParseInt(t, 10, 64); err == nil {
			return time.UnixMilli(ms)
		}
		return time.Time{}
	case map[string]any:
		sec, ok := firstPresent(t, []string{"seconds", "_seconds"})
		if !ok {
			return time.Time{}
		}
		nanos := 0.0
		if n, ok := firstPresent(t, []string{"nanoseconds", "_nanoseconds"}); ok {
			nanos = NumberOrZero(n)
		}
		return time.Unix(int64(NumberOrZero(sec)), int64(nanos))
	default:
		if ms, ok := toNumber(v); ok {
			return time.UnixMilli(int64(ms))
		}
		return time.Time{}
	}
}

// Merge combines deposit and withdraw entries into one feed of at most limit
// entries. When at least one entry has a timestamp the feed is ordered newest
// first, entries without a timestamp counting as the epoch. A limit <= 0
// means DefaultLimit.
func Merge(deposits, withdrawals []models.LedgerEntry, limit int) []models.LedgerEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	list := make([]models.LedgerEntry, 0, len(deposits)+len(withdrawals))
	list = append(list, deposits...)
	list = append(list, withdrawals...)

	if slices.ContainsFunc(list, models.LedgerEntry.HasTime) {
		sortNewestFirst(list)
	}

	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// Sorted returns a newest-first copy of entries. Entries sharing a
// timestamp, or lacking one, keep reverse insertion order.
func Sorted(entries []models.LedgerEntry) []models.LedgerEntry {
	out := make([]models.LedgerEntry, len(entries))
	copy(out, entries)
	slices.Reverse(out)
	sortNewestFirst(out)
	return out
}

func sortNewestFirst(list []models.LedgerEntry) {
	slices.SortStableFunc(list, func(a, b models.LedgerEntry) int {
		return compareDesc(unixMilli(a), unixMilli(b))
	})
}

func unixMilli(e models.LedgerEntry) int64 {
	if !e.HasTime() {
		return 0
	}
	return e.CreatedAt.UnixMilli()
}

func compareDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
