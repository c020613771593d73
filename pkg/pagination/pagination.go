package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows any page can request.
	MaxLimit = 100
)

// Params holds cursor pagination inputs from controllers or services.
type Params struct {
	Limit  int
	Cursor string
}

// Cursor points just past the last item of the previous page. LastID lets a
// page resume after the same item even when earlier entries were removed.
type Cursor struct {
	Offset int
	LastID string
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor builds an opaque cursor string from the provided values.
func EncodeCursor(cursor Cursor) string {
	payload := fmt.Sprintf("%d|%s", cursor.Offset, cursor.LastID)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// ParseCursor decodes the cursor string back into its components. An empty
// value yields a nil cursor.
func ParseCursor(value string) (*Cursor, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, fmt.Errorf("invalid cursor format")
	}

	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return nil, fmt.Errorf("invalid cursor offset %q", parts[0])
	}
	return &Cursor{Offset: offset, LastID: parts[1]}, nil
}

// Page slices one page out of items, an already filtered and ordered list.
// It returns the cursor for the following page, or "" on the last page.
func Page[T any](items []T, id func(T) string, params Params) ([]T, string, error) {
	cursor, err := ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}

	start := 0
	if cursor != nil {
		start = resumeIndex(items, id, *cursor)
	}
	if start > len(items) {
		start = len(items)
	}

	end := start + NormalizeLimit(params.Limit)
	if end > len(items) {
		end = len(items)
	}

	page := items[start:end]
	next := ""
	if end < len(items) && end > 0 {
		next = EncodeCursor(Cursor{Offset: end, LastID: id(items[end-1])})
	}
	return page, next, nil
}

func resumeIndex[T any](items []T, id func(T) string, cursor Cursor) int {
	// Fast path: the list did not shift since the cursor was issued.
	if cursor.Offset > 0 && cursor.Offset <= len(items) && id(items[cursor.Offset-1]) == cursor.LastID {
		return cursor.Offset
	}
	for i, item := range items {
		if id(item) == cursor.LastID {
			return i + 1
		}
	}
	return cursor.Offset
}
