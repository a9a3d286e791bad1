package readings

import (
	"sort"
	"time"

	"github.com/moonveil/tarot-backend/internal/models"
)

// SortOrder selects history sort direction.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// Page is one page of history results.
type Page struct {
	Items      []models.Reading `json:"items"`
	TotalItems int              `json:"total_items"`
	TotalPages int              `json:"total_pages"`
}

// FilterByDateRange keeps readings with start <= CreatedAt < end.
// The lower bound is inclusive so a reading created exactly at
// midnight still shows under "today". A zero end means unbounded.
func FilterByDateRange(rs []models.Reading, start, end time.Time) []models.Reading {
	out := make([]models.Reading, 0, len(rs))
	for _, r := range rs {
		if r.CreatedAt.Before(start) {
			continue
		}
		if !end.IsZero() && !r.CreatedAt.Before(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortByDate sorts a copy of rs by CreatedAt, ties broken by ID so
// the order is deterministic. Any order other than SortOldest sorts
// newest first.
func SortByDate(rs []models.Reading, order SortOrder) []models.Reading {
	out := make([]models.Reading, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if order == SortOldest {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		if order == SortOldest {
			return a.ID.String() < b.ID.String()
		}
		return a.ID.String() > b.ID.String()
	})
	return out
}

// Paginate slices rs into 1-indexed pages. A page past the end yields
// empty items, not an error; page values below 1 clamp to 1.
func Paginate(rs []models.Reading, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(rs)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= total {
		return Page{Items: []models.Reading{}, TotalItems: total, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{Items: rs[start:end], TotalItems: total, TotalPages: totalPages}
}

// RangeWindow resolves a named rolling window ("today", "week",
// "month", "year") to a start bound anchored at now. Windows are
// lower-bounded only: the upper bound stays open so records written
// between query and render are not cut off. Unknown names, including
// "all", report ok=false.
func RangeWindow(name string, now time.Time) (start time.Time, ok bool) {
	now = now.UTC()
	switch name {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	case "year":
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}
