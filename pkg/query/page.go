package query

import (
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps every page so a caller cannot pull a whole collection.
	MaxLimit = 100
	// MaxPage keeps (page-1)*limit inside the range of a SQL OFFSET.
	MaxPage = math.MaxInt32 / MaxLimit
)

// PageRequest is a validated page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// ParsePageRequest coerces raw query values: anything that is not a positive
// integer falls back to the default, page is clamped to MaxPage and limit to
// MaxLimit.
func ParsePageRequest(page, limit string) PageRequest {
	return NewPageRequest(parsePositive(page, DefaultPage), parsePositive(limit, DefaultLimit))
}

func NewPageRequest(page, limit int) PageRequest {
	if page <= 0 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

func parsePositive(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Scope applies OFFSET/LIMIT.
func (p PageRequest) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.Limit)
}

// Page is one page of a listing.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	totalPages := TotalPages(total, req.Limit)
	return &Page[T]{
		Items:       items,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: req.Page,
		Limit:       req.Limit,
		HasNextPage: int64(req.Page) < totalPages,
		HasPrevPage: req.Page > 1,
	}
}

// TotalPages is ceil(total / limit).
func TotalPages(total int64, limit int) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}
