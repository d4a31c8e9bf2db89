package query

import (
	"strings"

	"VidTube.com/pkg/errno"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection treats "asc" (any case) as ascending and everything else,
// including an empty value, as descending.
func ParseDirection(raw string) Direction {
	if strings.EqualFold(strings.TrimSpace(raw), string(Asc)) {
		return Asc
	}
	return Desc
}

// SortFields maps API sort names to qualified columns.
type SortFields map[string]string

// Sort is an allow-listed ordering. TieBreaker, when set, is appended with the
// same direction so equal keys still come back in a fixed order.
type Sort struct {
	Column     string
	Direction  Direction
	TieBreaker string
}

// ParseSort resolves field against allowed. An empty field selects
// fallback; a field outside the allow-list is a parameter error.
func ParseSort(field, direction string, allowed SortFields, fallback, tieBreaker string) (Sort, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		field = fallback
	}
	column, ok := allowed[field]
	if !ok {
		return Sort{}, errno.ParamErr.WithMessage("Invalid sortBy: " + field)
	}
	return Sort{Column: column, Direction: ParseDirection(direction), TieBreaker: tieBreaker}, nil
}

func (s Sort) Scope(db *gorm.DB) *gorm.DB {
	desc := s.Direction == Desc
	db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Column, Raw: true}, Desc: desc})
	if s.TieBreaker != "" && s.TieBreaker != s.Column {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: s.TieBreaker, Raw: true}, Desc: desc})
	}
	return db
}
