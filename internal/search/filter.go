package search

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Entity is anything the directory screens can filter.
type Entity interface {
	SearchFields() []string
	CategoryField() string
	LocationField() string
	YearField() string
}

// Timestamped entities can be listed newest first.
type Timestamped interface {
	Entity
	Created() time.Time
}

type MatchMode int

const (
	// MatchPhrase matches when any field contains the whole query.
	MatchPhrase MatchMode = iota
	// MatchAnyKeyword matches when any whitespace-separated keyword is found in any field.
	MatchAnyKeyword
)

type Predicate struct {
	Query      string
	Categories []string
	Location   string
	YearMin    *int
	YearMax    *int
	Mode       MatchMode
}

func (p Predicate) IsEmpty() bool {
	if strings.TrimSpace(p.Query) != "" || strings.TrimSpace(p.Location) != "" {
		return false
	}
	if p.YearMin != nil || p.YearMax != nil {
		return false
	}
	for _, c := range p.Categories {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// compiled holds the normalized form of a Predicate so the per-item loop does
// no repeated lowercasing of the constraint side.
type compiled struct {
	phrase     string
	keywords   []string
	categories []string
	location   string
	ranged     bool
	yearMin    int
	yearMax    int
}

func compile(p Predicate) compiled {
	c := compiled{
		location: NormalizeQuery(p.Location),
	}
	if p.Mode == MatchAnyKeyword {
		c.keywords = Keywords(p.Query)
	} else {
		c.phrase = NormalizeQuery(p.Query)
	}
	for _, cat := range p.Categories {
		cat = NormalizeQuery(cat)
		if cat == "" {
			continue
		}
		c.categories = append(c.categories, cat)
	}
	if p.YearMin != nil || p.YearMax != nil {
		c.ranged = true
		c.yearMin = 0
		c.yearMax = math.MaxInt
		if p.YearMin != nil {
			c.yearMin = *p.YearMin
		}
		if p.YearMax != nil {
			c.yearMax = *p.YearMax
		}
	}
	return c
}

func (c compiled) matches(e Entity) bool {
	return c.matchText(e) && c.matchCategory(e) && c.matchLocation(e) && c.matchYear(e)
}

func (c compiled) matchText(e Entity) bool {
	if c.keywords != nil {
		if len(c.keywords) == 0 {
			return true
		}
		for _, f := range e.SearchFields() {
			for _, k := range c.keywords {
				if containsFold(f, k) {
					return true
				}
			}
		}
		return false
	}
	if c.phrase == "" {
		return true
	}
	for _, f := range e.SearchFields() {
		if containsFold(f, c.phrase) {
			return true
		}
	}
	return false
}

func (c compiled) matchCategory(e Entity) bool {
	if len(c.categories) == 0 {
		return true
	}
	field := e.CategoryField()
	for _, cat := range c.categories {
		if containsFold(field, cat) {
			return true
		}
	}
	return false
}

func (c compiled) matchLocation(e Entity) bool {
	if c.location == "" {
		return true
	}
	return containsFold(e.LocationField(), c.location)
}

func (c compiled) matchYear(e Entity) bool {
	if !c.ranged {
		return true
	}
	year, ok := ParseYear(e.YearField())
	if !ok {
		return false
	}
	return year >= c.yearMin && year <= c.yearMax
}

// Matches reports whether e satisfies every dimension of p.
func Matches(e Entity, p Predicate) bool {
	return compile(p).matches(e)
}

// Filter returns the items matching p in their original order. The input
// slice is never modified.
func Filter[T Entity](items []T, p Predicate) []T {
	c := compile(p)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if c.matches(it) {
			out = append(out, it)
		}
	}
	return out
}

// FilterEntities is Filter with the predicate spelled out field by field.
func FilterEntities[T Entity](items []T, query string, categories []string, location string, yearMin, yearMax *int) []T {
	return Filter(items, Predicate{
		Query:      query,
		Categories: categories,
		Location:   location,
		YearMin:    yearMin,
		YearMax:    yearMax,
	})
}

// FilterNewestFirst filters and then orders by creation time, newest first.
// Items with equal timestamps keep their snapshot order.
func FilterNewestFirst[T Timestamped](items []T, p Predicate) []T {
	out := Filter(items, p)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created().After(out[j].Created())
	})
	return out
}
