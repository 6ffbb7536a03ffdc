package postgres

import (
	"strconv"
	"strings"

	"staybook/internal/domain/listing"
)

const listingColumns = `id, host_id, capacity, country, city, price, average_rating, total_reviews, created_at`

// whereBuilder collects predicates with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(w.args))))
}

func (w *whereBuilder) next(arg any) string {
	w.args = append(w.args, arg)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// listingWhere renders f as a WHERE clause. A zero MinRating adds no predicate.
func listingWhere(f listing.Filter) *whereBuilder {
	w := &whereBuilder{}
	if f.Country != nil {
		w.add("country = ?", *f.Country)
	}
	if f.City != nil {
		w.add("city = ?", *f.City)
	}
	if f.MinCapacity != nil {
		w.add("capacity >= ?", *f.MinCapacity)
	}
	if f.MinPrice != nil {
		w.add("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		w.add("price <= ?", *f.MaxPrice)
	}
	if f.HasRatingFilter() {
		w.add("average_rating >= ?", f.MinRating)
	}
	if f.HostID != nil {
		w.add("host_id = ?", *f.HostID)
	}
	if len(f.ExcludeIDs) > 0 {
		ids := make([]string, len(f.ExcludeIDs))
		for i, id := range f.ExcludeIDs {
			ids[i] = id.String()
		}
		w.add("NOT (id = ANY(?::uuid[]))", ids)
	}
	return w
}

func listingOrder(s listing.Sort) string {
	if s == listing.SortRating {
		return " ORDER BY average_rating DESC, id ASC"
	}
	return " ORDER BY created_at ASC, id ASC"
}

func listingSelectSQL(f listing.Filter, skip, limit int) (string, []any) {
	w := listingWhere(f)
	q := "SELECT " + listingColumns + " FROM listings" + w.sql() + listingOrder(f.Sort)
	q += " LIMIT " + w.next(limit) + " OFFSET " + w.next(skip)
	return q, w.args
}

func listingCountSQL(f listing.Filter) (string, []any) {
	w := listingWhere(f)
	return "SELECT count(*) FROM listings" + w.sql(), w.args
}
