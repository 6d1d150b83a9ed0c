package repository

import "github.com/doug-martin/goqu/v9"

// QueryBuilder translates request filter parameters into a goqu condition
// map. aliases maps filter names to the column identifiers of the queried
// table.
type QueryBuilder interface {
	BuildConditions(aliases map[string]string) goqu.Ex
}
