package persistence

import "gorm.io/gorm/clause"

// forUpdateClause returns a SELECT ... FOR UPDATE row lock
func forUpdateClause() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}
