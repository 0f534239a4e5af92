package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Fuzzy search Scope
func KeywordSearch(keyword string, fields ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if keyword == "" {
			return db
		}
		query := ""
		for i, field := range fields {
			if i > 0 {
				query += " OR "
			}
			query += fmt.Sprintf("LOWER(%s) LIKE ?", field)
		}
		args := make([]any, len(fields))
		for i := range fields {
			args[i] = "%" + strings.ToLower(keyword) + "%"
		}
		return db.Where(query, args...)
	}
}

// ProgramMatch filters trade schools whose programs column contains the exact
// program name. Programs are stored as a JSON array, so exact membership is a
// match on the quoted element. LIKE metacharacters in the value are escaped
// so a wildcard in the filter cannot widen the match.
func ProgramMatch(program string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if program == "" {
			return db
		}
		pattern := fmt.Sprintf(`%%"%s"%%`, escapeLike(program))
		return db.Where(`programs LIKE ? ESCAPE '\'`, pattern)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

// Sort Scope
func Sort(sort string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sort == "" {
			sort = "id asc"
		}
		return db.Order(sort)
	}
}
