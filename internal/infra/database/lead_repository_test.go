package database

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reserved key words per the PostgreSQL documentation (Appendix C). These
// cannot appear as unquoted identifiers; a column named after one breaks
// both the DDL and every query that lists it.
var pgReservedWords = map[string]bool{
	"all": true, "analyse": true, "analyze": true, "and": true, "any": true,
	"array": true, "as": true, "asc": true, "asymmetric": true, "both": true,
	"case": true, "cast": true, "check": true, "collate": true, "column": true,
	"constraint": true, "create": true, "current_catalog": true,
	"current_date": true, "current_role": true, "current_time": true,
	"current_timestamp": true, "current_user": true, "default": true,
	"deferrable": true, "desc": true, "distinct": true, "do": true,
	"else": true, "end": true, "except": true, "false": true, "fetch": true,
	"for": true, "foreign": true, "from": true, "grant": true, "group": true,
	"having": true, "in": true, "initially": true, "intersect": true,
	"into": true, "lateral": true, "leading": true, "limit": true,
	"localtime": true, "localtimestamp": true, "not": true, "null": true,
	"offset": true, "on": true, "only": true, "or": true, "order": true,
	"placing": true, "primary": true, "references": true, "returning": true,
	"select": true, "session_user": true, "some": true, "symmetric": true,
	"table": true, "then": true, "to": true, "trailing": true, "true": true,
	"union": true, "unique": true, "user": true, "using": true,
	"variadic": true, "when": true, "where": true, "window": true, "with": true,
}

func TestLeadColumnsAvoidReservedWords(t *testing.T) {
	for _, col := range strings.FieldsFunc(leadColumns, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	}) {
		assert.False(t, pgReservedWords[col], "column %q is a reserved keyword", col)
	}
}

// Column definitions in the migration are "name TYPE ...". Checking them
// here keeps a reserved-word column from slipping past the mock-based
// repository tests.
func TestMigrationColumnsAvoidReservedWords(t *testing.T) {
	sql, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	assert.NoError(t, err)

	columnDef := regexp.MustCompile(`(?m)^\s+([a-z_]+)\s+(UUID|TEXT|JSONB|BOOLEAN|INTEGER|TIMESTAMPTZ)\b`)
	matches := columnDef.FindAllStringSubmatch(string(sql), -1)
	assert.NotEmpty(t, matches)

	for _, m := range matches {
		assert.False(t, pgReservedWords[m[1]], "column %q is a reserved keyword", m[1])
	}
}
