package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/conf-keeper/migrations"
)

const (
	confEntriesTable = "conf_entries"
	confKeyColumn    = "conf_key"
	confValueColumn  = "conf_value"

	upsertConflictClause = "ON CONFLICT (" + confKeyColumn + ") DO UPDATE SET " +
		confValueColumn + " = excluded." + confValueColumn
)

func placeholderFormat(dialect migrations.Dialect) sq.PlaceholderFormat {
	if dialect == migrations.DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// buildGetManyQuery builds SELECT conf_key, conf_value ... WHERE conf_key IN (...).
func buildGetManyQuery(dialect migrations.Dialect, keys [][]byte) (string, []any, error) {
	return sq.Select(confKeyColumn, confValueColumn).
		From(confEntriesTable).
		Where(sq.Eq{confKeyColumn: keys}).
		PlaceholderFormat(placeholderFormat(dialect)).
		ToSql()
}

// buildUpsertQuery builds one multi-row INSERT ... ON CONFLICT DO UPDATE.
func buildUpsertQuery(dialect migrations.Dialect, writes []sqlWrite) (string, []any, error) {
	builder := sq.Insert(confEntriesTable).
		Columns(confKeyColumn, confValueColumn).
		Suffix(upsertConflictClause).
		PlaceholderFormat(placeholderFormat(dialect))

	for _, w := range writes {
		builder = builder.Values(w.key, []byte(w.value))
	}

	return builder.ToSql()
}
