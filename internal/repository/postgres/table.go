package postgres

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go-resume-backend/internal/domain"

	"github.com/lib/pq"
)

// column maps an entity field to its SQL column and API field name.
type column[E any] struct {
	name  string
	field string
	ref   func(E) any
}

// table describes how an entity is stored. Columns are listed in scan and
// insert order; id is always first.
type table[E any] struct {
	name         string
	columns      []column[E]
	search       []string
	defaultOrder []string
	newEntity    func() E

	fields map[string]string
}

func newTable[E any](name string, newEntity func() E, columns []column[E], search []string, defaultOrder ...string) *table[E] {
	fields := make(map[string]string, len(columns))
	for _, c := range columns {
		fields[c.field] = c.name
	}
	return &table[E]{
		name:         name,
		columns:      columns,
		search:       search,
		defaultOrder: defaultOrder,
		newEntity:    newEntity,
		fields:       fields,
	}
}

// newEntryTable wraps the kind specific columns with the shared entry
// columns.
func newEntryTable[E domain.Entry](name string, newEntity func() E, specific []column[E], search []string, secondaryOrder string) *table[E] {
	cols := []column[E]{
		{"id", "id", func(e E) any { return &e.Meta().ID }},
		{"resume_id", "resumeId", func(e E) any { return &e.Meta().ResumeID }},
		{"user_id", "userId", func(e E) any { return &e.Meta().UserID }},
		{"position", "position", func(e E) any { return &e.Meta().Position }},
	}
	cols = append(cols, specific...)
	cols = append(cols,
		column[E]{"created_at", "createdAt", func(e E) any { return &e.Meta().CreatedAt }},
		column[E]{"updated_at", "updatedAt", func(e E) any { return &e.Meta().UpdatedAt }},
	)
	return newTable(name, newEntity, cols, search, "position ASC", secondaryOrder)
}

func (t *table[E]) columnList() string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return strings.Join(names, ", ")
}

func (t *table[E]) targets(e E) []any {
	out := make([]any, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.ref(e)
	}
	return out
}

func (t *table[E]) selectSQL() string {
	return "SELECT " + t.columnList() + " FROM " + t.name
}

func (t *table[E]) insertSQL(e E) (string, []any) {
	placeholders := make([]string, len(t.columns))
	args := make([]any, len(t.columns))
	for i, c := range t.columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = value(c.ref(e))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, t.columnList(), strings.Join(placeholders, ", ")), args
}

// updateSQL rewrites every column but id and created_at.
func (t *table[E]) updateSQL(e E) (string, []any) {
	var (
		sets []string
		args []any
		id   any
	)
	for _, c := range t.columns {
		switch c.name {
		case "id":
			id = value(c.ref(e))
			continue
		case "created_at":
			continue
		}
		args = append(args, value(c.ref(e)))
		sets = append(sets, fmt.Sprintf("%s = $%d", c.name, len(args)))
	}
	args = append(args, id)
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", t.name, strings.Join(sets, ", "), len(args)), args
}

type queryBuilder struct {
	args []any
}

func (b *queryBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (t *table[E]) where(q domain.ListQuery, b *queryBuilder) (string, error) {
	fields := make([]string, 0, len(q.Criteria))
	for f := range q.Criteria {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var conds []string
	for _, f := range fields {
		col, ok := t.fields[f]
		if !ok {
			return "", fmt.Errorf("%w: unknown field %q", domain.ErrInvalidQuery, f)
		}
		switch v := q.Criteria[f].(type) {
		case nil:
			conds = append(conds, col+" IS NULL")
		case []string:
			conds = append(conds, col+" = ANY("+b.arg(pq.Array(v))+")")
		case []any:
			conds = append(conds, col+" = ANY("+b.arg(pq.Array(stringify(v)))+")")
		case map[string]any:
			return "", fmt.Errorf("%w: unsupported value for %q", domain.ErrInvalidQuery, f)
		default:
			conds = append(conds, col+" = "+b.arg(v))
		}
	}

	if q.Search != "" && len(t.search) > 0 {
		p := b.arg("%" + escapeLike(q.Search) + "%")
		parts := make([]string, len(t.search))
		for i, col := range t.search {
			parts[i] = col + " ILIKE " + p
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), nil
}

func (t *table[E]) orderBy(q domain.ListQuery) (string, error) {
	terms := t.defaultOrder
	if len(q.OrderBy) > 0 {
		terms = make([]string, 0, len(q.OrderBy))
		for _, o := range q.OrderBy {
			col, ok := t.fields[o.Field]
			if !ok {
				return "", fmt.Errorf("%w: unknown order field %q", domain.ErrInvalidQuery, o.Field)
			}
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			terms = append(terms, col+" "+dir)
		}
	}
	return " ORDER BY " + strings.Join(append(terms[:len(terms):len(terms)], "id ASC"), ", "), nil
}

func (t *table[E]) page(q domain.ListQuery, b *queryBuilder) string {
	var sb strings.Builder
	if q.Limit > 0 {
		sb.WriteString(" LIMIT " + b.arg(q.Limit))
	}
	if q.Offset > 0 {
		sb.WriteString(" OFFSET " + b.arg(q.Offset))
	}
	return sb.String()
}

// value dereferences a column target into a driver argument.
func value(ref any) any {
	switch v := ref.(type) {
	case *string:
		return *v
	case **string:
		if *v == nil {
			return nil
		}
		return **v
	case *int:
		return *v
	case *bool:
		return *v
	case *time.Time:
		return *v
	case *domain.Date:
		return v.String()
	case **domain.Date:
		if *v == nil {
			return nil
		}
		return (*v).String()
	}
	return ref
}

func stringify(vs []any) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprint(v)
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
