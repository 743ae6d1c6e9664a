// Package repository contains data access logic separated from HTTP handlers.
// This file implements the relational passthrough: generic CRUD over a fixed
// set of whitelisted tables.  Rows go over the wire as JSON objects keyed by
// column name, so the API shape follows the schema without per-table code.
package repository

import (
    "context"      // context allows passing deadlines and cancellation signals to DB operations
    "database/sql" // sql provides generic database operations and drivers
    "errors"       // errors is used to define custom error values
    "fmt"
    "regexp"
    "sort"
    "strings"
)

// ErrRowNotFound is returned when an update or delete matches no row.
var ErrRowNotFound = errors.New("row not found")

// ErrUnknownTable is returned for resources outside the whitelist.
var ErrUnknownTable = errors.New("unknown table")

// ErrEmptyRow is returned when an insert or update carries no columns.
var ErrEmptyRow = errors.New("no columns provided")

// Table pairs a SQL table with its primary key column.  Only tables listed
// in Tables are reachable; everything else is rejected before any SQL is
// built, so the dynamic query construction below never sees outside input
// as an identifier.
type Table struct {
    Name string // SQL table name
    Key  string // primary key column used by update/delete
}

// Tables maps URL resource names to their backing tables.
var Tables = map[string]Table{
    "facilities":     {Name: "FACILITY", Key: "FACILITY_ID"},
    "bookings":       {Name: "BOOKING", Key: "BOOKING_ID"},
    "indoor-sports":  {Name: "INDOOR_SPORT", Key: "INDOOR_SPORT_ID"},
    "outdoor-sports": {Name: "OUTDOOR_SPORT", Key: "OUTDOOR_SPORT_ID"},
    "owners":         {Name: "OWNER", Key: "OWNER_ID"},
    "reviews":        {Name: "REVIEW", Key: "REVIEW_ID"},
    "users":          {Name: "USER", Key: "USER_ID"},
    "history":        {Name: "HISTORY", Key: "HISTORY_ID"},
}

// columnName matches the identifiers the schema actually uses.  Column names
// arrive from request bodies, so anything outside this shape is rejected.
var columnName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Row is a generic record keyed by column name.
type Row map[string]any

// TableRepo runs the passthrough queries.  It holds no per-table state
// beyond the shared connection pool.
type TableRepo struct {
    db *sql.DB // db is the underlying database connection pool
}

// NewTableRepo constructs a TableRepo with the provided DB handle.
func NewTableRepo(db *sql.DB) *TableRepo {
    return &TableRepo{db: db}
}

// Resolve maps a URL resource name to its table, or ErrUnknownTable.
func Resolve(resource string) (Table, error) {
    t, ok := Tables[resource]
    if !ok {
        return Table{}, ErrUnknownTable
    }
    return t, nil
}

// List returns every row of the table as column-keyed maps.
func (r *TableRepo) List(ctx context.Context, t Table) ([]Row, error) {
    rows, err := r.db.QueryContext(ctx, "SELECT * FROM "+t.Name)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    cols, err := rows.Columns()
    if err != nil {
        return nil, err
    }

    out := make([]Row, 0)
    for rows.Next() {
        vals := make([]any, len(cols))
        ptrs := make([]any, len(cols))
        for i := range vals {
            ptrs[i] = &vals[i]
        }
        if err := rows.Scan(ptrs...); err != nil {
            return nil, err
        }
        rec := make(Row, len(cols))
        for i, c := range cols {
            // The MySQL driver hands text columns back as []byte; JSON
            // would base64 those, so coerce to string here.
            if b, ok := vals[i].([]byte); ok {
                rec[c] = string(b)
            } else {
                rec[c] = vals[i]
            }
        }
        out = append(out, rec)
    }
    return out, rows.Err()
}

// Insert adds a row built from the given columns and returns the
// auto-generated id (zero when the table has none).
func (r *TableRepo) Insert(ctx context.Context, t Table, row Row) (int64, error) {
    cols, args, err := splitRow(row)
    if err != nil {
        return 0, err
    }
    q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
        t.Name, strings.Join(cols, ", "), placeholders(len(cols)))
    res, err := r.db.ExecContext(ctx, q, args...)
    if err != nil {
        return 0, err
    }
    id, _ := res.LastInsertId()
    return id, nil
}

// Update sets the given columns on the row with the given key value.
// Returns ErrRowNotFound when nothing matched.
func (r *TableRepo) Update(ctx context.Context, t Table, id string, row Row) error {
    cols, args, err := splitRow(row)
    if err != nil {
        return err
    }
    sets := make([]string, len(cols))
    for i, c := range cols {
        sets[i] = c + " = ?"
    }
    q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", t.Name, strings.Join(sets, ", "), t.Key)
    res, err := r.db.ExecContext(ctx, q, append(args, id)...)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrRowNotFound
    }
    return nil
}

// Delete removes the row with the given key value, or ErrRowNotFound.
func (r *TableRepo) Delete(ctx context.Context, t Table, id string) error {
    q := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.Name, t.Key)
    res, err := r.db.ExecContext(ctx, q, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrRowNotFound
    }
    return nil
}

// splitRow validates the column names and returns them alongside their
// values in a stable order.
func splitRow(row Row) ([]string, []any, error) {
    if len(row) == 0 {
        return nil, nil, ErrEmptyRow
    }
    cols := make([]string, 0, len(row))
    for c := range row {
        if !columnName.MatchString(c) {
            return nil, nil, fmt.Errorf("invalid column name %q", c)
        }
        cols = append(cols, c)
    }
    sort.Strings(cols)
    args := make([]any, len(cols))
    for i, c := range cols {
        args[i] = row[c]
    }
    return cols, args, nil
}

func placeholders(n int) string {
    return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
