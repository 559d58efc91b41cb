package repository

import "fmt"

// orderClause resolves a caller-supplied sort field against a whitelist of
// sortable columns. Unknown names silently fall back to the entity's primary
// key column, mirroring the historical list behavior.
func orderClause(allowed map[string]string, requested, fallback string, desc bool) string {
	col, ok := allowed[requested]
	if !ok {
		col = fallback
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}
