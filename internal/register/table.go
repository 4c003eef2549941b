/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package register

import (
    "regexp"
    "strings"
)

// Table is a string-keyed, row-aligned table of raw cells. Column order is
// preserved for export; lookups are by name. A missing column reads as an
// all-empty column rather than an error, so every downstream consumer can
// treat optional columns uniformly.
type Table struct {
    cols  []string
    cells map[string][]string
    rows  int
}

func NewTable(cols []string, rows [][]string) *Table {
    t := &Table{cols: append([]string(nil), cols...), cells: make(map[string][]string, len(cols)), rows: len(rows)}
    for j, c := range cols {
        col := make([]string, len(rows))
        for i, r := range rows {
            if j < len(r) { col[i] = r[j] }
        }
        t.cells[c] = col
    }
    return t
}

func (t *Table) Rows() int { return t.rows }

func (t *Table) Columns() []string { return append([]string(nil), t.cols...) }

func (t *Table) Has(name string) bool { _, ok := t.cells[name]; return ok }

// Column returns the named column, or an all-empty column of the right
// length when the name is unknown.
func (t *Table) Column(name string) []string {
    if c, ok := t.cells[name]; ok { return c }
    return make([]string, t.rows)
}

func (t *Table) Cell(name string, i int) string {
    c, ok := t.cells[name]
    if !ok || i < 0 || i >= len(c) { return "" }
    return c[i]
}

var wsRun = regexp.MustCompile(`\s+`)

// SanitizeHeader keeps the official column label intact but collapses the
// unicode quirks exports tend to carry: en/em dashes to "-", NBSP to a plain
// space, runs of whitespace to one space, trimmed.
func SanitizeHeader(s string) string {
    s = strings.NewReplacer("–", "-", "—", "-", " ", " ").Replace(s)
    return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// Sanitize returns a copy with normalized headers and duplicate columns
// dropped, keeping the first occurrence. Every lookup-by-name after this
// point is unambiguous.
func (t *Table) Sanitize() *Table {
    out := &Table{cells: make(map[string][]string, len(t.cols)), rows: t.rows}
    for _, c := range t.cols {
        name := SanitizeHeader(c)
        if _, dup := out.cells[name]; dup { continue }
        out.cols = append(out.cols, name)
        out.cells[name] = t.cells[c]
    }
    return out
}

// Rename applies header aliases (raw label -> official label), skipping any
// alias that would collide with an existing column.
func (t *Table) Rename(aliases map[string]string) *Table {
    if len(aliases) == 0 { return t }
    out := &Table{cells: make(map[string][]string, len(t.cols)), rows: t.rows}
    for _, c := range t.cols {
        name := c
        if to, ok := aliases[c]; ok && to != "" && !t.Has(to) { name = to }
        if _, dup := out.cells[name]; dup { continue }
        out.cols = append(out.cols, name)
        out.cells[name] = t.cells[c]
    }
    return out
}

// SelectRows returns a new table holding the given rows, in order.
func (t *Table) SelectRows(idx []int) *Table {
    out := &Table{cols: append([]string(nil), t.cols...), cells: make(map[string][]string, len(t.cols)), rows: len(idx)}
    for _, c := range t.cols {
        src := t.cells[c]
        col := make([]string, len(idx))
        for k, i := range idx {
            if i >= 0 && i < len(src) { col[k] = src[i] }
        }
        out.cells[c] = col
    }
    return out
}
