/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package report

import (
    "strings"
    "time"

    "github.com/dnyanesh57/NC-Dashboard/internal/register"
)

// Filter narrows a register to rows matching every criterion. Equals maps a
// raw column to accepted values (OR within a column, AND across columns);
// RaisedFrom/RaisedTo bound the raised instant inclusively.
type Filter struct {
    Equals     map[string][]string
    RaisedFrom *time.Time
    RaisedTo   *time.Time
}

// Apply returns a copy; the source register is never mutated.
func (f Filter) Apply(e *register.Enriched) *register.Enriched {
    cols := make(map[string][]string, len(f.Equals))
    for c := range f.Equals { cols[c] = e.Column(c) }

    var idx []int
    for i := range e.Derived {
        if !f.matches(e, cols, i) { continue }
        idx = append(idx, i)
    }
    return e.Select(idx)
}

func (f Filter) matches(e *register.Enriched, cols map[string][]string, i int) bool {
    for c, accepted := range f.Equals {
        cell := strings.TrimSpace(cols[c][i])
        ok := false
        for _, want := range accepted {
            if strings.EqualFold(cell, strings.TrimSpace(want)) { ok = true; break }
        }
        if !ok { return false }
    }
    if f.RaisedFrom != nil || f.RaisedTo != nil {
        raised := e.Derived[i].RaisedAt
        if raised == nil { return false }
        if f.RaisedFrom != nil && raised.Before(*f.RaisedFrom) { return false }
        if f.RaisedTo != nil && raised.After(*f.RaisedTo) { return false }
    }
    return true
}
