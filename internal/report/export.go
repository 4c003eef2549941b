/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package report

import (
    "encoding/csv"
    "fmt"
    "io"
    "math"
    "strconv"
    "strings"

    "github.com/dnyanesh57/NC-Dashboard/internal/register"
)

// ExportCSV streams the register with the derived columns appended after the
// raw ones. The raw total-cost cell is rewritten with the reconciled value so
// the file and the dashboard agree.
func ExportCSV(w io.Writer, e *register.Enriched) error {
    cw := csv.NewWriter(w)
    raw := e.Columns()

    header := make([]string, 0, len(raw)+len(register.DerivedColumns))
    header = append(header, raw...)
    header = append(header, register.DerivedColumns...)
    if err := cw.Write(header); err != nil { return err }

    rec := make([]string, len(header))
    for i := 0; i < e.Rows(); i++ {
        d := &e.Derived[i]
        for j, c := range raw {
            if c == register.ColTotalCost && d.TotalCost != nil {
                rec[j] = strconv.FormatFloat(*d.TotalCost, 'f', -1, 64)
                continue
            }
            rec[j] = e.Cell(c, i)
        }
        for j, c := range register.DerivedColumns {
            v, _ := register.DerivedCell(d, c)
            rec[len(raw)+j] = v
        }
        if err := cw.Write(rec); err != nil { return err }
    }
    cw.Flush()
    return cw.Error()
}

// Records projects the register into JSON-friendly maps, raw cells first and
// derived cells layered on top.
func Records(e *register.Enriched) []map[string]string {
    raw := e.Columns()
    out := make([]map[string]string, e.Rows())
    for i := 0; i < e.Rows(); i++ {
        d := &e.Derived[i]
        m := make(map[string]string, len(raw)+len(register.DerivedColumns))
        for _, c := range raw {
            if c == register.ColTotalCost && d.TotalCost != nil {
                m[c] = strconv.FormatFloat(*d.TotalCost, 'f', -1, 64)
                continue
            }
            m[c] = e.Cell(c, i)
        }
        for _, c := range register.DerivedColumns {
            if v, ok := register.DerivedCell(d, c); ok { m[c] = v }
        }
        out[i] = m
    }
    return out
}

// HumanizeHours renders an hour count as "1d 2h 3m" for cards; zero-valued
// parts are dropped and negative durations render empty.
func HumanizeHours(hours float64) string {
    if hours < 0 { return "" }
    mins := int(math.Round(hours * 60))
    d := mins / (24 * 60)
    h := (mins % (24 * 60)) / 60
    m := mins % 60
    var parts []string
    if d > 0 { parts = append(parts, fmt.Sprintf("%dd", d)) }
    if h > 0 { parts = append(parts, fmt.Sprintf("%dh", h)) }
    if m > 0 { parts = append(parts, fmt.Sprintf("%dm", m)) }
    if len(parts) == 0 { return "0m" }
    return strings.Join(parts, " ")
}
