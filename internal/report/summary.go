/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package report

import (
    "fmt"
    "sort"
    "strings"
    "time"

    "github.com/dnyanesh57/NC-Dashboard/internal/domain"
    "github.com/dnyanesh57/NC-Dashboard/internal/register"
)

// Summary is the KPI header for a register scope. Medians and the SLA rate
// are nil when no row contributes: unknown is excluded from denominators,
// never counted as zero or failure.
type Summary struct {
    Total    int `json:"total"`
    Resolved int `json:"resolved"`
    Open     int `json:"open"`

    MedianResponseHours *float64 `json:"median_response_hours,omitempty"`
    MedianClosureHours  *float64 `json:"median_closure_hours,omitempty"`

    SLAMetRate *float64 `json:"sla_met_rate,omitempty"` // percent over known rows only
    SLAKnown   int      `json:"sla_known"`

    R2C                int `json:"r2c"`
    R2CStrict          int `json:"r2c_strict"`
    RespondedNotClosed int `json:"responded_not_closed"`
}

func Summarize(e *register.Enriched) Summary {
    s := Summary{Total: len(e.Derived)}
    var resp, clos []float64
    met := 0
    for i := range e.Derived {
        d := &e.Derived[i]
        if d.EffectiveResolutionAt != nil { s.Resolved++ }
        if d.ResponseHours != nil { resp = append(resp, *d.ResponseHours) }
        if d.ClosureHours != nil { clos = append(clos, *d.ClosureHours) }
        switch d.SLA {
        case domain.SLAMet: s.SLAKnown++; met++
        case domain.SLAMissed: s.SLAKnown++
        }
        if d.R2C { s.R2C++ }
        if d.R2CStrict { s.R2CStrict++ }
        if d.RespondedNotClosed { s.RespondedNotClosed++ }
    }
    s.Open = s.Total - s.Resolved
    s.MedianResponseHours = median(resp)
    s.MedianClosureHours = median(clos)
    if s.SLAKnown > 0 {
        rate := float64(met) / float64(s.SLAKnown) * 100
        s.SLAMetRate = &rate
    }
    return s
}

// GroupRow is one aggregation bucket (project, assignee, tower, ...).
type GroupRow struct {
    Name     string `json:"name"`
    Total    int    `json:"total"`
    Resolved int    `json:"resolved"`
    R2C      int    `json:"r2c"`
    RespOnly int    `json:"resp_only"`

    MedianCloseHours *float64 `json:"median_close_hours,omitempty"`
    SLAMetRate       *float64 `json:"sla_met_rate,omitempty"`
}

// GroupBy aggregates the register over the values of one raw column. Blank
// cells group under an em-dash bucket. Rows come back sorted by Total
// descending, then name, for stable output.
func GroupBy(e *register.Enriched, col string) []GroupRow {
    cells := e.Column(col)
    type acc struct {
        row   GroupRow
        close []float64
        known int
        met   int
    }
    buckets := map[string]*acc{}
    var order []string
    for i := range e.Derived {
        name := strings.TrimSpace(cells[i])
        if name == "" { name = "—" }
        b := buckets[name]
        if b == nil {
            b = &acc{row: GroupRow{Name: name}}
            buckets[name] = b
            order = append(order, name)
        }
        d := &e.Derived[i]
        b.row.Total++
        if d.EffectiveResolutionAt != nil { b.row.Resolved++ }
        if d.R2C { b.row.R2C++ }
        if d.RespondedNotClosed { b.row.RespOnly++ }
        if d.ClosureHours != nil { b.close = append(b.close, *d.ClosureHours) }
        switch d.SLA {
        case domain.SLAMet: b.known++; b.met++
        case domain.SLAMissed: b.known++
        }
    }
    out := make([]GroupRow, 0, len(order))
    for _, name := range order {
        b := buckets[name]
        b.row.MedianCloseHours = median(b.close)
        if b.known > 0 {
            rate := float64(b.met) / float64(b.known) * 100
            b.row.SLAMetRate = &rate
        }
        out = append(out, b.row)
    }
    sort.Slice(out, func(i, j int) bool {
        if out[i].Total != out[j].Total { return out[i].Total > out[j].Total }
        return out[i].Name < out[j].Name
    })
    return out
}

// DayFlow is one day of the raised/resolved timeline.
type DayFlow struct {
    Date     string `json:"date"`
    Raised   int    `json:"raised"`
    Resolved int    `json:"resolved"`
    R2C      int    `json:"r2c"`
    RespOnly int    `json:"resp_only"`
}

// DailyFlow buckets rows by their raised date; rows without a raised instant
// are skipped. Sorted ascending by date.
func DailyFlow(e *register.Enriched) []DayFlow {
    buckets := map[string]*DayFlow{}
    for i := range e.Derived {
        d := &e.Derived[i]
        if d.RaisedAt == nil { continue }
        day := d.RaisedAt.Format("2006-01-02")
        b := buckets[day]
        if b == nil {
            b = &DayFlow{Date: day}
            buckets[day] = b
        }
        b.Raised++
        if d.EffectiveResolutionAt != nil { b.Resolved++ }
        if d.R2C { b.R2C++ }
        if d.RespondedNotClosed { b.RespOnly++ }
    }
    out := make([]DayFlow, 0, len(buckets))
    for _, b := range buckets { out = append(out, *b) }
    sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
    return out
}

// Window selects rows by when their status last changed.
type Window int

const (
    WindowToday Window = iota
    WindowLast3Days
    WindowThisWeek
    WindowAll
)

func ParseWindow(s string) (Window, error) {
    switch strings.ToLower(strings.TrimSpace(s)) {
    case "", "today": return WindowToday, nil
    case "3d", "last3days": return WindowLast3Days, nil
    case "week", "thisweek": return WindowThisWeek, nil
    case "all": return WindowAll, nil
    }
    return WindowToday, fmt.Errorf("unknown window %q", s)
}

// Changed returns a copy holding rows whose LastStatusChangeAt falls inside
// the window relative to now, newest first. Weeks start on Monday.
func Changed(e *register.Enriched, now time.Time, w Window) *register.Enriched {
    today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
    weekday := int(today.Weekday())
    if weekday == 0 { weekday = 7 }
    weekStart := today.AddDate(0, 0, -(weekday - 1))

    var idx []int
    for i := range e.Derived {
        ts := e.Derived[i].LastStatusChangeAt
        if ts == nil { continue }
        switch w {
        case WindowToday:
            if ts.Year() == today.Year() && ts.YearDay() == today.YearDay() { idx = append(idx, i) }
        case WindowLast3Days:
            if !ts.Before(today.AddDate(0, 0, -2)) { idx = append(idx, i) }
        case WindowThisWeek:
            if !ts.Before(weekStart) { idx = append(idx, i) }
        case WindowAll:
            idx = append(idx, i)
        }
    }
    sort.SliceStable(idx, func(a, b int) bool {
        return e.Derived[idx[a]].LastStatusChangeAt.After(*e.Derived[idx[b]].LastStatusChangeAt)
    })
    return e.Select(idx)
}

// median over a copy; even counts average the middle two.
func median(vals []float64) *float64 {
    if len(vals) == 0 { return nil }
    vs := append([]float64(nil), vals...)
    sort.Float64s(vs)
    var m float64
    if n := len(vs); n%2 == 1 { m = vs[n/2] } else { m = (vs[n/2-1] + vs[n/2]) / 2 }
    return &m
}
