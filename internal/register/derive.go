/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package register

import (
    "regexp"
    "strconv"
    "strings"
    "time"

    "github.com/dnyanesh57/NC-Dashboard/internal/domain"
)

// Official register column labels (post-sanitize).
const (
    ColReferenceID = "Reference ID"
    ColProjectName = "Project Name"
    ColRaisedBy    = "Raised By"
    ColAssignee    = "Assigned Team User"
    ColStatus      = "Current Status"

    ColRaisedOnDate    = "Raised On Date"
    ColRaisedOnTime    = "Raised On Time"
    ColDeadlineDate    = "Deadline Date"
    ColDeadlineTime    = "Deadline Time"
    ColRespondedOnDate = "Responded On Date"
    ColRespondedOnTime = "Responded On Time"
    ColRejectedOnDate  = "Rejected On Date"
    ColRejectedOnTime  = "Rejected On Time"
    ColClosedOnDate    = "Closed On Date"
    ColClosedOnTime    = "Closed On Time"

    ColRejectedBy      = "Rejected By"
    ColRejectedComment = "Rejected Comment"
    ColClosedBy        = "Closed By"
    ColClosedComment   = "Closed Comment"

    ColLabourCost    = "Labour Cost"
    ColMaterialCost  = "Material Cost"
    ColMachineryCost = "Machinery Cost"
    ColOtherCost     = "Other Cost"
    ColTotalCost     = "Total Cost"

    ColLocationVariable = "Location Variable"
    ColLocationPath     = "Location / Reference"
)

// Enriched is a sanitized raw table plus one Derived record per row. It is
// produced once per load and shared read-only; filtered views are copies.
type Enriched struct {
    *Table
    Derived []domain.Derived
}

var closedish = regexp.MustCompile(`(?i)\b(closed|approved|resolved|complete)\b`)

// Enrich runs the full derivation pass: sanitize headers, combine the five
// raw date/time pairs into canonical instants, then derive lifecycle fields,
// evidence flags and the cost fallback in fixed order. Pure: the input table
// is not mutated and re-running over the same raw columns yields identical
// derived fields.
func Enrich(raw *Table) *Enriched {
    t := raw.Sanitize()
    n := t.Rows()

    raisedD, raisedT := t.Column(ColRaisedOnDate), t.Column(ColRaisedOnTime)
    deadD, deadT := t.Column(ColDeadlineDate), t.Column(ColDeadlineTime)
    respD, respT := t.Column(ColRespondedOnDate), t.Column(ColRespondedOnTime)
    rejD, rejT := t.Column(ColRejectedOnDate), t.Column(ColRejectedOnTime)
    closD, closT := t.Column(ColClosedOnDate), t.Column(ColClosedOnTime)

    rejBy, rejCom := t.Column(ColRejectedBy), t.Column(ColRejectedComment)
    closBy, closCom := t.Column(ColClosedBy), t.Column(ColClosedComment)
    status := t.Column(ColStatus)

    labour, material := t.Column(ColLabourCost), t.Column(ColMaterialCost)
    machinery, other := t.Column(ColMachineryCost), t.Column(ColOtherCost)
    total := t.Column(ColTotalCost)
    locVar := t.Column(ColLocationVariable)

    der := make([]domain.Derived, n)
    for i := 0; i < n; i++ {
        d := &der[i]
        d.RaisedAt = Combine(raisedD[i], raisedT[i])
        d.DeadlineAt = Combine(deadD[i], deadT[i])
        d.RespondedAt = Combine(respD[i], respT[i])
        d.RejectedAt = Combine(rejD[i], rejT[i])
        d.ClosedAt = Combine(closD[i], closT[i])

        deriveLifecycle(d)
        classify(d, evidence{
            rejectedBy: rejBy[i], rejectedComment: rejCom[i], rejectedDate: rejD[i], rejectedTime: rejT[i],
            closedBy: closBy[i], closedComment: closCom[i], closedDate: closD[i], closedTime: closT[i],
            status: status[i],
        })
        d.TotalCost = reconcileCost(total[i], labour[i], material[i], machinery[i], other[i])
        d.LocationLeaf = locationLeaf(locVar[i])
    }
    return &Enriched{Table: t, Derived: der}
}

// deriveLifecycle computes the per-row derived instants and durations, in the
// order the definitions depend on each other.
func deriveLifecycle(d *domain.Derived) {
    // Effective resolution: explicit close wins; otherwise a response that is
    // chronologically after raising. A response stamped before raising is
    // garbage and never resolves the record.
    switch {
    case d.ClosedAt != nil:
        d.EffectiveResolutionAt = d.ClosedAt
    case d.RespondedAt != nil && d.RaisedAt != nil && d.RespondedAt.After(*d.RaisedAt):
        d.EffectiveResolutionAt = d.RespondedAt
    }

    // Negative response/closure durations are data anomalies and stay visible.
    d.ResponseHours = hoursBetween(d.RaisedAt, d.RespondedAt)
    d.ClosureHours = hoursBetween(d.RaisedAt, d.EffectiveResolutionAt)

    d.RespondedNotClosed = d.ClosedAt == nil && d.RespondedAt != nil && d.RaisedAt != nil && d.RespondedAt.After(*d.RaisedAt)

    if d.EffectiveResolutionAt != nil && d.RespondedAt != nil && !d.EffectiveResolutionAt.Before(*d.RespondedAt) {
        d.CloseAfterResponseHours = hoursBetween(d.RespondedAt, d.EffectiveResolutionAt)
    }

    if d.DeadlineAt != nil && d.EffectiveResolutionAt != nil {
        if d.EffectiveResolutionAt.After(*d.DeadlineAt) { d.SLA = domain.SLAMissed } else { d.SLA = domain.SLAMet }
    }

    // Latest of the four candidate events; on an exact tie the earlier entry
    // in this list wins (Closed > Rejected > Responded > Effective).
    cands := []struct {
        label string
        ts    *time.Time
    }{
        {domain.EventClosed, d.ClosedAt},
        {domain.EventRejected, d.RejectedAt},
        {domain.EventResponded, d.RespondedAt},
        {domain.EventEffective, d.EffectiveResolutionAt},
    }
    for _, c := range cands {
        if c.ts == nil { continue }
        if d.LastStatusChangeAt == nil || c.ts.After(*d.LastStatusChangeAt) {
            d.LastStatusChangeAt = c.ts
            d.LastStatusEvent = c.label
        }
    }
}

type evidence struct {
    rejectedBy, rejectedComment, rejectedDate, rejectedTime string
    closedBy, closedComment, closedDate, closedTime         string
    status                                                  string
}

// classify infers the rejected-then-closed flags. R2C is an evidence
// heuristic over free text and partial data; R2CStrict needs both canonical
// instants and is the only path that yields a duration.
func classify(d *domain.Derived, ev evidence) {
    hasReject := d.RejectedAt != nil ||
        nonblank(ev.rejectedBy) || nonblank(ev.rejectedComment) ||
        nonblank(ev.rejectedDate) || nonblank(ev.rejectedTime)
    hasClose := d.ClosedAt != nil || closedish.MatchString(ev.status) ||
        nonblank(ev.closedBy) || nonblank(ev.closedComment) ||
        nonblank(ev.closedDate) || nonblank(ev.closedTime)
    d.R2C = hasReject && hasClose

    d.R2CStrict = d.RejectedAt != nil && d.ClosedAt != nil
    if d.R2CStrict {
        h := d.ClosedAt.Sub(*d.RejectedAt).Hours()
        // Closed before Rejected is not a meaningful strict window; clamp.
        if h < 0 { h = 0 }
        d.R2CHours = &h
    }
}

// reconcileCost keeps a present numeric aggregate untouched and otherwise
// falls back to the sum of the available component costs. All components
// missing leaves the aggregate missing.
func reconcileCost(total string, parts ...string) *float64 {
    if v := parseCost(total); v != nil { return v }
    var sum float64
    seen := false
    for _, p := range parts {
        if v := parseCost(p); v != nil {
            sum += *v
            seen = true
        }
    }
    if !seen { return nil }
    return &sum
}

func parseCost(s string) *float64 {
    if isMissing(s) { return nil }
    v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
    if err != nil { return nil }
    return &v
}

// locationLeaf extracts the last segment of the slash-delimited location path.
func locationLeaf(s string) string {
    if isMissing(s) { return "" }
    if i := strings.LastIndex(s, "/"); i >= 0 { s = s[i+1:] }
    return strings.TrimSpace(s)
}

func nonblank(s string) bool { return strings.TrimSpace(s) != "" }

func hoursBetween(from, to *time.Time) *float64 {
    if from == nil || to == nil { return nil }
    h := to.Sub(*from).Hours()
    return &h
}

// Select returns a copy of the enriched register holding the given rows.
func (e *Enriched) Select(idx []int) *Enriched {
    out := &Enriched{Table: e.Table.SelectRows(idx), Derived: make([]domain.Derived, len(idx))}
    for k, i := range idx {
        if i >= 0 && i < len(e.Derived) { out.Derived[k] = e.Derived[i] }
    }
    return out
}
