/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package register

import (
    "strconv"

    "github.com/dnyanesh57/NC-Dashboard/internal/domain"
)

// Labels for the derived columns appended to exports. Underscored names match
// the register's reporting conventions; none collide with raw headers.
const (
    DColRaisedAt            = "_RaisedOnDT"
    DColDeadlineAt          = "_DeadlineDT"
    DColRespondedAt         = "_RespondedOnDT"
    DColRejectedAt          = "_RejectedOnDT"
    DColClosedAt            = "_ClosedOnDT"
    DColEffectiveAt         = "_EffectiveResolutionDT"
    DColResponseHours       = "Responding Time (Hrs)"
    DColClosureHours        = "Computed Closure Time (Hrs)"
    DColCloseAfterResponse  = "Close After Response (Hrs)"
    DColSLA                 = "SLA Met"
    DColRespondedNotClosed  = "_RespondedNotClosed_Flag"
    DColR2C                 = "_R2C_Flag"
    DColR2CStrict           = "_R2C_Strict_Flag"
    DColR2CHours            = "R2C Hours (>=0)"
    DColLastStatusChangeAt  = "_LastStatusChangeDT"
    DColLastStatusEvent     = "_LastStatusEvent"
    DColLocationLeaf        = "Location Variable (Fixed)"
)

// DerivedColumns is the fixed export order.
var DerivedColumns = []string{
    DColRaisedAt, DColDeadlineAt, DColRespondedAt, DColRejectedAt, DColClosedAt,
    DColEffectiveAt, DColResponseHours, DColClosureHours, DColCloseAfterResponse,
    DColSLA, DColRespondedNotClosed, DColR2C, DColR2CStrict, DColR2CHours,
    DColLastStatusChangeAt, DColLastStatusEvent, DColLocationLeaf,
}

// DerivedCell renders one derived field canonically: instants via
// FormatInstant, hours as plain decimals, flags as 1/0, absent as "".
func DerivedCell(d *domain.Derived, name string) (string, bool) {
    switch name {
    case DColRaisedAt: return FormatInstant(d.RaisedAt), true
    case DColDeadlineAt: return FormatInstant(d.DeadlineAt), true
    case DColRespondedAt: return FormatInstant(d.RespondedAt), true
    case DColRejectedAt: return FormatInstant(d.RejectedAt), true
    case DColClosedAt: return FormatInstant(d.ClosedAt), true
    case DColEffectiveAt: return FormatInstant(d.EffectiveResolutionAt), true
    case DColResponseHours: return formatHours(d.ResponseHours), true
    case DColClosureHours: return formatHours(d.ClosureHours), true
    case DColCloseAfterResponse: return formatHours(d.CloseAfterResponseHours), true
    case DColSLA: return d.SLA.String(), true
    case DColRespondedNotClosed: return formatFlag(d.RespondedNotClosed), true
    case DColR2C: return formatFlag(d.R2C), true
    case DColR2CStrict: return formatFlag(d.R2CStrict), true
    case DColR2CHours: return formatHours(d.R2CHours), true
    case DColLastStatusChangeAt: return FormatInstant(d.LastStatusChangeAt), true
    case DColLastStatusEvent: return d.LastStatusEvent, true
    case DColLocationLeaf: return d.LocationLeaf, true
    }
    return "", false
}

func formatHours(v *float64) string {
    if v == nil { return "" }
    return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatFlag(b bool) string {
    if b { return "1" }
    return "0"
}
