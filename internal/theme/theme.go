/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */

// Package theme carries the locked SJCPL brand palette used by dashboard
// clients so every surface colours statuses and metrics identically.
package theme

import (
    "fmt"
    "math"
    "strconv"
    "strings"
)

const (
    White = "#FFFFFF"
    Black = "#000000"
    Grey  = "#939598"
    Blue  = "#00AEDA"
)

// StatusColors maps register statuses onto the brand palette.
var StatusColors = map[string]string{
    "Closed":     Black,
    "Resolved":   Black,
    "Approved":   Grey,
    "In Process": Blue,
    "In-Process": Blue,
    "Open":       Blue,
    "Redo":       Grey,
    "Rejected":   Grey,
    "Responded":  Blue,
}

// MetricColors maps KPI cards onto the brand palette.
var MetricColors = map[string]string{
    "Total":    Blue,
    "Resolved": Black,
    "R2C":      Grey,
    "Open":     Blue,
    "RespOnly": Grey,
}

type rgb struct{ r, g, b int }

func hexToRGB(h string) rgb {
    h = strings.TrimPrefix(h, "#")
    if len(h) != 6 { return rgb{} }
    r, _ := strconv.ParseInt(h[0:2], 16, 32)
    g, _ := strconv.ParseInt(h[2:4], 16, 32)
    b, _ := strconv.ParseInt(h[4:6], 16, 32)
    return rgb{int(r), int(g), int(b)}
}

func rgbToHex(c rgb) string {
    return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// Mix linearly interpolates two hex colours at t in [0,1].
func Mix(c1, c2 string, t float64) string {
    a, b := hexToRGB(c1), hexToRGB(c2)
    return rgbToHex(rgb{
        r: int(math.Round(float64(a.r) + float64(b.r-a.r)*t)),
        g: int(math.Round(float64(a.g) + float64(b.g-a.g)*t)),
        b: int(math.Round(float64(a.b) + float64(b.b-a.b)*t)),
    })
}

// TextOn picks a readable foreground for the given background.
func TextOn(bg string) string {
    c := hexToRGB(bg)
    lum := 0.2126*float64(c.r) + 0.7152*float64(c.g) + 0.0722*float64(c.b)
    if lum < 140 { return White }
    return Black
}

// gradientAt samples the WHITE→BLUE→BLACK ramp at t in [0,1].
func gradientAt(t float64) string {
    if t <= 0.5 { return Mix(White, Blue, t/0.5) }
    return Mix(Blue, Black, (t-0.5)/0.5)
}

// SampleGradient evenly samples n distinct colours from the brand ramp,
// clamped away from pure white and pure black.
func SampleGradient(n int) []string {
    const lo, hi = 0.06, 0.94
    if n <= 0 { return nil }
    xs := make([]float64, n)
    if n == 1 {
        xs[0] = lo
    } else {
        step := (hi - lo) / float64(n-1)
        for i := range xs { xs[i] = lo + float64(i)*step }
    }
    seen := map[string]bool{}
    out := make([]string, 0, n)
    for _, t := range xs {
        c := gradientAt(t)
        if seen[strings.ToUpper(c)] {
            tj := math.Min(hi, math.Max(lo, t+0.001))
            c = gradientAt(tj)
        }
        seen[strings.ToUpper(c)] = true
        out = append(out, c)
    }
    return out
}

// Sequence returns n colours starting from the base brand trio and extending
// with gradient samples so no colour repeats.
func Sequence(n int) []string {
    base := []string{Blue, Grey, Black}
    if n <= len(base) { return base[:n] }
    return append(base, SampleGradient(n-len(base))...)
}

// MapFor assigns each unique value a stable brand-derived colour, in first
// occurrence order.
func MapFor(values []string) map[string]string {
    var uniq []string
    seen := map[string]bool{}
    for _, v := range values {
        if seen[v] { continue }
        seen[v] = true
        uniq = append(uniq, v)
    }
    cols := Sequence(len(uniq))
    out := make(map[string]string, len(uniq))
    for i, v := range uniq { out[v] = cols[i] }
    return out
}
