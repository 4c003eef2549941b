/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package register

import (
    "fmt"
    "regexp"
    "strconv"
    "strings"
    "time"
)

// Explicit date/time parsing. Site exports mix D/M/Y with dashes or slashes,
// ISO dates, and 12h clock strings with stray periods; anything else resolves
// to absent rather than failing the load.

var (
    dateDMYSlash = regexp.MustCompile(`^\s*(\d{1,2})/(\d{1,2})/(\d{2,4})\s*$`)
    dateDMYDash  = regexp.MustCompile(`^\s*(\d{1,2})-(\d{1,2})-(\d{2,4})\s*$`)
    dateYMDDash  = regexp.MustCompile(`^\s*(\d{4})-(\d{1,2})-(\d{1,2})\s*$`)
    timeAMPM     = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([ap]m)\s*$`)
    time24       = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?::(\d{2}))?\s*$`)
)

const instantLayout = "2006-01-02 15:04:05"

func isMissing(s string) bool {
    switch strings.ToLower(strings.TrimSpace(s)) {
    case "", "nan", "nat", "none": return true
    }
    return false
}

// normYear expands two-digit years: <70 lands in the 2000s, the rest in the
// 1900s.
func normYear(y int) int {
    if y >= 100 { return y }
    if y < 70 { return 2000 + y }
    return 1900 + y
}

func validDate(y, m, d int) bool {
    if m < 1 || m > 12 || d < 1 || d > 31 { return false }
    t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
    return t.Year() == y && int(t.Month()) == m && t.Day() == d
}

// NormalizeDate resolves a raw date cell to canonical YYYY-MM-DD, or "" for
// absent. D/M/Y (slash or dash) is tried before Y-M-D; calendar-invalid
// values are absent, never an error.
func NormalizeDate(s string) string {
    if isMissing(s) { return "" }
    s = strings.TrimSpace(s)
    if m := firstMatch(s, dateDMYSlash, dateDMYDash); m != nil {
        d, _ := strconv.Atoi(m[1])
        mth, _ := strconv.Atoi(m[2])
        y := normYear(atoi(m[3]))
        if !validDate(y, mth, d) { return "" }
        return fmt.Sprintf("%04d-%02d-%02d", y, mth, d)
    }
    if m := dateYMDDash.FindStringSubmatch(s); m != nil {
        y, _ := strconv.Atoi(m[1])
        mth, _ := strconv.Atoi(m[2])
        d, _ := strconv.Atoi(m[3])
        if !validDate(y, mth, d) { return "" }
        return fmt.Sprintf("%04d-%02d-%02d", y, mth, d)
    }
    return ""
}

// NormalizeTime resolves a raw time cell to canonical HH:MM:SS (24h), or ""
// for absent. Accepts "2:30pm", "2:30 P.M.", "14:30", "14:30:05"; an am/pm
// string needs a 1-12 hour, and out-of-range components are absent.
func NormalizeTime(s string) string {
    if isMissing(s) { return "" }
    s0 := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), ".", "")
    if m := timeAMPM.FindStringSubmatch(s0); m != nil {
        hh, _ := strconv.Atoi(m[1])
        mm, _ := strconv.Atoi(m[2])
        ss := atoi(m[3])
        if hh < 1 || hh > 12 || mm > 59 || ss > 59 { return "" }
        if m[4] == "pm" && hh < 12 { hh += 12 }
        if m[4] == "am" && hh == 12 { hh = 0 }
        return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
    }
    if m := time24.FindStringSubmatch(s0); m != nil {
        hh, _ := strconv.Atoi(m[1])
        mm, _ := strconv.Atoi(m[2])
        ss := atoi(m[3])
        if hh > 23 || mm > 59 || ss > 59 { return "" }
        return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
    }
    return ""
}

// Combine merges a raw date cell and a raw time cell into one instant.
// No date means no instant regardless of the time; a date without a time
// lands at midnight. Timestamps are naive local times throughout.
func Combine(dateRaw, timeRaw string) *time.Time {
    d := NormalizeDate(dateRaw)
    if d == "" { return nil }
    tm := NormalizeTime(timeRaw)
    if tm == "" { tm = "00:00:00" }
    ts, err := time.Parse(instantLayout, d+" "+tm)
    if err != nil { return nil }
    return &ts
}

// FormatInstant renders an instant canonically, "" when absent.
func FormatInstant(t *time.Time) string {
    if t == nil { return "" }
    return t.Format(instantLayout)
}

func firstMatch(s string, res ...*regexp.Regexp) []string {
    for _, re := range res {
        if m := re.FindStringSubmatch(s); m != nil { return m }
    }
    return nil
}

func atoi(s string) int {
    if s == "" { return 0 }
    n, _ := strconv.Atoi(s)
    return n
}
