package theme

import "testing"

func TestMixEndpoints(t *testing.T) {
    if got := Mix(White, Black, 0); got != "#FFFFFF" { t.Fatalf("t=0: %q", got) }
    if got := Mix(White, Black, 1); got != "#000000" { t.Fatalf("t=1: %q", got) }
    if got := Mix(White, Black, 0.5); got != "#808080" { t.Fatalf("t=0.5: %q", got) }
}

func TestTextOn(t *testing.T) {
    if got := TextOn(Black); got != White { t.Fatalf("on black: %q", got) }
    if got := TextOn(White); got != Black { t.Fatalf("on white: %q", got) }
    if got := TextOn(Blue); got != Black { t.Fatalf("on brand blue: %q", got) }
}

func TestSampleGradientDistinct(t *testing.T) {
    for _, n := range []int{1, 3, 12} {
        cols := SampleGradient(n)
        if len(cols) != n { t.Fatalf("n=%d: len = %d", n, len(cols)) }
        seen := map[string]bool{}
        for _, c := range cols {
            if seen[c] { t.Fatalf("n=%d: duplicate %q", n, c) }
            seen[c] = true
            if c == White || c == Black { t.Fatalf("clamp failed: %q", c) }
        }
    }
    if SampleGradient(0) != nil { t.Fatalf("n=0 must be empty") }
}

func TestSequenceStartsWithBrandTrio(t *testing.T) {
    cols := Sequence(5)
    if cols[0] != Blue || cols[1] != Grey || cols[2] != Black {
        t.Fatalf("base trio wrong: %v", cols[:3])
    }
    if len(cols) != 5 { t.Fatalf("len = %d", len(cols)) }
}

func TestMapForStable(t *testing.T) {
    m := MapFor([]string{"Open", "Closed", "Open", "Redo"})
    if len(m) != 3 { t.Fatalf("len = %d", len(m)) }
    if m["Open"] != Blue { t.Fatalf("first value should take the first brand colour, got %q", m["Open"]) }
}
