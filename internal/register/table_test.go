package register

import "testing"

func TestSanitizeHeader(t *testing.T) {
    a := SanitizeHeader("Raised On Date")
    b := SanitizeHeader("Raised  On Date")
    c := SanitizeHeader("Raised On Date ")
    if a != "Raised On Date" || b != a || c != a {
        t.Fatalf("headers did not normalize to one label: %q %q %q", a, b, c)
    }
    if got := SanitizeHeader("Type–L0"); got != "Type-L0" {
        t.Fatalf("en dash not collapsed: %q", got)
    }
    if got := SanitizeHeader("Type—L1"); got != "Type-L1" {
        t.Fatalf("em dash not collapsed: %q", got)
    }
}

func TestSanitizeDropsDuplicatesKeepingFirst(t *testing.T) {
    tab := NewTable(
        []string{"Raised On Date", "Raised  On Date", "Current Status"},
        [][]string{{"1/1/2024", "9/9/2099", "Open"}},
    )
    s := tab.Sanitize()
    cols := s.Columns()
    if len(cols) != 2 { t.Fatalf("expected 2 columns after dedupe, got %v", cols) }
    if got := s.Cell("Raised On Date", 0); got != "1/1/2024" {
        t.Fatalf("first occurrence should survive, got %q", got)
    }
}

func TestMissingColumnReadsAllEmpty(t *testing.T) {
    tab := NewTable([]string{"A"}, [][]string{{"x"}, {"y"}})
    col := tab.Column("Nope")
    if len(col) != 2 { t.Fatalf("missing column length = %d", len(col)) }
    for _, v := range col {
        if v != "" { t.Fatalf("missing column should be all-empty, got %q", v) }
    }
    if tab.Has("Nope") { t.Fatalf("Has should be false for unknown column") }
}

func TestRaggedRowsPad(t *testing.T) {
    tab := NewTable([]string{"A", "B"}, [][]string{{"1"}, {"2", "3", "extra"}})
    if got := tab.Cell("B", 0); got != "" { t.Fatalf("short row should pad, got %q", got) }
    if got := tab.Cell("B", 1); got != "3" { t.Fatalf("got %q", got) }
}

func TestRename(t *testing.T) {
    tab := NewTable([]string{"NC Ref", "Status"}, [][]string{{"NC-1", "Open"}})
    out := tab.Rename(map[string]string{"NC Ref": "Reference ID"})
    if !out.Has("Reference ID") || out.Has("NC Ref") {
        t.Fatalf("alias not applied: %v", out.Columns())
    }
    if got := out.Cell("Reference ID", 0); got != "NC-1" { t.Fatalf("got %q", got) }

    // An alias colliding with an existing column is skipped.
    tab2 := NewTable([]string{"NC Ref", "Reference ID"}, [][]string{{"a", "b"}})
    out2 := tab2.Rename(map[string]string{"NC Ref": "Reference ID"})
    if got := out2.Cell("Reference ID", 0); got != "b" { t.Fatalf("collision should keep original, got %q", got) }
}

func TestSelectRows(t *testing.T) {
    tab := NewTable([]string{"A"}, [][]string{{"0"}, {"1"}, {"2"}})
    out := tab.SelectRows([]int{2, 0})
    if out.Rows() != 2 { t.Fatalf("rows = %d", out.Rows()) }
    if out.Cell("A", 0) != "2" || out.Cell("A", 1) != "0" {
        t.Fatalf("selection order wrong: %v", out.Column("A"))
    }
}
