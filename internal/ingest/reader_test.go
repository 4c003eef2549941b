package ingest

import (
    "strings"
    "testing"
)

func TestReadCSVUTF8(t *testing.T) {
    tab, err := ReadCSV(strings.NewReader("Reference ID,Current Status\nNC-1,Open\nNC-2,Closed\n"))
    if err != nil { t.Fatalf("read: %v", err) }
    if tab.Rows() != 2 { t.Fatalf("rows = %d", tab.Rows()) }
    if got := tab.Cell("Current Status", 1); got != "Closed" { t.Fatalf("got %q", got) }
}

func TestReadCSVStripsBOM(t *testing.T) {
    tab, err := ReadCSV(strings.NewReader("\xEF\xBB\xBFReference ID\nNC-1\n"))
    if err != nil { t.Fatalf("read: %v", err) }
    if !tab.Has("Reference ID") { t.Fatalf("BOM leaked into header: %v", tab.Columns()) }
}

func TestReadCSVLatin1Fallback(t *testing.T) {
    // 0xE9 is é in Latin-1 and invalid as standalone UTF-8.
    tab, err := ReadCSV(strings.NewReader("Assigned Team User\nRen\xE9\n"))
    if err != nil { t.Fatalf("read: %v", err) }
    if got := tab.Cell("Assigned Team User", 0); got != "René" {
        t.Fatalf("latin-1 cell = %q", got)
    }
}

func TestReadCSVRaggedRows(t *testing.T) {
    tab, err := ReadCSV(strings.NewReader("A,B\n1\n2,3\n"))
    if err != nil { t.Fatalf("ragged rows must parse: %v", err) }
    if got := tab.Cell("B", 0); got != "" { t.Fatalf("got %q", got) }
}

func TestReadCSVStructuralError(t *testing.T) {
    if _, err := ReadCSV(strings.NewReader("A,B\n\"unterminated\n")); err == nil {
        t.Fatalf("expected parse error")
    }
    if _, err := ReadCSV(strings.NewReader("")); err == nil {
        t.Fatalf("expected error for empty input")
    }
}
