/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package ingest

import (
    "bytes"
    "encoding/csv"
    "fmt"
    "io"
    "os"
    "unicode/utf8"

    "golang.org/x/text/encoding/charmap"

    "github.com/dnyanesh57/NC-Dashboard/internal/register"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV parses a register export into a raw table. Field exports arrive in
// mixed encodings: UTF-8 (with or without BOM) is tried first, anything that
// fails validation is decoded as Latin-1. Structural CSV errors are fatal;
// ragged rows are tolerated and padded by the table.
func ReadCSV(r io.Reader) (*register.Table, error) {
    raw, err := io.ReadAll(r)
    if err != nil { return nil, fmt.Errorf("read register: %w", err) }
    raw = bytes.TrimPrefix(raw, utf8BOM)
    if !utf8.Valid(raw) {
        raw, err = charmap.ISO8859_1.NewDecoder().Bytes(raw)
        if err != nil { return nil, fmt.Errorf("decode register: %w", err) }
    }

    cr := csv.NewReader(bytes.NewReader(raw))
    cr.FieldsPerRecord = -1
    recs, err := cr.ReadAll()
    if err != nil { return nil, fmt.Errorf("parse register csv: %w", err) }
    if len(recs) == 0 { return nil, fmt.Errorf("parse register csv: no header row") }

    return register.NewTable(recs[0], recs[1:]), nil
}

// ReadCSVFile is ReadCSV over a path.
func ReadCSVFile(path string) (*register.Table, error) {
    f, err := os.Open(path)
    if err != nil { return nil, fmt.Errorf("open register: %w", err) }
    defer f.Close()
    return ReadCSV(f)
}
