package services

import (
    "context"
    "errors"
    "strings"
    "testing"

    "github.com/rs/zerolog"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
    "github.com/dnyanesh57/NC-Dashboard/internal/domain"
    "github.com/dnyanesh57/NC-Dashboard/internal/register"
)

type fakeFetcher struct {
    tab *register.Table
    err error
}

func (f *fakeFetcher) Fetch(ctx context.Context) (*register.Table, error) { return f.tab, f.err }

type fakeAuditor struct {
    started  []domain.LoadRun
    finished []bool
}

func (a *fakeAuditor) StartLoadRun(ctx context.Context, run domain.LoadRun) (int64, error) {
    a.started = append(a.started, run)
    return int64(len(a.started)), nil
}

func (a *fakeAuditor) FinishLoadRun(ctx context.Context, id int64, rows int, ok bool, note string) error {
    a.finished = append(a.finished, ok)
    return nil
}

func (a *fakeAuditor) GetLastRun(ctx context.Context) (*domain.LoadRun, error) {
    if len(a.started) == 0 { return nil, nil }
    run := a.started[len(a.started)-1]
    return &run, nil
}

func newService(fetch TableFetcher, audit LoadAuditor) *Service {
    return New(config.Config{}, zerolog.Nop(), fetch, audit)
}

func TestCurrentBeforeLoad(t *testing.T) {
    s := newService(nil, nil)
    if _, err := s.Current(); !errors.Is(err, ErrNoRegister) {
        t.Fatalf("expected ErrNoRegister, got %v", err)
    }
    if _, err := s.Status(); !errors.Is(err, ErrNoRegister) {
        t.Fatalf("expected ErrNoRegister, got %v", err)
    }
}

func TestLoadFromReaderSwapsRegister(t *testing.T) {
    s := newService(nil, nil)
    st, err := s.LoadFromReader(context.Background(),
        strings.NewReader("Reference ID,Raised On Date\nNC-1,1/1/2024\n"), "upload")
    if err != nil { t.Fatalf("load: %v", err) }
    if st.Rows != 1 || st.LoadID == "" { t.Fatalf("status = %+v", st) }

    e, err := s.Current()
    if err != nil { t.Fatalf("current: %v", err) }
    if e.Derived[0].RaisedAt == nil { t.Fatalf("load did not derive") }

    // A second load replaces the snapshot and the load id.
    st2, err := s.LoadFromReader(context.Background(),
        strings.NewReader("Reference ID\nNC-9\nNC-10\n"), "upload")
    if err != nil { t.Fatalf("reload: %v", err) }
    if st2.LoadID == st.LoadID { t.Fatalf("load id must change per load") }
    e2, _ := s.Current()
    if e2.Rows() != 2 { t.Fatalf("rows = %d", e2.Rows()) }
}

func TestLoadBadCSVKeepsOldRegister(t *testing.T) {
    s := newService(nil, nil)
    if _, err := s.LoadFromReader(context.Background(),
        strings.NewReader("Reference ID\nNC-1\n"), "upload"); err != nil {
        t.Fatalf("seed load: %v", err)
    }
    if _, err := s.LoadFromReader(context.Background(),
        strings.NewReader("A,B\n\"broken\n"), "upload"); err == nil {
        t.Fatalf("expected parse error")
    }
    e, err := s.Current()
    if err != nil || e.Rows() != 1 { t.Fatalf("old register must survive a failed load") }
}

func TestRefreshUsesFetcherAndAudits(t *testing.T) {
    tab := register.NewTable([]string{"Reference ID"}, [][]string{{"NC-1"}})
    audit := &fakeAuditor{}
    s := newService(&fakeFetcher{tab: tab}, audit)

    st, err := s.Refresh(context.Background())
    if err != nil { t.Fatalf("refresh: %v", err) }
    if st.Source != "remote" { t.Fatalf("source = %q", st.Source) }
    if len(audit.started) != 1 || len(audit.finished) != 1 || !audit.finished[0] {
        t.Fatalf("expected one ok audit pair, got %+v %+v", audit.started, audit.finished)
    }

    run, err := s.LastRun(context.Background())
    if err != nil || run == nil || run.Source != "remote" {
        t.Fatalf("last run = %+v, %v", run, err)
    }
}

func TestRefreshFailureIsAudited(t *testing.T) {
    audit := &fakeAuditor{}
    s := newService(&fakeFetcher{err: errors.New("boom")}, audit)
    if _, err := s.Refresh(context.Background()); err == nil {
        t.Fatalf("expected fetch error")
    }
    if len(audit.finished) != 1 || audit.finished[0] {
        t.Fatalf("failed refresh must audit ok=false, got %+v", audit.finished)
    }
    if _, err := s.Current(); !errors.Is(err, ErrNoRegister) {
        t.Fatalf("failed refresh must not install a register")
    }
}

func TestColumnAliasesApplyOnLoad(t *testing.T) {
    cfg := config.Config{ColumnAliases: map[string]string{"NC Ref": "Reference ID"}}
    s := New(cfg, zerolog.Nop(), nil, nil)
    if _, err := s.LoadFromReader(context.Background(),
        strings.NewReader("NC Ref\nNC-1\n"), "upload"); err != nil {
        t.Fatalf("load: %v", err)
    }
    e, _ := s.Current()
    if !e.Has("Reference ID") { t.Fatalf("alias not applied: %v", e.Columns()) }
}
