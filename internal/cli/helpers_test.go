package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/salidas/internal/outing"
	"github.com/faizmokh/salidas/internal/store"
)

var fixedNow = time.Date(2024, time.March, 5, 8, 15, 0, 0, time.Local)

type recordingSink struct {
	texts []string
	err   error
}

func (s *recordingSink) WriteText(text string) error {
	if s.err != nil {
		return s.err
	}
	s.texts = append(s.texts, text)
	return nil
}

func newTestEnv(t *testing.T) (*Env, *store.MemoryStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	adapter := outing.NewAdapter(kv, "", nil)
	log, err := outing.Open(context.Background(), adapter)
	if err != nil {
		t.Fatalf("outing.Open: %v", err)
	}
	env := &Env{
		Log:     log,
		Adapter: adapter,
		Sink:    &recordingSink{},
		Now:     func() time.Time { return fixedNow },
		Confirm: func(string) (bool, error) {
			t.Fatalf("unexpected confirmation prompt")
			return false, nil
		},
		Form: func(*addInput) error {
			t.Fatalf("unexpected form")
			return nil
		},
	}
	env.fillDefaults()
	return env, kv
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func executeCommandErr(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func TestResolveDateDefaultsToToday(t *testing.T) {
	got, err := resolveDate(fixedNow, "")
	if err != nil {
		t.Fatalf("resolveDate: %v", err)
	}
	if got != "2024-03-05" {
		t.Fatalf("resolveDate = %q, want 2024-03-05", got)
	}

	if _, err := resolveDate(fixedNow, "05/03/2024"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}

func TestResolveClock(t *testing.T) {
	got, err := resolveClock(fixedNow, "")
	if err != nil {
		t.Fatalf("resolveClock: %v", err)
	}
	if got != "08:15" {
		t.Fatalf("resolveClock default = %q, want 08:15", got)
	}

	got, err = resolveClock(fixedNow, " 17:40 ")
	if err != nil {
		t.Fatalf("resolveClock: %v", err)
	}
	if got != "17:40" {
		t.Fatalf("resolveClock = %q, want 17:40", got)
	}

	if _, err := resolveClock(fixedNow, "25:00"); err == nil {
		t.Fatalf("expected error for out of range hour")
	}
}
