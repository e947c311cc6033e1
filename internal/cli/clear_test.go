package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/faizmokh/salidas/internal/outing"
)

func TestClearCommandWithYes(t *testing.T) {
	env, kv := newTestEnv(t)
	seedOutings(t, env,
		outing.Record{Date: "2024-01-01", Departure: "09:00", Return: "10:00", Reason: "A"},
		outing.Record{Date: "2024-01-02", Departure: "09:00", Return: "09:30", Reason: "B"},
	)

	out := executeCommand(t, newClearCommand(context.Background(), env), "--yes")

	assertContains(t, out, "Cleared 2 outings.")
	assertContains(t, out, "Tiempo utilizado: 0 horas 0 minutos")
	assertContains(t, out, "Tiempo remanente: 12 horas 0 minutos")
	if env.Log.Len() != 0 || env.Log.TotalMinutes() != outing.BudgetMinutes {
		t.Fatalf("log not reset: len=%d total=%d", env.Log.Len(), env.Log.TotalMinutes())
	}
	if _, ok, _ := kv.Get(context.Background(), outing.StorageKey); ok {
		t.Fatalf("stored value should be removed")
	}
}

func TestClearCommandConfirmation(t *testing.T) {
	env, _ := newTestEnv(t)
	seedOutings(t, env, outing.Record{Date: "2024-01-01", Departure: "09:00", Return: "10:00", Reason: "A"})

	var prompt string
	env.Confirm = func(title string) (bool, error) {
		prompt = title
		return false, nil
	}

	out := executeCommand(t, newClearCommand(context.Background(), env))

	if prompt != "Borrar 1 salida registrada?" {
		t.Fatalf("prompt = %q", prompt)
	}
	assertContains(t, out, "Clear cancelled.")
	if env.Log.Len() != 1 {
		t.Fatalf("refused clear must keep records")
	}

	env.Confirm = func(string) (bool, error) { return true, nil }
	out = executeCommand(t, newClearCommand(context.Background(), env))
	assertContains(t, out, "Cleared 1 outing.")
	if env.Log.Len() != 0 {
		t.Fatalf("confirmed clear must empty the log")
	}
}

func TestClearCommandConfirmError(t *testing.T) {
	env, _ := newTestEnv(t)
	env.Confirm = func(string) (bool, error) { return false, errors.New("user aborted") }

	if err := executeCommandErr(t, newClearCommand(context.Background(), env)); err == nil {
		t.Fatalf("expected confirm error to propagate")
	}
}
