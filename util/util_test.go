package util

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTickCounter(t *testing.T) {
	tc := NewTickCounter(3)
	expected := []bool{false, false, true, false, false, true}
	for i, e := range expected {
		if got := tc.Tick(1); got != e {
			t.Fatalf("tick %d: got %v, expected %v", i, got, e)
		}
	}
	tc.Tick(2)
	tc.Reset()
	if tc.Tick(2) {
		t.Fatalf("Tick after Reset fired early")
	}
	if !NewTickCounter(0).Tick(1) {
		t.Fatalf("zero target should fire on every tick")
	}
}

func TestClampInt(t *testing.T) {
	table := [][4]int{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, entry := range table {
		if got := ClampInt(entry[0], entry[1], entry[2]); got != entry[3] {
			t.Fatalf("ClampInt(%d, %d, %d): got %d, expected %d", entry[0], entry[1], entry[2], got, entry[3])
		}
	}
}

func TestTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	DisableTrace()
	Trace("hidden %d", 1)
	EnableTrace()
	Trace("shown %d", 2)
	DisableTrace()

	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "shown 2" {
		t.Fatalf("got %v", entries)
	}
}

type callErr struct{}

func (callErr) Error() string    { return "boom" }
func (callErr) CallSite() string { return "SDL_CreateWindow" }

func TestCallSiter(t *testing.T) {
	var cs CallSiter
	err := errors.Join(errors.New("setup"), callErr{})
	if !errors.As(err, &cs) || cs.CallSite() != "SDL_CreateWindow" {
		t.Fatalf("CallSite not found in %v", err)
	}
}
