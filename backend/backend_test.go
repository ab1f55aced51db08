package backend

import (
	"testing"

	"github.com/ezxgo/ezx"
)

func TestSoftEngineRegistered(t *testing.T) {
	if !IsRegistered(EngineSoft) {
		t.Fatal("soft engine not registered on import")
	}
	e := Get(EngineSoft)
	if e == nil {
		t.Fatal("Get(EngineSoft) returned nil")
	}
	if _, ok := e.(*ezx.SoftEngine); !ok {
		t.Fatalf("Get(EngineSoft) = %T, want *ezx.SoftEngine", e)
	}
}

func TestGetUnknown(t *testing.T) {
	if e := Get("no-such-engine"); e != nil {
		t.Fatalf("Get(unknown) = %T, want nil", e)
	}
}

func TestDefaultFallsBackToSoft(t *testing.T) {
	e := Default()
	if e == nil {
		t.Fatal("Default() returned nil with soft engine registered")
	}
}

func TestRegisterReplaceAndUnregister(t *testing.T) {
	Register("custom", func() ezx.Engine { return ezx.NewSoftEngine() })
	defer Unregister("custom")

	if !IsRegistered("custom") {
		t.Fatal("custom engine not registered")
	}
	found := false
	for _, name := range Available() {
		if name == "custom" {
			found = true
		}
	}
	if !found {
		t.Fatal("custom engine missing from Available()")
	}

	Unregister("custom")
	if IsRegistered("custom") {
		t.Fatal("custom engine still registered after Unregister")
	}
}

func TestMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("MustDefault panicked: %v", r)
		}
	}()
	if MustDefault() == nil {
		t.Fatal("MustDefault returned nil")
	}
}
