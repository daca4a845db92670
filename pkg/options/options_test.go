package options

import (
	"testing"

	"github.com/vango-dev/navkit/pkg/reactive"
)

var _ reactive.Readable[Options] = (*Store)(nil)

func TestDefault(t *testing.T) {
	o := Default()
	if o.Mode != ModeWindow {
		t.Errorf("Mode = %q, want %q", o.Mode, ModeWindow)
	}
	if o.BasePath != nil {
		t.Errorf("BasePath = %v, want nil", o.BasePath)
	}
	if o.BasePathOr("/") != "/" {
		t.Errorf("BasePathOr() = %q, want /", o.BasePathOr("/"))
	}
}

func TestSubscribeDeliversCurrentThenChanges(t *testing.T) {
	s := New(Default())

	var modes []Mode
	unsub := s.Subscribe(func(o Options) { modes = append(modes, o.Mode) })
	defer unsub()

	s.Set(WithMode(ModeHash))

	if len(modes) != 2 || modes[0] != ModeWindow || modes[1] != ModeHash {
		t.Errorf("modes = %v", modes)
	}
}

func TestSetIsShallowMerge(t *testing.T) {
	s := New(Default())

	s.Set(WithBasePath("/app"))
	s.Set(WithMode(ModeHash))

	o := s.Get()
	if o.Mode != ModeHash {
		t.Errorf("Mode = %q, want hash", o.Mode)
	}
	if o.BasePathOr("") != "/app" {
		t.Errorf("BasePath = %q, want /app", o.BasePathOr(""))
	}

	s.Set(WithoutBasePath())
	if s.Get().BasePath != nil {
		t.Error("WithoutBasePath should clear BasePath")
	}
	if s.Get().Mode != ModeHash {
		t.Error("clearing BasePath should keep Mode")
	}
}

func TestSetAlwaysNotifies(t *testing.T) {
	s := New(Default())

	calls := 0
	unsub := s.Subscribe(func(Options) { calls++ })
	defer unsub()

	s.Set()
	s.Set(WithMode(ModeWindow))

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestUnknownModeIsAccepted(t *testing.T) {
	s := New(Default())
	s.Set(WithMode("memory"))

	if s.Get().Mode != "memory" {
		t.Errorf("Mode = %q, want memory", s.Get().Mode)
	}
	if s.Get().Mode.Known() {
		t.Error("memory should not be a known mode")
	}
}

func TestMergePartial(t *testing.T) {
	base := "/docs"
	s := New(Options{Mode: ModeWindow, BasePath: &base})

	hash := ModeHash
	s.Set(Merge(Partial{Mode: &hash}))
	if o := s.Get(); o.Mode != ModeHash || o.BasePathOr("") != "/docs" {
		t.Errorf("after mode merge: %+v", o)
	}

	var cleared *string
	s.Set(Merge(Partial{BasePath: &cleared}))
	if s.Get().BasePath != nil {
		t.Error("BasePath should be cleared")
	}
}

func TestNilOptionIgnored(t *testing.T) {
	s := New(Default())
	s.Set(nil, WithMode(ModeHash))
	if s.Get().Mode != ModeHash {
		t.Errorf("Mode = %q", s.Get().Mode)
	}
}
