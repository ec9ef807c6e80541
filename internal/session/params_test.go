package session

import (
	"math"
	"testing"
)

func TestParametersSnapshot(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step()
	snap := s.Parameters()
	gen, ok := snap.Lookup("generation")
	if !ok || gen.Value != "1" {
		t.Fatalf("generation param = %+v, %v", gen, ok)
	}
	if w, _ := snap.Lookup("w"); w.Value != "60" {
		t.Fatalf("width param = %q", w.Value)
	}
	if _, ok := snap.Lookup("pop_max"); !ok {
		t.Fatal("statistics group should be present once history has data")
	}
}

func TestControlsHaveSetters(t *testing.T) {
	s, _ := newTestSession(t)
	for _, ctrl := range s.ParameterControls() {
		if !ctrl.HasMin || !ctrl.HasMax || ctrl.Step <= 0 {
			t.Errorf("control %s lacks bounds or step", ctrl.Key)
		}
		if _, ok := s.Parameters().Lookup(ctrl.Key); !ok {
			t.Errorf("control %s has no displayed value", ctrl.Key)
		}
	}
}

func TestSetIntParameter(t *testing.T) {
	s, _ := newTestSession(t)
	if !s.SetIntParameter("w", 80) || s.Grid().Width() != 80 {
		t.Fatal("width change should rebuild the grid")
	}
	if !s.SetIntParameter("h", 30) || s.Grid().Height() != 30 {
		t.Fatal("height change should rebuild the grid")
	}
	if s.SetIntParameter("w", 5) {
		t.Fatal("width below minimum should be rejected")
	}
	if s.SetIntParameter("generation", 3) {
		t.Fatal("unknown key should be rejected")
	}
}

func TestSetFloatParameter(t *testing.T) {
	s, _ := newTestSession(t)
	if !s.SetFloatParameter("speed", 20) || s.Speed() != 20 {
		t.Fatal("speed not applied")
	}
	if !s.SetFloatParameter("density", 0.5) || s.Density() != 0.5 {
		t.Fatal("density not applied")
	}
	if !s.SetFloatParameter("zoom", 1.5) || s.View().Zoom != 1.5 {
		t.Fatal("zoom not applied")
	}
	if s.SetFloatParameter("speed", math.NaN()) {
		t.Fatal("NaN should be rejected")
	}
	if s.SetFloatParameter("bogus", 1) {
		t.Fatal("unknown key should be rejected")
	}
}
