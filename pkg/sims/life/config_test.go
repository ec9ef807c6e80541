package life

import "testing"

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
}

func TestFromMapParsesValues(t *testing.T) {
	c := FromMap(map[string]string{"w": "80", "h": "60", "density": "0.45"})
	if c.Width != 80 || c.Height != 60 || c.Density != 0.45 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestFromMapRejectsInvalid(t *testing.T) {
	c := FromMap(map[string]string{"w": "-3", "h": "zero", "density": "nope"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
	c = FromMap(map[string]string{"density": "3"})
	if c.Density != 1 {
		t.Fatalf("density should clamp to 1, got %v", c.Density)
	}
	c = FromMap(map[string]string{"density": "-1"})
	if c.Density != 0 {
		t.Fatalf("density should clamp to 0, got %v", c.Density)
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Rule(true, n), n == 2 || n == 3; got != want {
			t.Errorf("Rule(alive, %d) = %v, want %v", n, got, want)
		}
		if got, want := Rule(false, n), n == 3; got != want {
			t.Errorf("Rule(dead, %d) = %v, want %v", n, got, want)
		}
	}
}
