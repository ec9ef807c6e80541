package stats

import (
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	p := New(100)
	if p.Limit() != 100 || !p.Visible() || p.HasData() {
		t.Fatalf("unexpected fresh tracker: limit=%d visible=%v data=%v", p.Limit(), p.Visible(), p.HasData())
	}
	if New(0).Limit() != DefaultHistory {
		t.Fatal("non-positive limit should fall back to the default")
	}
}

func TestAddAndAggregates(t *testing.T) {
	p := New(3)
	p.Add(10)
	p.Add(15)
	p.Add(12)

	if p.Len() != 3 {
		t.Fatalf("len = %d, want 3", p.Len())
	}
	if v, _ := p.Current(); v != 12 {
		t.Fatalf("current = %d, want 12", v)
	}
	if v, _ := p.Max(); v != 15 {
		t.Fatalf("max = %d, want 15", v)
	}
	if v, _ := p.Min(); v != 10 {
		t.Fatalf("min = %d, want 10", v)
	}
}

func TestHistoryLimit(t *testing.T) {
	p := New(2)
	for _, v := range []int{10, 15, 12, 8} {
		p.Add(v)
	}
	if !slices.Equal(p.History(), []int{12, 8}) {
		t.Fatalf("history = %v, want [12 8]", p.History())
	}
}

func TestEmptyAggregates(t *testing.T) {
	p := Default()
	if _, ok := p.Current(); ok {
		t.Fatal("empty tracker has no current value")
	}
	if _, ok := p.Max(); ok {
		t.Fatal("empty tracker has no max")
	}
	if _, ok := p.Min(); ok {
		t.Fatal("empty tracker has no min")
	}
	if _, ok := p.Average(); ok {
		t.Fatal("empty tracker has no average")
	}
}

func TestClear(t *testing.T) {
	p := New(10)
	p.Add(10)
	p.Add(15)
	p.Clear()
	if p.HasData() {
		t.Fatal("clear should drop all samples")
	}
}

func TestAverage(t *testing.T) {
	p := New(10)
	for _, v := range []int{10, 20, 30} {
		p.Add(v)
	}
	if avg, _ := p.Average(); avg != 20 {
		t.Fatalf("average = %v, want 20", avg)
	}
}

func TestTrend(t *testing.T) {
	p := New(10)
	for _, v := range []int{10, 10, 10} {
		p.Add(v)
	}
	if _, ok := p.Trend(2); ok {
		t.Fatal("trend needs two full windows")
	}
	p.Add(30)
	if dir, ok := p.Trend(2); !ok || dir != 1 {
		t.Fatalf("trend = %d,%v, want growth", dir, ok)
	}
	p.Add(0)
	p.Add(0)
	if dir, _ := p.Trend(2); dir != -1 {
		t.Fatalf("trend = %d, want decline", dir)
	}
	p.Add(0)
	p.Add(1)
	if dir, _ := p.Trend(2); dir != 0 {
		t.Fatalf("trend = %d, want stable", dir)
	}
}

func TestStable(t *testing.T) {
	p := New(10)
	for i := 0; i < 5; i++ {
		p.Add(100 + i%2)
	}
	if !p.Stable(5, 2) {
		t.Fatal("alternating 100/101 should be stable within 2")
	}
	p.Add(200)
	if p.Stable(6, 2) {
		t.Fatal("a jump to 200 is not stable")
	}
	if p.Stable(20, 2) {
		t.Fatal("window larger than history cannot be stable")
	}
}
