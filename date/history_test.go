package date

import (
	"testing"
)

func TestHistoryAppendKeepsOrder(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2024-03-01"), 3)
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-02-01"), 2)

	var days []string
	var values []float64
	for on, v := range h.Values() {
		days = append(days, on.String())
		values = append(values, v)
	}
	wantDays := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	for i, w := range wantDays {
		if days[i] != w {
			t.Fatalf("days = %v, want %v", days, wantDays)
		}
	}
	for i, w := range []float64{1, 2, 3} {
		if values[i] != w {
			t.Fatalf("values = %v, want [1 2 3]", values)
		}
	}
}

func TestHistoryAppendReplacesDuplicateDate(t *testing.T) {
	var h History[float64]
	on := MustParse("2024-01-01")
	h.Append(on, 1).Append(on, 2)

	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 2 {
		t.Errorf("Get = %v, %v, want 2, true", v, ok)
	}
}

func TestHistoryLatest(t *testing.T) {
	var h History[string]
	if day, v := h.Latest(); !day.IsZero() || v != "" {
		t.Errorf("Latest on empty = %v, %q, want zero values", day, v)
	}
	h.Append(MustParse("2024-01-01"), "a")
	h.Append(MustParse("2024-06-01"), "b")
	day, v := h.Latest()
	if day != MustParse("2024-06-01") || v != "b" {
		t.Errorf("Latest = %v, %q, want 2024-06-01, b", day, v)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-01-10"), 2)

	testCases := []struct {
		name  string
		day   string
		want  float64
		found bool
	}{
		{"Exact hit", "2024-01-10", 2, true},
		{"Between points", "2024-01-05", 1, true},
		{"After all points", "2024-02-01", 2, true},
		{"Before all points", "2023-12-31", 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(MustParse(tc.day))
			if ok != tc.found || got != tc.want {
				t.Errorf("ValueAsOf(%s) = %v, %v, want %v, %v", tc.day, got, ok, tc.want, tc.found)
			}
		})
	}
}

func TestHistoryBetween(t *testing.T) {
	var h History[float64]
	for i := 1; i <= 5; i++ {
		h.Append(New(2024, 1, i), float64(i))
	}
	sub := h.Between(NewRange(MustParse("2024-01-02"), MustParse("2024-01-04")))
	if sub.Len() != 3 {
		t.Fatalf("Len = %d, want 3", sub.Len())
	}
	if day, v := sub.Oldest(); day != MustParse("2024-01-02") || v != 2 {
		t.Errorf("Oldest = %v, %v, want 2024-01-02, 2", day, v)
	}
	if day, v := sub.Latest(); day != MustParse("2024-01-04") || v != 4 {
		t.Errorf("Latest = %v, %v, want 2024-01-04, 4", day, v)
	}
}
