package ledger

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func TestAddSubtract(t *testing.T) {
	cases := []struct {
		name     string
		op       func(a, b string) string
		a, b     string
		expected string
	}{
		{"add trims trailing zeros", Add, "100.500", "0", "100.5"},
		{"add no float drift", Add, "0.1", "0.2", "0.3"},
		{"add integers", Add, "10", "5", "15"},
		{"add whole result drops point", Add, "1.000", "2.000", "3"},
		{"add empty strings", Add, "", "", "0"},
		{"add blank reads zero", Add, "  ", "7.25", "7.25"},
		{"add unparseable reads zero", Add, "abc", "1", "1"},
		{"add truncates fourth digit", Add, "1.23456", "0", "1.234"},
		{"add truncates negative toward zero", Add, "-1.2349", "0", "-1.234"},
		{"subtract fuel net", Subtract, "100.500", "40.250", "60.25"},
		{"subtract to zero", Subtract, "1", "1", "0"},
		{"subtract below zero", Subtract, "0", "2.5", "-2.5"},
		{"subtract tiny negative truncates to zero", Subtract, "0", "0.0004", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.op(tc.a, tc.b)
			if got != tc.expected {
				t.Fatalf("(%q, %q) expected %s, got %s", tc.a, tc.b, tc.expected, got)
			}
		})
	}
}

func TestQuantityAccumulatesManySmallValues(t *testing.T) {
	total := Zero
	for i := 0; i < 10000; i++ {
		total = total.Add(ParseQuantity("0.001"))
	}
	if total.String() != "10" {
		t.Fatalf("expected 10, got %s", total.String())
	}
}

func TestQuantityMarshalJSON(t *testing.T) {
	b, err := ParseQuantity("12.340").MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"12.34"` {
		t.Fatalf("expected \"12.34\", got %s", b)
	}
}

func TestQuantityCmp(t *testing.T) {
	if ParseQuantity("2").Cmp(ParseQuantity("10")) >= 0 {
		t.Fatal("expected 2 < 10")
	}
	if ParseQuantity("1.0").Cmp(ParseQuantity("1")) != 0 {
		t.Fatal("expected 1.0 == 1")
	}
}

func milliString(v int64) string {
	return decimal.New(v, -Scale).String()
}

func TestLedgerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	bound := int64(1_000_000_000_000)

	properties.Property("subtract undoes add", prop.ForAll(
		func(a, b int64) bool {
			as, bs := milliString(a), milliString(b)
			return Subtract(Add(as, bs), bs) == Canonical(as)
		},
		gen.Int64Range(-bound, bound),
		gen.Int64Range(-bound, bound),
	))

	properties.Property("add is commutative", prop.ForAll(
		func(a, b int64) bool {
			as, bs := milliString(a), milliString(b)
			return Add(as, bs) == Add(bs, as)
		},
		gen.Int64Range(-bound, bound),
		gen.Int64Range(-bound, bound),
	))

	properties.Property("canonical form is stable", prop.ForAll(
		func(a int64) bool {
			c := Canonical(milliString(a))
			return Canonical(c) == c && c != ""
		},
		gen.Int64Range(-bound, bound),
	))

	properties.TestingRun(t)
}
