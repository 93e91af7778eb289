package enum

import "testing"

func TestCounterName(t *testing.T) {
	cases := []struct {
		kind DocumentKind
		year int
		want string
	}{
		{KindSale, 2026, "ventas_2026"},
		{KindSettlement, 2026, "liquidaciones_2026"},
		{KindSale, 2027, "ventas_2027"},
	}
	for _, tc := range cases {
		if got := tc.kind.CounterName(tc.year); got != tc.want {
			t.Fatalf("CounterName(%s, %d) = %q, want %q", tc.kind, tc.year, got, tc.want)
		}
	}
}

func TestPaymentMethodStatus(t *testing.T) {
	if got := MethodPaid.Status(); got != PaymentPaid {
		t.Fatalf("MethodPaid.Status() = %s, want %s", got, PaymentPaid)
	}
	if got := MethodCredit.Status(); got != PaymentPending {
		t.Fatalf("MethodCredit.Status() = %s, want %s", got, PaymentPending)
	}
}

func TestItemCategoryIsValid(t *testing.T) {
	if !CategoryProduce.IsValid() || !CategoryMaterial.IsValid() {
		t.Fatal("known categories must be valid")
	}
	if ItemCategory("fruta").IsValid() {
		t.Fatal("unknown category must be invalid")
	}
}
