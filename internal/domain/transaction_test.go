package domain

import "testing"

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range []PaymentMethod{MethodUPI, MethodCard, MethodWallet} {
		if !m.Valid() {
			t.Fatalf("expected %q to be valid", m)
		}
	}
	for _, m := range []PaymentMethod{"", "upi", "NetBanking"} {
		if m.Valid() {
			t.Fatalf("expected %q to be invalid", m)
		}
	}
}

func TestTransactionStatusValid(t *testing.T) {
	if !StatusSuccess.Valid() || !StatusFailed.Valid() {
		t.Fatalf("expected enum constants to be valid")
	}
	if TransactionStatus("pending").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}
