package request

import (
	"errors"
	"testing"
)

func TestResolveCheckoutPayload(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		got, err := ResolveCheckoutPayload([]byte("  "))
		if err != nil || string(got) != "{}" {
			t.Fatalf("unexpected result: %s err=%v", got, err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ResolveCheckoutPayload([]byte("{")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("wrapped payload", func(t *testing.T) {
		got, err := ResolveCheckoutPayload([]byte(`{"mp_payload":{"payment_method_id":"pix"}}`))
		if err != nil || string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected result: %s err=%v", got, err)
		}
	})

	t.Run("null wrapped payload", func(t *testing.T) {
		if _, err := ResolveCheckoutPayload([]byte(`{"mp_payload":null}`)); !errors.Is(err, ErrEmptyMPPayload) {
			t.Fatalf("expected ErrEmptyMPPayload, got %v", err)
		}
	})

	t.Run("bare payload", func(t *testing.T) {
		got, err := ResolveCheckoutPayload([]byte(`{"payment_method_id":"pix"}`))
		if err != nil || string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected result: %s err=%v", got, err)
		}
	})
}
