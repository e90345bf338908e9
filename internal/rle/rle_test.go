package rle

import "testing"

func TestScenarioS1(t *testing.T) {
	in := "ff00ff00ff00"
	enc := Encode(in)
	if enc != "2P2A2P2A2P2A" {
		t.Fatalf("got %q, want %q", enc, "2P2A2P2A2P2A")
	}
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec != in {
		t.Fatalf("round-trip got %q, want %q", dec, in)
	}
}

func TestRoundTripSingletons(t *testing.T) {
	in := "0123456789abcdef"
	dec, err := Decode(Encode(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec != in {
		t.Fatalf("got %q, want %q", dec, in)
	}
}

func TestEmptyString(t *testing.T) {
	if Encode("") != "" {
		t.Fatal("expected empty encode of empty string")
	}
	dec, err := Decode("")
	if err != nil || dec != "" {
		t.Fatalf("expected empty decode, got %q err=%v", dec, err)
	}
}
