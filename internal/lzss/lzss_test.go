package lzss

import "testing"

func TestDecompressLiteralRun(t *testing.T) {
	// header 0x10, size 5, one control byte with all-literal flags (0x00),
	// then "ABCDE". Scenario S2 from the spec.
	in := []byte{0x10, 0x05, 0x00, 0x00, 0x00, 'A', 'B', 'C', 'D', 'E'}
	out, err := Decompress(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "ABCDE" {
		t.Fatalf("got %q, want %q", out, "ABCDE")
	}
}

func TestDecompressBackReference(t *testing.T) {
	// "AAAAAAAA": one literal A, then a back-reference of count 7,
	// displacement 1 (disp field 0, count field 0x4 -> count 3+4=7).
	// control byte, read MSB first: bit7=0 (literal A), bit6=1 (back-ref), rest irrelevant
	// since size is reached after these two tokens.
	control := byte(0b01000000)
	token := []byte{0x40, 0x00} // count nibble 4 -> count 7, disp 0 -> disp 1
	in := []byte{0x10, 0x08, 0x00, 0x00, control, 'A'}
	in = append(in, token...)
	out, err := Decompress(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "AAAAAAAA" {
		t.Fatalf("got %q, want %q", out, "AAAAAAAA")
	}
}

func TestBadHeader(t *testing.T) {
	_, err := Decompress([]byte{0x11, 0, 0, 0})
	if err == nil {
		t.Fatal("expected error for bad header")
	}
}

func TestSizeMismatch(t *testing.T) {
	// declares size 5 but only provides 3 literal bytes before input runs out.
	in := []byte{0x10, 0x05, 0x00, 0x00, 0x00, 'A', 'B', 'C'}
	_, err := Decompress(in)
	if err == nil {
		t.Fatal("expected size mismatch error")
	}
}
