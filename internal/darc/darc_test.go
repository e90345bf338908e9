package darc

import (
	"bytes"
	"testing"
)

func TestScenarioS3Layout(t *testing.T) {
	tree := &Tree{}
	tree.Add("blyt/A.bclyt", []byte{0x01, 0x02, 0x03, 0x04})

	out, err := Encode(tree, NewOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(out[0:4]) != headerMagic {
		t.Fatalf("bad magic: %q", out[0:4])
	}
	wantTail := []byte{0x01, 0x02, 0x03, 0x04}
	if !bytes.HasSuffix(out, wantTail) {
		t.Fatalf("payload not found at end of buffer")
	}

	namePoolStart := headerSize + 4*12
	if !bytes.HasPrefix(out[namePoolStart:], []byte(rootNamePoolPrefix)) {
		t.Fatalf("name pool does not start with the fixed prefix")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tree := &Tree{}
	tree.Add("blyt/A.bclyt", []byte{0x01, 0x02, 0x03, 0x04})
	tree.Add("blyt/B.bclyt", []byte{0xAA, 0xBB, 0xCC})
	tree.Add("blyt/tex.bclim", bytes.Repeat([]byte{0x7f}, 37))

	out, err := Encode(tree, NewOptions())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Files) != len(tree.Files) {
		t.Fatalf("got %d files, want %d", len(got.Files), len(tree.Files))
	}
	for _, want := range tree.Files {
		data, ok := got.Get(want.Path)
		if !ok {
			t.Fatalf("missing file %q after round-trip", want.Path)
		}
		if !bytes.Equal(data, want.Data) {
			t.Fatalf("file %q data mismatch after round-trip", want.Path)
		}
	}
}

func TestEncodeDecodeRoundTripFlatNoFolder(t *testing.T) {
	tree := &Tree{}
	tree.Add("only.bin", []byte{0x01})

	out, err := Encode(tree, NewOptions())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, ok := got.Get("only.bin")
	if !ok || !bytes.Equal(data, []byte{0x01}) {
		t.Fatalf("round-trip mismatch: %v %v", data, ok)
	}
}

func TestEncodeRejectsNestedFolders(t *testing.T) {
	tree := &Tree{}
	tree.Add("a/b/c.bin", []byte{0x01})
	if _, err := Encode(tree, NewOptions()); err == nil {
		t.Fatal("expected ErrTreeShape for a nested directory")
	}
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	if _, err := Decode([]byte("short")); err == nil {
		t.Fatal("expected an error decoding a truncated buffer")
	}
}
