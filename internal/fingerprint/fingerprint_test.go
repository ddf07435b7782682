package fingerprint

import (
	"bytes"
	"strings"
	"testing"
)

func TestSumDeterministic(t *testing.T) {
	a := Sum([]byte("invoice bytes"))
	b := Sum([]byte("invoice bytes"))
	if !bytes.Equal(a, b) {
		t.Fatalf("same bytes produced different digests")
	}
	if len(a) != Size {
		t.Fatalf("digest length = %d, want %d", len(a), Size)
	}
}

func TestSumDistinguishesContent(t *testing.T) {
	a := Sum([]byte("invoice A"))
	b := Sum([]byte("invoice B"))
	if bytes.Equal(a, b) {
		t.Fatalf("different bytes produced equal digests")
	}
}

func TestSumReaderMatchesSum(t *testing.T) {
	data := strings.Repeat("0123456789", 4096)
	want := Sum([]byte(data))

	got, n, err := SumReader(strings.NewReader(data))
	if err != nil {
		t.Fatalf("SumReader: %v", err)
	}
	if n != int64(len(data)) {
		t.Fatalf("byte count = %d, want %d", n, len(data))
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("streaming digest differs from one-shot digest")
	}
}

func TestHexKnownVector(t *testing.T) {
	// sha256("") is a fixed vector
	got := Hex(Sum(nil))
	const want = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Fatalf("Hex(Sum(nil)) = %s, want %s", got, want)
	}
}
