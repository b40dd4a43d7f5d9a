package mediaio

import "testing"

func TestBitReaderSplitEquivalence(t *testing.T) {
	data := []byte{0b10110110, 0b01011010, 0b11110000}

	for n := uint(0); n <= 16; n++ {
		for m := uint(0); m+n <= 32 && m+n <= 24; m++ {
			whole := NewBitReader(data)
			combined, ok := whole.ReadBits(n + m)
			if !ok {
				continue
			}

			split := NewBitReader(data)
			first, ok1 := split.ReadBits(n)
			second, ok2 := split.ReadBits(m)
			if !ok1 || !ok2 {
				t.Fatalf("split read failed for n=%d m=%d", n, m)
			}

			want := (first << m) | second
			if want != combined {
				t.Errorf("n=%d m=%d: split=%#x combined=%#x", n, m, want, combined)
			}
		}
	}
}

func TestBitReaderReadBitsSigned(t *testing.T) {
	r := NewBitReader([]byte{0b11111000})
	v, ok := r.ReadBitsSigned(5)
	if !ok {
		t.Fatal("expected ok")
	}
	if v != -1 {
		t.Errorf("got %d, want -1", v)
	}
}

func TestBitReaderInsufficientBits(t *testing.T) {
	r := NewBitReader([]byte{0xFF})
	if _, ok := r.ReadBits(9); ok {
		t.Error("expected failure reading past end of data")
	}
	if _, ok := r.ReadBits(33); ok {
		t.Error("expected failure for n > 32")
	}
}

func TestBitReaderAlignAndSkip(t *testing.T) {
	r := NewBitReader([]byte{0xAB, 0xCD})
	r.SkipBits(3)
	if r.PositionBits() != 3 {
		t.Fatalf("position = %d, want 3", r.PositionBits())
	}
	r.AlignToByte()
	if r.PositionBits() != 8 {
		t.Fatalf("position after align = %d, want 8", r.PositionBits())
	}
	r.SetPositionBits(4)
	v, ok := r.ReadBits(4)
	if !ok || v != 0xB {
		t.Fatalf("got %#x,%v want 0xB,true", v, ok)
	}
}

func TestBitReaderRemainingBits(t *testing.T) {
	r := NewBitReader([]byte{0x00, 0x00})
	if r.RemainingBits() != 16 {
		t.Fatalf("remaining = %d, want 16", r.RemainingBits())
	}
	r.SkipBits(16)
	if r.RemainingBits() != 0 {
		t.Fatalf("remaining = %d, want 0", r.RemainingBits())
	}
}
