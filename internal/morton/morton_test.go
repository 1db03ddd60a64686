package morton

import "testing"

func TestEncodeKnownValue(t *testing.T) {
	// S5: encode(1,2,3) == 0b110101 == 53
	got, err := Encode(1, 2, 3)
	if err != nil {
		t.Fatalf("Encode(1,2,3) returned error: %v", err)
	}
	if got != 53 {
		t.Errorf("Encode(1,2,3) = %d, want 53", got)
	}
}

func TestDecodeKnownValue(t *testing.T) {
	x, y, z := Decode(53)
	if x != 1 || y != 2 || z != 3 {
		t.Errorf("Decode(53) = (%d,%d,%d), want (1,2,3)", x, y, z)
	}
}

func TestRoundTrip(t *testing.T) {
	coords := [][3]uint32{
		{0, 0, 0},
		{1, 2, 3},
		{7, 0, 7},
		{1<<21 - 1, 1<<21 - 1, 1<<21 - 1},
		{511, 255, 1023},
	}
	for _, c := range coords {
		key, err := Encode(c[0], c[1], c[2])
		if err != nil {
			t.Fatalf("Encode%v returned error: %v", c, err)
		}
		x, y, z := Decode(key)
		if x != c[0] || y != c[1] || z != c[2] {
			t.Errorf("round trip %v -> %d -> (%d,%d,%d), want %v", c, key, x, y, z, c)
		}
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	if _, err := Encode(MaxCoord, 0, 0); err == nil {
		t.Error("Encode with x == MaxCoord should return an error")
	}
	if _, err := Encode(0, MaxCoord, 0); err == nil {
		t.Error("Encode with y == MaxCoord should return an error")
	}
	if _, err := Encode(0, 0, MaxCoord); err == nil {
		t.Error("Encode with z == MaxCoord should return an error")
	}
}

func TestMustDecodePanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustDecode(key with bit 63 set) should panic")
		}
	}()
	MustDecode(1 << 63)
}

func TestChildID(t *testing.T) {
	// spec example: id = (5<<9) | 7 = 2567, for n such that 3n=9 (n=3)
	got := ChildID(5, 3, 7)
	if got != 2567 {
		t.Errorf("ChildID(5, 3, 7) = %d, want 2567", got)
	}
}
