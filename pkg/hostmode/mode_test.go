package hostmode

import (
	"errors"
	"testing"
)

// TestModeRoundTrip verifies that every mode survives encoding and decoding
// on every test layout.
func TestModeRoundTrip(t *testing.T) {
	for name, codec := range testCodecs(t) {
		for _, kind := range FileKinds {
			for p := FilePermission(0); p <= PermissionMask; p++ {
				mode := Mode{Kind: kind, Permissions: p}
				if decoded, err := codec.Decode(codec.Encode(mode)); err != nil {
					t.Fatalf("%s: unable to decode %v: %v", name, mode, err)
				} else if decoded != mode {
					t.Fatalf("%s: decoded mode does not match original: %v != %v", name, decoded, mode)
				}
			}
		}
	}
}

// TestModeMasksDisjoint verifies that the kind and permission masks share no
// bits on every valid layout.
func TestModeMasksDisjoint(t *testing.T) {
	for name, codec := range testCodecs(t) {
		if overlap := codec.FileKind().Mask() & codec.FilePermission().Mask(); overlap != 0 {
			t.Errorf("%s: masks overlap: %#o", name, overlap)
		}
	}
}

// TestModeEncodeStandard verifies encoding against well-known values.
func TestModeEncodeStandard(t *testing.T) {
	codec := loadTestCodec(t, "standard.yaml")
	testCases := []struct {
		mode     Mode
		expected uint32
	}{
		{Mode{FileKindDirectory, 0700}, 0o40700},
		{Mode{FileKindRegular, 0644}, 0o100644},
		{Mode{FileKindSymbolicLink, 0777}, 0o120777},
		{Mode{FileKindCharacterDevice, 0666}, 0o20666},
		{Mode{FileKindDirectory, 01777}, 0o41777},
	}
	for _, testCase := range testCases {
		if raw := codec.Encode(testCase.mode); raw != testCase.expected {
			t.Errorf("encoding of %v does not match expected: %#o != %#o", testCase.mode, raw, testCase.expected)
		}
	}
}

// TestModeDecodeUnknownKind verifies that mode decoding surfaces unknown kinds.
func TestModeDecodeUnknownKind(t *testing.T) {
	codec := loadTestCodec(t, "standard.yaml")
	if _, err := codec.Decode(0o644); !errors.Is(err, ErrUnknownFileKind) {
		t.Error("decoding mode without type bits did not fail with ErrUnknownFileKind:", err)
	}
}

// TestModeTranslate verifies translation between layouts.
func TestModeTranslate(t *testing.T) {
	standard := loadTestCodec(t, "standard.yaml")
	permuted := loadTestCodec(t, "permuted.yaml")

	// Translate a regular file with rw-r--r-- permissions.
	translated, err := standard.Translate(0o100644, permuted)
	if err != nil {
		t.Fatal("unable to translate mode:", err)
	} else if translated != 0x40000|0x001|0x002|0x008|0x040 {
		t.Errorf("translated mode does not match expected: %#x", translated)
	}

	// Translate back.
	if back, err := permuted.Translate(translated, standard); err != nil {
		t.Fatal("unable to translate mode back:", err)
	} else if back != 0o100644 {
		t.Errorf("round-trip translation does not match original: %#o", back)
	}

	// Ensure that unknown kinds fail translation.
	if _, err := standard.Translate(0o070644, permuted); !errors.Is(err, ErrUnknownFileKind) {
		t.Error("translation of unknown kind did not fail with ErrUnknownFileKind:", err)
	}
}

// TestModeString tests ls-style rendering of modes.
func TestModeString(t *testing.T) {
	testCases := map[Mode]string{
		{FileKindDirectory, 0700}:    "drwx------",
		{FileKindRegular, 0644}:      "-rw-r--r--",
		{FileKindSymbolicLink, 0777}: "lrwxrwxrwx",
		{FileKindFIFO, 0600}:         "prw-------",
		{FileKindDirectory, 01777}:   "drwxrwxrwt",
	}
	for mode, expected := range testCases {
		if result := mode.String(); result != expected {
			t.Errorf("rendering does not match expected: %s != %s", result, expected)
		}
	}
}

// TestNewModeCodecNilDefinitions verifies that nil definitions are rejected.
func TestNewModeCodecNilDefinitions(t *testing.T) {
	if _, err := NewModeCodec(nil); err == nil {
		t.Error("codec creation succeeded with nil definitions")
	}
}
