package hostmode

import (
	"path/filepath"
	"testing"
)

// loadTestCodec loads a constants file from the testdata directory and builds
// a codec from it.
func loadTestCodec(t *testing.T, name string) *ModeCodec {
	// Mark ourselves as a helper function.
	t.Helper()

	// Load the constants.
	constants, err := LoadConstants(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal("unable to load test constants:", err)
	}

	// Create the codec.
	codec, err := NewModeCodecFromConstants(constants)
	if err != nil {
		t.Fatal("unable to create codec from test constants:", err)
	}
	return codec
}

// testCodecs returns codecs for each of the valid test layouts, keyed by name.
func testCodecs(t *testing.T) map[string]*ModeCodec {
	// Mark ourselves as a helper function.
	t.Helper()

	return map[string]*ModeCodec{
		"standard": loadTestCodec(t, "standard.yaml"),
		"permuted": loadTestCodec(t, "permuted.yaml"),
	}
}
