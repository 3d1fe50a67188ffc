package hostmode

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestConstantsMarshalRoundTrip verifies that marshalled constants parse back
// to the same table and are written in octal with required names first.
func TestConstantsMarshalRoundTrip(t *testing.T) {
	constants := standardConstants(t)
	constants["S_IFWHT"] = 0o160000

	data, err := constants.Marshal()
	if err != nil {
		t.Fatal("unable to marshal constants:", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "S_IFMT: 0o170000\n") {
		t.Error("marshalled constants do not begin with the type mask:", text)
	}
	if strings.Index(text, "S_IFWHT") < strings.Index(text, "S_ISVTX") {
		t.Error("extra constant not ordered after required constants")
	}

	parsed, err := ParseConstants(data)
	if err != nil {
		t.Fatal("unable to parse marshalled constants:", err)
	}
	if len(parsed) != len(constants) {
		t.Fatal("parsed constant count does not match original:", len(parsed), "!=", len(constants))
	}
	for name, value := range constants {
		if parsed[name] != value {
			t.Errorf("parsed value for %s does not match original: %#o != %#o", name, parsed[name], value)
		}
	}
}

// TestParseConstantsInvalid verifies that malformed constant files are
// rejected.
func TestParseConstantsInvalid(t *testing.T) {
	for _, data := range []string{"", "S_IFMT: [1, 2]", "S_IFMT: -1", "- S_IFMT"} {
		if _, err := ParseConstants([]byte(data)); err == nil {
			t.Errorf("parsing succeeded unexpectedly for %q", data)
		}
	}
}

// TestLoadConstantsNotExist verifies that loading a missing file fails.
func TestLoadConstantsNotExist(t *testing.T) {
	if _, err := LoadConstants(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Error("loading non-existent constants file succeeded")
	}
}
