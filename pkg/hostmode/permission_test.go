package hostmode

import (
	"testing"
)

// TestFilePermissionRoundTrip verifies that every portable permission value
// survives encoding and decoding on every test layout.
func TestFilePermissionRoundTrip(t *testing.T) {
	for name, codec := range testCodecs(t) {
		for p := FilePermission(0); p <= PermissionMask; p++ {
			if decoded := codec.FilePermission().Decode(codec.FilePermission().Encode(p)); decoded != p {
				t.Fatalf("%s: decoded permissions do not match original: %#o != %#o", name, decoded, p)
			}
		}
	}
}

// TestFilePermissionDecodeDropsUnknownBits verifies that host bits outside
// the full permission mask have no effect on decoding.
func TestFilePermissionDecodeDropsUnknownBits(t *testing.T) {
	for name, codec := range testCodecs(t) {
		permissionCodec := codec.FilePermission()
		unknown := ^permissionCodec.Mask()
		for p := FilePermission(0); p <= PermissionMask; p++ {
			raw := permissionCodec.Encode(p)
			if permissionCodec.Decode(raw|unknown) != permissionCodec.Decode(raw) {
				t.Fatalf("%s: unknown bits altered decoding of %#o", name, p)
			}
		}
	}
}

// TestFilePermissionPermutedLayout verifies that the permuted layout places
// bits where its definitions say, rather than at the portable positions.
func TestFilePermissionPermutedLayout(t *testing.T) {
	codec := loadTestCodec(t, "permuted.yaml").FilePermission()
	testCases := []struct {
		permission FilePermission
		expected   uint32
	}{
		{PermissionUserRead, 0x001},
		{PermissionOthersExecute, 0x100},
		{PermissionUserRead | PermissionUserWrite | PermissionUserExecute, 0x007},
		{PermissionSetUserID | PermissionSticky, 0x5000},
		{0, 0},
	}
	for _, testCase := range testCases {
		if raw := codec.Encode(testCase.permission); raw != testCase.expected {
			t.Errorf("encoding of %#o does not match expected: %#x != %#x", testCase.permission, raw, testCase.expected)
		}
	}
}

// TestFilePermissionEncodeIgnoresHighBits verifies that portable bits above
// PermissionMask contribute nothing to the encoded value.
func TestFilePermissionEncodeIgnoresHighBits(t *testing.T) {
	codec := loadTestCodec(t, "standard.yaml").FilePermission()
	if raw := codec.Encode(0o170644); raw != 0o644 {
		t.Error("high portable bits were encoded:", raw)
	}
}

// parsePermissionTestCase represents a test case for ParsePermission.
type parsePermissionTestCase struct {
	// value is the value to parse.
	value string
	// mask is the mask to use in parsing.
	mask FilePermission
	// expectFailure indicates whether or not parsing failure is expected.
	expectFailure bool
	// expected indicates the expected result in the absence of failure.
	expected FilePermission
}

// run executes the test in the provided test context.
func (c *parsePermissionTestCase) run(t *testing.T) {
	// Mark ourselves as a helper function.
	t.Helper()

	// Perform parsing and verify that the expected behavior is observed.
	if result, err := ParsePermission(c.value, c.mask); err == nil && c.expectFailure {
		t.Fatal("parsing succeeded when failure was expected")
	} else if err != nil && !c.expectFailure {
		t.Fatal("parsing failed unexpectedly:", err)
	} else if result != c.expected {
		t.Error("parsing result does not match expected:", result, "!=", c.expected)
	}
}

// TestParsePermission tests ParsePermission.
func TestParsePermission(t *testing.T) {
	testCases := map[string]*parsePermissionTestCase{
		"empty":            {mask: PermissionMask, expectFailure: true},
		"invalid":          {value: "laksjfd", mask: PermissionMask, expectFailure: true},
		"non-octal":        {value: "0888", mask: PermissionMask, expectFailure: true},
		"overflow":         {value: "45201371000", mask: PermissionMask, expectFailure: true},
		"disallowed bits":  {value: "1000", mask: PermissionAccessMask, expectFailure: true},
		"valid":            {value: "777", mask: PermissionAccessMask, expected: 0777},
		"zero prefix":      {value: "0755", mask: PermissionAccessMask, expected: 0755},
		"multi-zero":       {value: "00644", mask: PermissionAccessMask, expected: 0644},
		"special bits":     {value: "4755", mask: PermissionMask, expected: 04755},
		"all special bits": {value: "7777", mask: PermissionMask, expected: 07777},
	}
	for name, testCase := range testCases {
		t.Run(name, testCase.run)
	}
}

// TestFilePermissionUnmarshalTextUnmodifiedOnFailure verifies that
// FilePermission.UnmarshalText leaves the underlying value unmodified in the
// case of failure.
func TestFilePermissionUnmarshalTextUnmodifiedOnFailure(t *testing.T) {
	permission := FilePermission(0640)
	if permission.UnmarshalText([]byte("17777")) == nil {
		t.Fatal("permission unmarshalling succeeded unexpectedly")
	} else if permission != 0640 {
		t.Error("permission modified during unsuccessful unmarshalling operation")
	}
}

// TestFilePermissionString tests ls-style rendering.
func TestFilePermissionString(t *testing.T) {
	testCases := map[FilePermission]string{
		0:     "---------",
		0700:  "rwx------",
		0644:  "rw-r--r--",
		04755: "rwsr-xr-x",
		04644: "rwSr--r--",
		02750: "rwxr-s---",
		02640: "rw-r-S---",
		01777: "rwxrwxrwt",
		01776: "rwxrwxrwT",
	}
	for permission, expected := range testCases {
		if result := permission.String(); result != expected {
			t.Errorf("rendering of %#o does not match expected: %s != %s", permission, result, expected)
		}
	}
}

// TestFilePermissionOctal tests octal rendering.
func TestFilePermissionOctal(t *testing.T) {
	if result := FilePermission(0644).Octal(); result != "0644" {
		t.Error("octal rendering does not match expected:", result)
	} else if result = FilePermission(04755).Octal(); result != "4755" {
		t.Error("octal rendering does not match expected:", result)
	}
}
