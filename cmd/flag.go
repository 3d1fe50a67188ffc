package cmd

import (
	"github.com/spf13/pflag"

	"github.com/modestat/modestat/pkg/hostmode"
)

// PermissionValue is a pflag.Value that parses octal file permissions.
type PermissionValue struct {
	// Permissions are the parsed permissions.
	Permissions hostmode.FilePermission
	// set indicates whether or not a value has been parsed.
	set bool
}

// String implements pflag.Value.String.
func (v *PermissionValue) String() string {
	if !v.set {
		return ""
	}
	return v.Permissions.Octal()
}

// Set implements pflag.Value.Set.
func (v *PermissionValue) Set(value string) error {
	permissions, err := hostmode.ParsePermission(value, hostmode.PermissionMask)
	if err != nil {
		return err
	}
	v.Permissions = permissions
	v.set = true
	return nil
}

// Type implements pflag.Value.Type.
func (v *PermissionValue) Type() string {
	return "permissions"
}

// IsSet indicates whether or not a value has been parsed.
func (v *PermissionValue) IsSet() bool {
	return v.set
}

// KindValue is a pflag.Value that parses file kinds.
type KindValue struct {
	// Kind is the parsed kind.
	Kind hostmode.FileKind
}

// String implements pflag.Value.String.
func (v *KindValue) String() string {
	if !v.Kind.Valid() {
		return ""
	}
	text, _ := v.Kind.MarshalText()
	return string(text)
}

// Set implements pflag.Value.Set.
func (v *KindValue) Set(value string) error {
	return v.Kind.UnmarshalText([]byte(value))
}

// Type implements pflag.Value.Type.
func (v *KindValue) Type() string {
	return "kind"
}

// Ensure that the values implement pflag.Value.
var (
	_ pflag.Value = &PermissionValue{}
	_ pflag.Value = &KindValue{}
)
