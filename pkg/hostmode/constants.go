package hostmode

import (
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Constants is a table of host header constants keyed by their POSIX names
// (e.g. "S_IFDIR").
type Constants map[string]uint32

// RequiredConstants are the constants that must be present to build
// definitions.
var RequiredConstants = []string{
	"S_IFMT",
	"S_IFDIR",
	"S_IFCHR",
	"S_IFBLK",
	"S_IFREG",
	"S_IFIFO",
	"S_IFLNK",
	"S_IFSOCK",
	"S_IRUSR",
	"S_IWUSR",
	"S_IXUSR",
	"S_IRGRP",
	"S_IWGRP",
	"S_IXGRP",
	"S_IROTH",
	"S_IWOTH",
	"S_IXOTH",
	"S_ISUID",
	"S_ISGID",
	"S_ISVTX",
}

// ParseConstants parses a YAML mapping of constant names to values. Values may
// be written in any integer notation that YAML supports (e.g. 0o170000 or
// 0xf000).
func ParseConstants(data []byte) (Constants, error) {
	var result Constants
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrap(err, "unable to parse constants")
	} else if result == nil {
		return nil, errors.New("empty constants specification")
	}
	return result, nil
}

// LoadConstants reads a YAML constants file from disk.
func LoadConstants(path string) (Constants, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read constants file")
	}
	constants, err := ParseConstants(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid constants file (%s)", path)
	}
	return constants, nil
}

// names returns the constant names in a stable order: required constants first
// (in their canonical order) and then any others sorted lexically.
func (c Constants) names() []string {
	required := make(map[string]bool, len(RequiredConstants))
	var result []string
	for _, name := range RequiredConstants {
		required[name] = true
		if _, ok := c[name]; ok {
			result = append(result, name)
		}
	}
	var extra []string
	for name := range c {
		if !required[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(result, extra...)
}

// Marshal encodes the constants as a YAML mapping with octal values.
func (c Constants) Marshal() ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range c.names() {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: "0o" + strconv.FormatUint(uint64(c[name]), 8)},
		)
	}
	data, err := yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}})
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode constants")
	}
	return data, nil
}
