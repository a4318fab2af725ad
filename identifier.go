package eventmgr

import (
	"strings"

	"github.com/pkg/errors"
)

// TagSeparator splits an identifier into its type and tag parts.
const TagSeparator = "."

// Identifier is the parsed form of an event identifier: `type` or `type.tag`.
type Identifier struct {
	Type   string
	Tag    string
	HasTag bool
}

// ParseIdentifier splits s on the first TagSeparator. Anything after it, further separators
// included, becomes the tag. It never fails: an empty string yields an empty type and no tag.
func ParseIdentifier(s string) Identifier {
	typ, tag, found := strings.Cut(s, TagSeparator)
	return Identifier{Type: typ, Tag: tag, HasTag: found}
}

// ParseIdentifierStrict behaves like ParseIdentifier but rejects identifiers without a type.
func ParseIdentifierStrict(s string) (Identifier, error) {
	if s == "" {
		return Identifier{}, ErrEmptyIdentifier
	}

	id := ParseIdentifier(s)
	if id.Type == "" {
		return id, errors.Wrapf(ErrEmptyType, "identifier '%s'", s)
	}

	return id, nil
}

// Bare returns the identifier with its tag dropped.
func (i Identifier) Bare() Identifier {
	return Identifier{Type: i.Type}
}

func (i Identifier) String() string {
	if !i.HasTag {
		return i.Type
	}
	return i.Type + TagSeparator + i.Tag
}

// bareType is the type portion of a raw identifier.
func bareType(s string) string {
	return ParseIdentifier(s).Type
}
