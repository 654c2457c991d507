package serializers

import (
	"github.com/ngcompiler/ngc-go/packages/compiler/src/i18n"
)

// Xtb implements the XTB serializer
type Xtb struct{}

// NewXtb creates a new Xtb serializer
func NewXtb() *Xtb {
	return &Xtb{}
}

// Write serializes messages to XTB format
func (x *Xtb) Write(messages []*i18n.Message, locale *string) string {
	// TODO: Implement full XTB serialization
	return ""
}

// Load loads messages from XTB format
func (x *Xtb) Load(content string, url string) (*string, map[string][]i18n.Node) {
	// TODO: Implement full XTB parsing
	return nil, make(map[string][]i18n.Node)
}

// Digest computes the message digest using XLIFF1 digest
func (x *Xtb) Digest(message *i18n.Message) string {
	return i18n.Digest(message)
}

// CreateNameMapper creates a name mapper (XTB uses same mapping as XMB)
func (x *Xtb) CreateNameMapper(message *i18n.Message) PlaceholderMapper {
	// XTB uses the same placeholder name mapping as XMB
	mapName := func(name string) string {
		result := ""
		for _, r := range name {
			if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
				result += string(r)
			} else if r >= 'a' && r <= 'z' {
				result += string(r - 32)
			} else {
				result += "_"
			}
		}
		return result
	}
	return NewSimplePlaceholderMapper(message, mapName)
}
