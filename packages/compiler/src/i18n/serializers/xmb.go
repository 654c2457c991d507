package serializers

import (
	"github.com/ngcompiler/ngc-go/packages/compiler/src/i18n"
)

// Xmb implements the XMB serializer
type Xmb struct{}

// NewXmb creates a new Xmb serializer
func NewXmb() *Xmb {
	return &Xmb{}
}

// Write serializes messages to XMB format
func (x *Xmb) Write(messages []*i18n.Message, locale *string) string {
	// TODO: Implement full XMB serialization
	return ""
}

// Load loads messages from XMB format
func (x *Xmb) Load(content string, url string) (*string, map[string][]i18n.Node) {
	// TODO: Implement full XMB parsing
	return nil, make(map[string][]i18n.Node)
}

// Digest computes the message digest using decimal digest
func (x *Xmb) Digest(message *i18n.Message) string {
	return i18n.DecimalDigest(message)
}

// CreateNameMapper creates a name mapper for XMB (needs to map to valid XMB names)
func (x *Xmb) CreateNameMapper(message *i18n.Message) PlaceholderMapper {
	// XMB placeholders can only contain A-Z, 0-9 and _
	mapName := func(name string) string {
		// Convert to valid XMB name
		result := ""
		for _, r := range name {
			if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
				result += string(r)
			} else if r >= 'a' && r <= 'z' {
				result += string(r - 32) // Convert to uppercase
			} else {
				result += "_"
			}
		}
		return result
	}
	return NewSimplePlaceholderMapper(message, mapName)
}
