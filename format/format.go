// Package format provides the wire codecs a Processor marshals sealed
// structs with.
package format

import (
	"encoding/json"
	"encoding/xml"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/cipherkey"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

// Content types served by this package.
const (
	ContentTypeJSON    = "application/json"
	ContentTypeXML     = "application/xml"
	ContentTypeYAML    = "application/yaml"
	ContentTypeMsgPack = "application/msgpack"
	ContentTypeBSON    = "application/bson"
	ContentTypeTOML    = "application/toml"
)

// codec adapts a marshal/unmarshal pair to cipherkey.Codec.
type codec struct {
	contentType string
	marshal     func(v any) ([]byte, error)
	unmarshal   func(data []byte, v any) error
}

func (c *codec) ContentType() string { return c.contentType }

func (c *codec) Marshal(v any) ([]byte, error) { return c.marshal(v) }

func (c *codec) Unmarshal(data []byte, v any) error { return c.unmarshal(data, v) }

// JSON returns a JSON codec.
// Sealed tokens are written without HTML escaping, so '+' and '<' survive
// byte for byte.
func JSON() cipherkey.Codec {
	return &codec{
		contentType: ContentTypeJSON,
		marshal:     marshalJSON,
		unmarshal:   json.Unmarshal,
	}
}

func marshalJSON(v any) ([]byte, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(b.String(), "\n")), nil
}

// XML returns an XML codec. Types need xml struct tags.
func XML() cipherkey.Codec {
	return &codec{
		contentType: ContentTypeXML,
		marshal:     xml.Marshal,
		unmarshal:   xml.Unmarshal,
	}
}

// YAML returns a YAML codec.
func YAML() cipherkey.Codec {
	return &codec{
		contentType: ContentTypeYAML,
		marshal:     yaml.Marshal,
		unmarshal:   yaml.Unmarshal,
	}
}

// MsgPack returns a MessagePack codec.
func MsgPack() cipherkey.Codec {
	return &codec{
		contentType: ContentTypeMsgPack,
		marshal:     msgpack.Marshal,
		unmarshal:   msgpack.Unmarshal,
	}
}

// BSON returns a BSON codec. Only documents (structs and maps) marshal.
func BSON() cipherkey.Codec {
	return &codec{
		contentType: ContentTypeBSON,
		marshal:     bson.Marshal,
		unmarshal:   bson.Unmarshal,
	}
}

// TOML returns a TOML codec. Only tables (structs and maps) marshal.
func TOML() cipherkey.Codec {
	return &codec{
		contentType: ContentTypeTOML,
		marshal:     toml.Marshal,
		unmarshal:   toml.Unmarshal,
	}
}

// ForContentType returns the codec serving contentType.
// Parameters such as "; charset=utf-8" are ignored.
func ForContentType(contentType string) (cipherkey.Codec, bool) {
	mediaType, _, _ := strings.Cut(contentType, ";")
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case ContentTypeJSON:
		return JSON(), true
	case ContentTypeXML, "text/xml":
		return XML(), true
	case ContentTypeYAML, "application/x-yaml", "text/yaml":
		return YAML(), true
	case ContentTypeMsgPack, "application/x-msgpack":
		return MsgPack(), true
	case ContentTypeBSON:
		return BSON(), true
	case ContentTypeTOML:
		return TOML(), true
	default:
		return nil, false
	}
}

// All returns every codec in this package.
func All() []cipherkey.Codec {
	return []cipherkey.Codec{JSON(), XML(), YAML(), MsgPack(), BSON(), TOML()}
}
