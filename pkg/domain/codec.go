package domain

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// jsonNull is the literal the encoding/json decoder hands an Unmarshaler for
// a null value.
var jsonNull = []byte("null")

func isJSONNull(b []byte) bool { return bytes.Equal(b, jsonNull) }

func isYAMLNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
