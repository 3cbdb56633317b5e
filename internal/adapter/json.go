package adapter

import (
	"encoding/json"
)

// JSON abstracts envelope and detail serialization so publisher tests can
// force codec failures without crafting unmarshalable values
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	// Marshal encodes v as JSON
	Marshal(v interface{}) ([]byte, error)
	// Unmarshal decodes JSON data into v
	Unmarshal(data []byte, v interface{}) error
}

// RealJSON implements JSON on encoding/json
type RealJSON struct{}

// NewJSON creates the standard-library backed JSON codec
func NewJSON() JSON {
	return &RealJSON{}
}

func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *RealJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
