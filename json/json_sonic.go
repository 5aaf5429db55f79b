//go:build amd64

package json

import "github.com/bytedance/sonic"

var (
	json = sonic.Config{
		NoValidateJSONMarshaler: true,
		NoValidateJSONSkip:      true,
		NoEncoderNewline:        true,
		EncodeNullForInfOrNan:   true,
	}.Froze()
	// Unmarshal 反序列化
	Unmarshal = json.Unmarshal
	// MarshalIndent 带缩进的序列化
	MarshalIndent = json.MarshalIndent
	// Valid reports whether the provided byte slice is valid JSON.
	Valid = json.Valid
)

// Marshal 序列化
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
