//go:build !amd64

package json

import json "github.com/goccy/go-json"

var (
	// Valid 验证
	Valid = json.Valid
	// MarshalIndent 带缩进的序列化
	MarshalIndent = json.MarshalIndent
)

// Marshal 序列化
func Marshal(v any) ([]byte, error) {
	return json.MarshalWithOption(v, json.UnorderedMap(), json.DisableNormalizeUTF8())
}

// Unmarshal 反序列化，字段重复时取第一个
func Unmarshal(data []byte, v any) error {
	return json.UnmarshalWithOption(data, v, json.DecodeFieldPriorityFirstWin())
}
