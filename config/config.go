// Package config 键值对配置文件，以yaml格式保存，每项可带注释
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping 配置文件顶层不是键值对
var ErrNotMapping = errors.New("config file is not a yaml mapping")

// Value 配置值
type Value string

// NewValue make a value
func NewValue(s string) *Value {
	v := Value(s)
	return &v
}

// String 字符串值，nil返回空字符串
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(string(*v))
}

// TryInt 转换为int，失败返回0
func (v *Value) TryInt() int {
	x, err := strconv.Atoi(v.String())
	if err != nil {
		return 0
	}
	return x
}

// TryFloat64 转换为float64，失败返回0
func (v *Value) TryFloat64() float64 {
	x, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return 0
	}
	return x
}

// TryBool 转换为bool，失败返回false
func (v *Value) TryBool() bool {
	x, err := strconv.ParseBool(v.String())
	if err != nil {
		return false
	}
	return x
}

// Item 配置项
type Item struct {
	Key     string
	Value   *Value
	Comment string
}

// File 配置文件
type File struct {
	fileName string
	items    map[string]*Item
	locker   sync.RWMutex
	// dirty 有未保存的修改，或文件尚不存在
	dirty bool
}

// NewConfig 创建配置，文件存在时读取内容
//
// 文件不存在不算错误，读取或解析失败时返回err
func NewConfig(filename string) (*File, error) {
	f := &File{
		fileName: filename,
		items:    make(map[string]*Item),
	}
	if filename == "" {
		return f, nil
	}
	if err := f.FromFile(filename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.dirty = true
			return f, nil
		}
		return nil, err
	}
	return f, nil
}

// FromFile 读取配置文件，覆盖同名配置项
func (f *File) FromFile(filename string) error {
	if filename == "" {
		filename = f.fileName
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return ErrNotMapping
	}
	f.locker.Lock()
	defer f.locker.Unlock()
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		f.items[k.Value] = &Item{
			Key:     k.Value,
			Value:   NewValue(v.Value),
			Comment: strings.TrimSpace(strings.TrimPrefix(k.HeadComment, "#")),
		}
	}
	return nil
}

// PutItem 添加或替换配置项
func (f *File) PutItem(item *Item) {
	if item == nil || item.Key == "" {
		return
	}
	f.locker.Lock()
	defer f.locker.Unlock()
	f.items[item.Key] = item
	f.dirty = true
}

// GetItem 获取配置值，不存在时返回nil
func (f *File) GetItem(key string) *Value {
	f.locker.RLock()
	defer f.locker.RUnlock()
	if it, ok := f.items[key]; ok {
		return it.Value
	}
	return nil
}

// GetDefault 获取配置值，不存在时写入item并返回其默认值
func (f *File) GetDefault(item *Item) *Value {
	if v := f.GetItem(item.Key); v != nil {
		return v
	}
	f.PutItem(item)
	return item.Value
}

// DelItem 删除配置项
func (f *File) DelItem(key string) {
	f.locker.Lock()
	defer f.locker.Unlock()
	if _, ok := f.items[key]; ok {
		delete(f.items, key)
		f.dirty = true
	}
}

// Dirty 是否需要Save
func (f *File) Dirty() bool {
	f.locker.RLock()
	defer f.locker.RUnlock()
	return f.dirty
}

// Keys 按字母排序的所有键
func (f *File) Keys() []string {
	f.locker.RLock()
	defer f.locker.RUnlock()
	keys := make([]string, 0, len(f.items))
	for k := range f.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save 保存到创建时指定的文件
func (f *File) Save() error {
	if err := f.ToFile(f.fileName); err != nil {
		return err
	}
	f.locker.Lock()
	f.dirty = false
	f.locker.Unlock()
	return nil
}

// ToFile 保存为yaml，注释写在键的上方
func (f *File) ToFile(filename string) error {
	if filename == "" {
		return errors.New("no config file name")
	}
	keys := f.Keys()
	m := &yaml.Node{Kind: yaml.MappingNode}
	f.locker.RLock()
	for _, k := range keys {
		it, ok := f.items[k]
		if !ok {
			continue
		}
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: it.Key}
		if it.Comment != "" {
			kn.HeadComment = "# " + it.Comment
		}
		m.Content = append(m.Content, kn, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: it.Value.String()})
	}
	f.locker.RUnlock()
	b, err := yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{m}})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filename); dir != "" {
		os.MkdirAll(dir, 0o775)
	}
	return os.WriteFile(filename, b, 0o664)
}
