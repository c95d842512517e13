package squads

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// orderedMap is an object whose keys encode in slice order. Go maps would
// sort them.
type orderedMap []mapEntry

type mapEntry struct {
	Key   string
	Value any
}

func pairsMap(kvs []KeyValue) orderedMap {
	m := make(orderedMap, len(kvs))
	for i, kv := range kvs {
		m[i] = mapEntry{Key: kv.Key, Value: kv.Value}
	}
	return m
}

func (m orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m orderedMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		val := &yaml.Node{}
		if err := val.Encode(e.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
