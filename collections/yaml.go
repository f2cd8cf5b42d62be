package collections

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collection/omap"
)

// ToYAML encodes the collection as a YAML document. Mapping order is kept;
// list-shaped mappings become sequences.
func (c *Collection) ToYAML() ([]byte, error) {
	node, err := yamlNode(c.items)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlNode(v any) (*yaml.Node, error) {
	var m *omap.Map
	switch t := v.(type) {
	case *omap.Map:
		m = t
	case *Collection:
		if t != nil {
			m = t.items
		}
	default:
		if !isOpaque(v) {
			m, _ = mappingOf(v)
		}
	}
	if m == nil {
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}

	if m.IsList() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range m.All() {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, item := range m.All() {
		key := &yaml.Node{}
		if err := key.Encode(k.Value()); err != nil {
			return nil, err
		}
		child, err := yamlNode(item)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", k.String(), err)
		}
		mapping.Content = append(mapping.Content, key, child)
	}
	return mapping, nil
}

// FromYAML decodes a YAML document into a Collection, keeping mapping order.
// An empty document yields an empty collection and a scalar document a
// one-element list.
func FromYAML(data []byte) (*Collection, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Empty(), nil
	}
	v, err := fromYAMLNode(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	return New(v), nil
}

func fromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		m := omap.New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := omap.String(n.Content[i].Value)
			v, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key, v)
		}
		return m, nil
	case yaml.SequenceNode:
		m := omap.New()
		for _, item := range n.Content {
			v, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			m.Append(v)
		}
		return m, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
