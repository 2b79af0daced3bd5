package agent

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypedConfig implements functionality for typing a Config. In this
// way, a Config can explicitly have its type stored so that when
// deserializing the Config, we can deserialize it into its concrete
// type without knowing beforehand or declaring beforehand a variable
// of its concrete type.
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// UnmarshalJSON implements the json.Unmarshaller interface. Fields
// missing from the JSON Config keep their values in the current Config
// if it has the same Type, or otherwise in the Type's registered
// default Config.
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	config, typeName, err := unmarshalConfig(data, "Type", "Config",
		t.Config)
	if err != nil {
		return err
	}

	t.Type = typeName
	t.Config = config

	return nil
}

// unmarshalConfig uses reflection to unmarshall a Config into its
// concrete type, starting from current if it has the decoded Type.
// Both the Config and its Type are returned.
func unmarshalConfig(data []byte, typeJsonField, valueJsonField string,
	current Config) (Config, Type, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, "", fmt.Errorf("unmarshalConfig: %w", err)
	}

	var typeName Type
	if err := json.Unmarshal(m[typeJsonField], &typeName); err != nil {
		return nil, "", fmt.Errorf("unmarshalConfig: could not decode "+
			"type: %w", err)
	}

	base, found := registeredTypes[typeName]
	if !found {
		return nil, "", fmt.Errorf("unmarshalConfig: %w: no such agent "+
			"type %q", ErrInvalidConfig, typeName)
	}
	if current != nil && current.Type() == typeName &&
		reflect.TypeOf(current) == reflect.TypeOf(base) {
		base = current
	}

	value := reflect.New(reflect.TypeOf(base))
	value.Elem().Set(reflect.ValueOf(base))
	if raw, ok := m[valueJsonField]; ok {
		if err := json.Unmarshal(raw, value.Interface()); err != nil {
			return nil, "", fmt.Errorf("unmarshalConfig: could not decode "+
				"%v config: %w", typeName, err)
		}
	}
	concreteValue := value.Elem().Interface().(Config)

	return concreteValue, typeName, nil
}
