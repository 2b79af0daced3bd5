package agent

import (
	"fmt"
)

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
type Type string

const (
	EGreedyQLearningTabular Type = "EGreedyQLearning-Tabular"
)

// Registered types with the package, each with its default Config.
// Once a Type has been registered with this map, a TypedConfig with
// that type can be deserialized.
//
// No Type's are registered with this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes map[Type]Config

func init() {
	registeredTypes = make(map[Type]Config)
}

// Register registers an agent's Type with its default Config so that
// upon deserialization of a TypedConfig, Configs of type agentType are
// deserialized into the concrete type of config. Fields missing from
// the serialized Config keep their values in config.
func Register(agentType Type, config Config) {
	if _, ok := registeredTypes[agentType]; ok {
		panic(fmt.Sprintf("register: type %v already registered", agentType))
	}
	registeredTypes[agentType] = config
}

// Registered returns whether agentType has been registered
func Registered(agentType Type) bool {
	_, ok := registeredTypes[agentType]
	return ok
}
