package btyaml

import (
	"gopkg.in/yaml.v3"

	"github.com/joeycumines/content-bt/value"
)

// MarshalPayload renders a value.Payload as YAML.
func MarshalPayload(p value.Payload) ([]byte, error) {
	w, err := encodePayload(p)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(w)
}

// UnmarshalPayload parses YAML into a value.Payload.
func UnmarshalPayload(data []byte) (value.Payload, error) {
	var w wirePayload
	if err := yaml.Unmarshal(data, &w); err != nil {
		return value.Payload{}, err
	}
	return decodePayload(w)
}

// MarshalSelectionTree renders a WireSelectionTree as YAML.
func MarshalSelectionTree(w WireSelectionTree) ([]byte, error) {
	return yaml.Marshal(w)
}

// UnmarshalSelectionTree parses YAML into a WireSelectionTree.
func UnmarshalSelectionTree(data []byte) (WireSelectionTree, error) {
	var w WireSelectionTree
	if err := yaml.Unmarshal(data, &w); err != nil {
		return WireSelectionTree{}, err
	}
	return w, nil
}

// MarshalBehaviorTree renders a WireBehaviorTree as YAML.
func MarshalBehaviorTree(w WireBehaviorTree) ([]byte, error) {
	return yaml.Marshal(w)
}

// UnmarshalBehaviorTree parses YAML into a WireBehaviorTree.
func UnmarshalBehaviorTree(data []byte) (WireBehaviorTree, error) {
	var w WireBehaviorTree
	if err := yaml.Unmarshal(data, &w); err != nil {
		return WireBehaviorTree{}, err
	}
	return w, nil
}
