package btyaml

import (
	"fmt"

	"github.com/joeycumines/content-bt/address"
	"github.com/joeycumines/content-bt/selection"
)

// wireEdge is the discriminated wire form of a selection.Edge.
type wireEdge struct {
	ID    int32           `yaml:"id"`
	Kind  string          `yaml:"kind"`
	To    wireAddress     `yaml:"to"`
	Entry *wireExpression `yaml:"entry,omitempty"`
	Sub   []wireExpression `yaml:"sub,omitempty"`
}

func encodeEdge(e selection.Edge) (wireEdge, error) {
	switch edge := e.(type) {
	case selection.AlwaysTrue:
		return wireEdge{ID: edge.ID, Kind: "always_true", To: encodeAddress(edge.To)}, nil
	case selection.LogicalExpression:
		entry, err := encodeExpression(edge.Entry)
		if err != nil {
			return wireEdge{}, err
		}
		sub, err := encodeExpressionTable(edge.Sub)
		if err != nil {
			return wireEdge{}, err
		}
		return wireEdge{ID: edge.ID, Kind: "logical_expression", To: encodeAddress(edge.To), Entry: &entry, Sub: sub}, nil
	default:
		return wireEdge{}, fmt.Errorf(`btyaml: unsupported Edge type %T`, e)
	}
}

func decodeEdge(w wireEdge) (selection.Edge, error) {
	switch w.Kind {
	case "always_true":
		return selection.AlwaysTrue{ID: w.ID, To: decodeAddress(w.To)}, nil
	case "logical_expression":
		if w.Entry == nil {
			return nil, fmt.Errorf(`btyaml: logical_expression edge missing "entry" field`)
		}
		entry, err := decodeExpression(*w.Entry)
		if err != nil {
			return nil, err
		}
		sub, err := decodeExpressionTable(w.Sub)
		if err != nil {
			return nil, err
		}
		return selection.LogicalExpression{ID: w.ID, To: decodeAddress(w.To), Entry: entry, Sub: sub}, nil
	default:
		return nil, UnsupportedKindError{Kind: w.Kind}
	}
}

type wireDictionaryEntry struct {
	Key     wireHolder  `yaml:"key"`
	Command wireAddress `yaml:"command"`
}

// wireNode is the discriminated wire form of a selection.Node.
type wireNode struct {
	ID      int32                 `yaml:"id"`
	Kind    string                `yaml:"kind"`
	Edges   []wireAddress         `yaml:"edges,omitempty"`
	Command *wireAddress          `yaml:"command,omitempty"`
	KeyName string                `yaml:"key_name,omitempty"`
	Default *wireAddress          `yaml:"default,omitempty"`
	Entries []wireDictionaryEntry `yaml:"entries,omitempty"`
}

func encodeEdgeAddresses(addrs []address.Address) []wireAddress {
	out := make([]wireAddress, len(addrs))
	for i, a := range addrs {
		out[i] = encodeAddress(a)
	}
	return out
}

func decodeEdgeAddresses(addrs []wireAddress) []address.Address {
	out := make([]address.Address, len(addrs))
	for i, a := range addrs {
		out[i] = decodeAddress(a)
	}
	return out
}

func encodeNode(n selection.Node) (wireNode, error) {
	switch node := n.(type) {
	case selection.Simple:
		cmd := encodeAddress(node.Command)
		return wireNode{ID: node.ID, Kind: "simple", Edges: encodeEdgeAddresses(node.Edges), Command: &cmd}, nil
	case selection.Dictionary:
		def := encodeAddress(node.Default)
		entries := make([]wireDictionaryEntry, len(node.Entries))
		for i, e := range node.Entries {
			key, err := encodeHolder(e.Key)
			if err != nil {
				return wireNode{}, err
			}
			entries[i] = wireDictionaryEntry{Key: key, Command: encodeAddress(e.Command)}
		}
		return wireNode{
			ID: node.ID, Kind: "dictionary", Edges: encodeEdgeAddresses(node.Edges),
			KeyName: node.KeyName, Default: &def, Entries: entries,
		}, nil
	default:
		return wireNode{}, fmt.Errorf(`btyaml: unsupported Node type %T`, n)
	}
}

func decodeNode(w wireNode) (selection.Node, error) {
	switch w.Kind {
	case "simple":
		if w.Command == nil {
			return nil, fmt.Errorf(`btyaml: simple node missing "command" field`)
		}
		return selection.Simple{ID: w.ID, Edges: decodeEdgeAddresses(w.Edges), Command: decodeAddress(*w.Command)}, nil
	case "dictionary":
		if w.Default == nil {
			return nil, fmt.Errorf(`btyaml: dictionary node missing "default" field`)
		}
		entries := make([]selection.DictionaryEntry, len(w.Entries))
		for i, e := range w.Entries {
			key, err := decodeHolder(e.Key)
			if err != nil {
				return nil, err
			}
			entries[i] = selection.DictionaryEntry{Key: key, Command: decodeAddress(e.Command)}
		}
		return selection.Dictionary{
			ID: w.ID, Edges: decodeEdgeAddresses(w.Edges),
			KeyName: w.KeyName, Default: decodeAddress(*w.Default), Entries: entries,
		}, nil
	default:
		return nil, UnsupportedKindError{Kind: w.Kind}
	}
}

// WireSelectionTree is the top-level encode/decode form of a complete
// selection tree: a dense node list, a dense edge list, and the index of
// the start node within Nodes.
type WireSelectionTree struct {
	StartIndex int        `yaml:"start_index"`
	Nodes      []wireNode `yaml:"nodes"`
	Edges      []wireEdge `yaml:"edges"`
}

// EncodeSelectionTree renders nodes/edges/start into their wire form.
// A node with start's id must be present in nodes; its position there
// (the last one, if several share that id) becomes StartIndex.
func EncodeSelectionTree(start selection.Node, nodes []selection.Node, edges []selection.Edge) (WireSelectionTree, error) {
	startIndex := -1
	wireNodes := make([]wireNode, len(nodes))
	for i, n := range nodes {
		wn, err := encodeNode(n)
		if err != nil {
			return WireSelectionTree{}, err
		}
		wireNodes[i] = wn
		if n.AddressID() == start.AddressID() {
			startIndex = i
		}
	}
	if startIndex < 0 {
		return WireSelectionTree{}, fmt.Errorf(`btyaml: start node id %d not present in nodes`, start.AddressID())
	}

	wireEdges := make([]wireEdge, len(edges))
	for i, e := range edges {
		we, err := encodeEdge(e)
		if err != nil {
			return WireSelectionTree{}, err
		}
		wireEdges[i] = we
	}

	return WireSelectionTree{StartIndex: startIndex, Nodes: wireNodes, Edges: wireEdges}, nil
}

// DecodeSelectionTree parses a WireSelectionTree back into its node/edge
// slices plus the resolved start node.
func DecodeSelectionTree(w WireSelectionTree) (start selection.Node, nodes []selection.Node, edges []selection.Edge, err error) {
	nodes = make([]selection.Node, len(w.Nodes))
	for i, wn := range w.Nodes {
		n, err := decodeNode(wn)
		if err != nil {
			return nil, nil, nil, err
		}
		nodes[i] = n
	}
	if w.StartIndex < 0 || w.StartIndex >= len(nodes) {
		return nil, nil, nil, fmt.Errorf(`btyaml: start_index %d out of range`, w.StartIndex)
	}

	edges = make([]selection.Edge, len(w.Edges))
	for i, we := range w.Edges {
		e, err := decodeEdge(we)
		if err != nil {
			return nil, nil, nil, err
		}
		edges[i] = e
	}

	return nodes[w.StartIndex], nodes, edges, nil
}
