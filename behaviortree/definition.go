package behaviortree

import "github.com/joeycumines/content-bt/condition"

// Definition is the tagged union over BT node definitions: pure data,
// immutable after construction, with no embedded runtime state.
type Definition interface {
	definitionID() int32
}

// PrintLogDefinition writes Message to the tree's Logger and returns
// Success.
type PrintLogDefinition struct {
	ID      int32
	Message string
}

func (d PrintLogDefinition) definitionID() int32 { return d.ID }

// ExecuteSubTreeDefinition delegates ticking to the root of the subtree
// identified by SubtreeID, resolved once at build time.
type ExecuteSubTreeDefinition struct {
	ID        int32
	SubtreeID int32
}

func (d ExecuteSubTreeDefinition) definitionID() int32 { return d.ID }

// SequenceDefinition ticks Children in order; the first non-Success
// status is returned, all-Success yields Success.
type SequenceDefinition struct {
	ID       int32
	Children []Definition
}

func (d SequenceDefinition) definitionID() int32 { return d.ID }

// SelectorDefinition ticks Children in order; the first non-Failure
// status is returned, all-Failure yields Failure.
type SelectorDefinition struct {
	ID       int32
	Children []Definition
}

func (d SelectorDefinition) definitionID() int32 { return d.ID }

// ConditionDefinition is a leaf that evaluates Entry (chained through
// Table) against the tick Context's Payload, returning Success/Failure and
// never Running. Reuses the condition.Expression grammar rather than
// inventing a second one.
type ConditionDefinition struct {
	ID    int32
	Entry condition.Expression
	Table []condition.Expression
}

func (d ConditionDefinition) definitionID() int32 { return d.ID }
