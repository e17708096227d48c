// Command btrun is a small demo CLI that wires a selection tree and a
// behavior tree together from a single YAML fixture file: it evaluates the
// selection tree against a payload, then ticks the behavior tree once,
// printing both results. It carries no HTTP server or persistence layer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/joeycumines/content-bt/behaviortree"
	"github.com/joeycumines/content-bt/btyaml"
	"github.com/joeycumines/content-bt/reactive"
	"github.com/joeycumines/content-bt/selection"
	"github.com/joeycumines/content-bt/value"
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:]))
}

func run(cmd string, args []string) (exitCode int) {
	var (
		flags       = flag.NewFlagSet(cmd, flag.ContinueOnError)
		fixturePath stringFlag
		traceID     = uuid.New()
	)
	flags.Var(&fixturePath, `fixture`, `path to a YAML fixture (payload / selection / behavior sections)`)
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if fixturePath == `` {
		log.Printf("trace=%s: -fixture is required\n", traceID)
		flags.Usage()
		return 1
	}

	log.Printf("trace=%s: loading fixture %s\n", traceID, fixturePath)
	data, err := os.ReadFile(string(fixturePath))
	if err != nil {
		log.Printf("trace=%s: read fixture: %s\n", traceID, err)
		return 1
	}

	payload, evaluator, tree, err := loadFixture(data)
	if err != nil {
		log.Printf("trace=%s: parse fixture: %s\n", traceID, err)
		return 1
	}

	svc, err := reactive.NewService()
	if err != nil {
		log.Printf("trace=%s: reactive.NewService: %s\n", traceID, err)
		return 1
	}

	if evaluator != nil {
		cmds, err := evaluator.SelectCommands(payload, nil)
		if err != nil {
			log.Printf("trace=%s: select commands: %s\n", traceID, err)
			return 1
		}
		fmt.Printf("trace=%s selected commands:\n", traceID)
		for _, c := range cmds {
			fmt.Printf("  - {id: %d, index: %d}\n", c.ID, c.Index)
		}
	}

	if tree != nil {
		if ids := tree.NodeIDs(); len(ids) > 0 {
			svc.InitializeNodes(ids)
		}
		ctx := &behaviortree.Context{Payload: payload, Reactive: svc}
		status, err := tree.Tick(ctx)
		if err != nil {
			log.Printf("trace=%s: tick: %s\n", traceID, err)
			return 1
		}
		fmt.Printf("trace=%s tick result: %s\n", traceID, status)
	}

	return 0
}

// fixtureDoc is the top-level shape of a btrun fixture file: each section
// is decoded lazily via its own yaml.Node, then handed to the matching
// btyaml Unmarshal function, so a fixture may supply a payload alone, a
// selection tree alone, a behavior tree alone, or any combination.
type fixtureDoc struct {
	Payload   yaml.Node `yaml:"payload"`
	Selection yaml.Node `yaml:"selection"`
	Behavior  yaml.Node `yaml:"behavior"`
}

func loadFixture(data []byte) (value.Payload, *selection.Evaluator, *behaviortree.Tree, error) {
	var doc fixtureDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return value.Payload{}, nil, nil, err
	}

	payload := value.NewPayload(nil)
	if doc.Payload.Kind != 0 {
		section, err := yaml.Marshal(&doc.Payload)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
		payload, err = btyaml.UnmarshalPayload(section)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
	}

	var evaluator *selection.Evaluator
	if doc.Selection.Kind != 0 {
		section, err := yaml.Marshal(&doc.Selection)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
		wire, err := btyaml.UnmarshalSelectionTree(section)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
		start, nodes, edges, err := btyaml.DecodeSelectionTree(wire)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
		evaluator, err = selection.New(start, nodes, edges)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
	}

	var tree *behaviortree.Tree
	if doc.Behavior.Kind != 0 {
		section, err := yaml.Marshal(&doc.Behavior)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
		wire, err := btyaml.UnmarshalBehaviorTree(section)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
		root, subtrees, err := btyaml.DecodeSubTrees(wire)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
		tree, err = behaviortree.Build(root, subtrees)
		if err != nil {
			return value.Payload{}, nil, nil, err
		}
	}

	return payload, evaluator, tree, nil
}

type stringFlag string

func (f stringFlag) String() string { return string(f) }
func (f *stringFlag) Set(s string) error {
	*f = stringFlag(s)
	return nil
}
