package walker_test

import (
	"fmt"
	"log"

	"github.com/erraggy/jsontools/parser"
	"github.com/erraggy/jsontools/walker"
)

func ExampleWalk() {
	doc, err := parser.New().ParseString(`{"sku": "A-1", "qty": 2, "tags": ["new", "sale"]}`)
	if err != nil {
		log.Fatal(err)
	}

	err = walker.Walk(doc,
		walker.WithLeafHandler(func(wc *walker.WalkContext, node *parser.Node) walker.Action {
			fmt.Printf("%s = %s\n", wc.Path, node)
			return walker.Continue
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Output:
	// sku = "A-1"
	// qty = 2
	// tags[0] = "new"
	// tags[1] = "sale"
}

func ExampleSkipChildren() {
	doc, err := parser.New().ParseString(`{"public": {"a": 1}, "internal": {"secret": true}, "b": 2}`)
	if err != nil {
		log.Fatal(err)
	}

	err = walker.Walk(doc,
		walker.WithObjectHandler(func(wc *walker.WalkContext, _ *parser.Node) walker.Action {
			if wc.Name == "internal" {
				return walker.SkipChildren
			}
			return walker.Continue
		}),
		walker.WithLeafHandler(func(wc *walker.WalkContext, _ *parser.Node) walker.Action {
			fmt.Println(wc.Path)
			return walker.Continue
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Output:
	// public.a
	// b
}

func ExampleCollectStats() {
	doc, err := parser.New().ParseString(`{"users": [{"id": 1}, {"id": 2}], "total": 2}`)
	if err != nil {
		log.Fatal(err)
	}

	stats, err := walker.CollectStats(doc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("nodes=%d objects=%d arrays=%d leaves=%d depth=%d\n",
		stats.Total, stats.Objects, stats.Arrays, stats.Leaves(), stats.MaxDepth)

	// Output:
	// nodes=7 objects=3 arrays=1 leaves=3 depth=3
}
