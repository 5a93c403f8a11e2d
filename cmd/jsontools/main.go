package main

import (
	"fmt"
	"os"

	"github.com/erraggy/jsontools"
	"github.com/erraggy/jsontools/cmd/jsontools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		if len(os.Args) > 2 && (os.Args[2] == "-full" || os.Args[2] == "--full") {
			fmt.Println(jsontools.BuildInfo())
		} else {
			fmt.Printf("jsontools v%s\n", jsontools.Version())
		}
	case "help", "-h", "--help":
		printUsage()
	case "diff":
		if err := commands.HandleDiff(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	case "extract":
		if err := commands.HandleExtract(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	case "paths":
		if err := commands.HandlePaths(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(2)
	}
}

// commandNames lists every command suggestCommand may offer.
var commandNames = []string{"convert", "diff", "extract", "help", "mcp", "paths", "version"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough to be a plausible typo.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`jsontools - JSON and YAML comparison tools

Usage:
  jsontools <command> [options]

Commands:
  diff        Compare two JSON/YAML documents and report differences
  extract     Resolve a path and print the addressed subtree
  paths       List every leaf path in a document
  convert     Convert a document between JSON and YAML
  mcp         Serve jsontools over the Model Context Protocol (stdio)
  version     Show version information (--full for build details)
  help        Show this help message

Examples:
  jsontools diff expected.json actual.json
  jsontools diff -mode structure -tolerance 0.01 expected.json response.json
  jsontools extract -path store.items[0].sku order.yaml
  jsontools paths -format json order.json
  jsontools convert -format yaml order.json
  curl -s https://api.example.com/order/7 | jsontools diff expected.json -

Exit Status:
  0    Success (diff: documents are similar)
  1    diff found differences
  2    Usage or load error

Run 'jsontools <command> --help' for more information on a command.`)
}
