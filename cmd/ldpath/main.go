// Command ldpath is an interactive REPL over one or more loaded path
// processors, mirroring the teacher's cmd/cli shape: a map of named
// sessions plus an "active" one that bare queries run against.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iand-tools/ldpath"
)

const helpText = `ldpath interactive REPL

Commands:
  new <name>              Create a new empty processor
  load <name> <file>      Load a processor from a JSON graph snapshot
  save <name> <file>      Save a processor to a JSON graph snapshot
  bind <prefix> <uri>     Bind a qname prefix on the active processor
  unload <name>           Remove a loaded processor
  list                    List all loaded processors
  use <name>              Set the active processor for queries
  help                    Show this help message
  exit / quit             Exit the REPL

Any other input is treated as "<start-uri> <path-expression>" and
evaluated against the active processor.

Examples:
  http://example.com/res/person1 foaf:givenName/text()
  http://example.com/res/person1 foaf:knows/*[foaf:age/text() >= 32]
`

func main() {
	processors := make(map[string]*ldpath.Processor)
	var active string

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("ldpath — path query processor for linked data")
	fmt.Println(`Type "help" for available commands.`)
	fmt.Println()

	for {
		if active != "" {
			fmt.Printf("[%s]> ", active)
		} else {
			fmt.Print("> ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "exit", "quit":
			return

		case "help":
			fmt.Print(helpText)

		case "list":
			if len(processors) == 0 {
				fmt.Println("(no processors loaded)")
			} else {
				for name := range processors {
					marker := " "
					if name == active {
						marker = "*"
					}
					fmt.Printf("  %s %s\n", marker, name)
				}
			}

		case "new":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: new <name>")
				continue
			}
			name := parts[1]
			processors[name] = ldpath.New()
			if active == "" {
				active = name
			}
			fmt.Printf("created empty processor %q\n", name)

		case "use":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: use <name>")
				continue
			}
			name := parts[1]
			if _, ok := processors[name]; !ok {
				fmt.Fprintf(os.Stderr, "no processor named %q\n", name)
				continue
			}
			active = name
			fmt.Printf("active processor set to %q\n", name)

		case "bind":
			if len(parts) < 3 {
				fmt.Fprintln(os.Stderr, "usage: bind <prefix> <uri>")
				continue
			}
			if active == "" {
				fmt.Fprintln(os.Stderr, "no active processor — use 'new' or 'use' first")
				continue
			}
			processors[active].Bind(parts[1], parts[2])
			fmt.Printf("bound %s: %s\n", parts[1], parts[2])

		case "load":
			if len(parts) < 3 {
				fmt.Fprintln(os.Stderr, "usage: load <name> <file>")
				continue
			}
			name, path := parts[1], parts[2]
			p, err := ldpath.LoadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error loading %q: %v\n", path, err)
				continue
			}
			processors[name] = p
			if active == "" {
				active = name
			}
			fmt.Printf("loaded %q (%d triples)\n", name, len(p.Graph.Triples()))

		case "save":
			if len(parts) < 3 {
				fmt.Fprintln(os.Stderr, "usage: save <name> <file>")
				continue
			}
			name, path := parts[1], parts[2]
			p, ok := processors[name]
			if !ok {
				fmt.Fprintf(os.Stderr, "no processor named %q\n", name)
				continue
			}
			if err := p.SaveFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "error saving %q: %v\n", path, err)
				continue
			}
			fmt.Printf("saved %q to %s\n", name, path)

		case "unload":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: unload <name>")
				continue
			}
			name := parts[1]
			if _, ok := processors[name]; !ok {
				fmt.Fprintf(os.Stderr, "no processor named %q\n", name)
				continue
			}
			delete(processors, name)
			if active == name {
				active = ""
			}
			fmt.Printf("unloaded %q\n", name)

		default:
			if active == "" {
				fmt.Fprintln(os.Stderr, "no active processor — use 'new' or 'use' first")
				continue
			}
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: <start-uri> <path-expression>")
				continue
			}
			startURI := parts[0]
			pathText := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))
			terms, err := processors[active].SelectFromURI(context.Background(), startURI, pathText, nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "query error: %v\n", err)
				continue
			}
			if len(terms) == 0 {
				fmt.Println("(no results)")
				continue
			}
			for _, t := range terms {
				fmt.Println(t.String())
			}
		}
	}
}
