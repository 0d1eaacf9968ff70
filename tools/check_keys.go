// check_keys resolves the configured keybindings and prints them, so a bad
// key name shows up before the window opens.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"survivor/pkg/client/systems"
	"survivor/pkg/shared/config"
)

func main() {
	configPath := flag.String("config", "survivor.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	keys, err := systems.ResolveKeys(cfg.Keybindings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	actions := make([]string, 0, len(keys))
	for action := range keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		fmt.Printf("%-6s", action)
		for _, k := range keys[action] {
			fmt.Printf(" %s(%d)", k.String(), int(k))
		}
		fmt.Println()
	}
}
