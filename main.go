// ABOUTME: Entry point for the voicedesk MCP server and operator CLI
// ABOUTME: Routes to MCP server, desk commands, viz, or TUI based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/poojareddy/voicedesk/cli"
	"github.com/poojareddy/voicedesk/journal"
	"github.com/poojareddy/voicedesk/store"
	"github.com/poojareddy/voicedesk/tui"
)

const version = "0.1.0"

func main() {
	// Optional local overrides; absence is fine
	_ = godotenv.Load(".env.local")

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataDir := flag.String("data-dir", "", "Data directory (default: ~/.local/share/voicedesk)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("voicedesk version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	dir := getDataDir(*dataDir)
	st, err := store.Open(dir)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	switch command {
	case "mcp":
		jnl, err := journal.Open(filepath.Join(dir, "journal.db"))
		if err != nil {
			log.Fatalf("Failed to open journal: %v", err)
		}
		defer jnl.Close()

		if err := cli.MCPCommand(st, jnl); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "desk":
		if len(commandArgs) == 0 {
			fmt.Println("Error: desk requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		deskCommand := commandArgs[0]
		deskArgs := commandArgs[1:]

		switch deskCommand {
		case "list-leads":
			if err := cli.ListLeadsCommand(st, deskArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-cases":
			if err := cli.ListCasesCommand(st, deskArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "show-case":
			if err := cli.ShowCaseCommand(st, deskArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "resolve-case":
			if err := cli.ResolveCaseCommand(st, deskArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "seed":
			if err := cli.SeedCommand(st, deskArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "journal":
			jnl, err := journal.Open(filepath.Join(dir, "journal.db"))
			if err != nil {
				log.Fatalf("Failed to open journal: %v", err)
			}
			defer jnl.Close()

			if err := cli.JournalCommand(jnl, deskArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown desk command: %s\n\n", deskCommand)
			printUsage()
			os.Exit(1)
		}

	case "viz":
		if len(commandArgs) == 0 {
			fmt.Println("Error: viz requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		vizCommand := commandArgs[0]
		vizArgs := commandArgs[1:]

		switch vizCommand {
		case "pipeline":
			if err := cli.VizPipelineCommand(st, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "funnel":
			if err := cli.VizFunnelCommand(st, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown viz command: %s\n\n", vizCommand)
			printUsage()
			os.Exit(1)
		}

	case "tui":
		if err := tui.Run(st); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getDataDir(dataDir string) string {
	if dataDir != "" {
		return dataDir
	}
	if env := os.Getenv("VOICEDESK_DATA_DIR"); env != "" {
		return env
	}
	return filepath.Join(xdg.DataHome, "voicedesk")
}

func printUsage() {
	fmt.Printf(`voicedesk v%s - Voice agent business core

USAGE:
  voicedesk [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --data-dir <path>      Data directory (default: ~/.local/share/voicedesk,
                         or VOICEDESK_DATA_DIR)

COMMANDS:
  mcp                    Start MCP server for the dialog manager
  desk                   Operator commands
  viz                    Visualization commands
  tui                    Interactive terminal browser

MCP SERVER:
  voicedesk mcp          Start MCP server (stdio transport)

DESK COMMANDS:
  voicedesk desk list-leads     List captured lead snapshots
    --limit <n>                   Max results (default: 50)

  voicedesk desk list-cases     List fraud cases
    --status <status>             Filter by status

  voicedesk desk show-case <id> Show one case (challenge answer omitted)

  voicedesk desk resolve-case --status <status> [--note <text>] <id>
                                Set a final status on a case

  voicedesk desk seed           Reset data files to the bundled seed data

  voicedesk desk journal        Show recent tool calls
    --limit <n>                   Max results (default: 20)

VIZ COMMANDS:
  voicedesk viz pipeline        Case status graph
    --output <file>               Write DOT to file instead of stdout

  voicedesk viz funnel          Lead field completion funnel
    --output <file>               Write DOT to file instead of stdout
`, version)
}
