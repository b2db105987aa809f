// Command moa is an interactive shell over the mixture-of-agents engine.
// Every command is a thin dispatch onto one orchestrator method; free text
// runs a full response turn.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/vodalus/moa"
	"github.com/vodalus/moa/config"
	"github.com/vodalus/moa/logging"
)

var cli struct {
	Temperature float64 `default:"0.7" help:"Temperature for response generation."`
	MaxTokens   int64   `default:"1000" help:"Maximum number of tokens in the response."`
	EnvFile     string  `default:".env" help:"Environment file with MOA_* settings."`
	LogLevel    string  `default:"warn" enum:"debug,info,warn,error" help:"Log level."`
}

func main() {
	kong.Parse(&cli, kong.Name("moa"), kong.Description("Mixture-of-agents chat with web search and two-tier memory."))

	// Missing env file is fine; the defaults target local Ollama.
	_ = godotenv.Load(cli.EnvFile)

	cfg := config.FromEnv()
	cfg.Temperature = cli.Temperature
	cfg.MaxTokens = cli.MaxTokens

	logger := logging.NewSlogLogger(logLevel(cli.LogLevel), "text", false)

	engine, err := moa.New(cfg, func(o *moa.Options) { o.Logger = logger })
	if err != nil {
		fmt.Fprintf(os.Stderr, "moa: %v\n", err)
		os.Exit(1)
	}

	printWelcome()

	ctx := context.Background()
	showTime := false
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "exit":
			fmt.Println("Goodbye!")
			return

		case input == "agents":
			fmt.Println("Available agents:")
			for _, name := range engine.AgentNames() {
				fmt.Printf("  - %s\n", name)
			}

		case input == "time":
			showTime = !showTime
			fmt.Printf("Response time display: %v\n", showTime)

		case input == "web":
			fmt.Println(engine.ToggleWebSearch(!engine.WebSearchEnabled()))

		case input == "memory":
			fmt.Println(engine.MemorySummary())

		case input == "clear core":
			printStatus(engine.ClearCoreMemory())

		case input == "clear archival":
			printStatus(engine.ClearArchivalMemory(ctx))

		case strings.HasPrefix(input, "edit core "):
			fields := strings.SplitN(input, " ", 5)
			if len(fields) < 5 {
				fmt.Println("Invalid format. Use: edit core [section] [key] [value]")
				continue
			}
			printStatus(engine.EditCoreMemory(fields[2], fields[3], fields[4]))

		case strings.HasPrefix(input, "search archival "):
			query := strings.TrimPrefix(input, "search archival ")
			chunks, err := engine.SearchArchivalMemory(ctx, query)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Archival memory search results for '%s':\n", query)
			for i, c := range chunks {
				fmt.Printf("%d. %s\n", i+1, preview(c.Content, 100))
			}

		case strings.HasPrefix(input, "add archival "):
			printStatus(engine.AddToArchivalMemory(ctx, strings.TrimPrefix(input, "add archival ")))

		case strings.HasPrefix(input, "supersede archival "):
			printStatus(engine.SupersedeArchivalMemory(ctx, strings.TrimPrefix(input, "supersede archival ")))

		case strings.HasPrefix(input, "upload "):
			printStatus(engine.UploadDocument(ctx, strings.TrimPrefix(input, "upload ")))

		case strings.HasPrefix(input, "model "):
			id := strings.TrimPrefix(input, "model ")
			engine.SetModel(id)
			fmt.Printf("Synthesis model set to %s\n", id)

		default:
			fmt.Println("Agents are thinking...")
			start := time.Now()
			answer, searched, err := engine.GetResponse(ctx, input)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("\nVodalus: %s\n", answer)
			if searched {
				fmt.Println("\n[Web search was performed during response generation]")
			}
			if showTime {
				fmt.Printf("\nResponse time: %.2f seconds\n", time.Since(start).Seconds())
			}
		}
	}
}

func printStatus(status string, err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(status)
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func logLevel(s string) logging.LogLevel {
	switch s {
	case "debug":
		return logging.LogLevelDebug
	case "info":
		return logging.LogLevelInfo
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelWarn
	}
}

func printWelcome() {
	fmt.Println("Welcome to the Vodalus mixture-of-agents chat!")
	fmt.Println("Available commands:")
	fmt.Println("  'exit' - End the conversation")
	fmt.Println("  'agents' - List available agents")
	fmt.Println("  'time' - Toggle response time display")
	fmt.Println("  'web' - Toggle web search")
	fmt.Println("  'memory' - Show memory summary")
	fmt.Println("  'edit core [section] [key] [value]' - Edit core memory")
	fmt.Println("  'clear core' - Clear core memory")
	fmt.Println("  'search archival [query]' - Search archival memory")
	fmt.Println("  'add archival [content]' - Add to archival memory")
	fmt.Println("  'supersede archival [content]' - Add corrected content (add-only)")
	fmt.Println("  'clear archival' - Clear archival memory")
	fmt.Println("  'upload [file_path]' - Upload and process a document")
	fmt.Println("  'model [id]' - Retarget the synthesis model")
}
