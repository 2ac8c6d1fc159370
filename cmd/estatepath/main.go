package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ytlim/estatepath/internal/agent"
	"github.com/ytlim/estatepath/internal/catalog"
	"github.com/ytlim/estatepath/internal/cli"
	"github.com/ytlim/estatepath/internal/closing"
	"github.com/ytlim/estatepath/internal/legal"
	"github.com/ytlim/estatepath/internal/llm"
	"github.com/ytlim/estatepath/internal/outreach"
	"github.com/ytlim/estatepath/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}
	store := state.NewStore(cat)

	outreachCfg := outreach.LoadConfig()
	var outreachObs outreach.Observer = outreach.NoopObserver{}
	if os.Getenv("ESTATEPATH_LOG_CALLS") != "" {
		outreachObs = outreach.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Catalog:   cat,
		Store:     store,
		Letters:   outreach.NewLetterService(outreachCfg, store, outreachObs),
		Scanner:   outreach.NewReplyScanner(outreachCfg, store, outreachObs),
		Bundle:    legal.NewBundleService(legal.LoadConfig(), store),
		Checklist: closing.NewChecklist(store),
	}

	// The assistant degrades gracefully without credentials: the chat
	// service falls back to canned guidance and search serves offline
	// results.
	llmCfg := llm.LoadConfig()
	var chatClient llm.ChatClient
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		chatClient = llm.NewChatClient(llmCfg, observer)
	}
	app.Chat = agent.NewChatService(chatClient, agent.NewSearchClient(agent.LoadSearchConfig()))

	// Detect interactive terminal for the TUI entrypoint.
	app.Interactive = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	return cli.NewRootCmd(app).Execute()
}
