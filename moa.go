// Package moa provides a high-level façade over the orchestrator and its
// collaborators, enabling construction of a complete mixture-of-agents
// engine from a single config struct. Most applications interact with this
// package by:
//  1. Building a config.Config (config.FromEnv or config.Default)
//  2. Creating an engine via New() (optionally overriding the completer,
//     search client or logger)
//  3. Driving turns with GetResponse and the command-surface methods
//
// The façade wires the default reference agents (analytical, historical
// context, science truth) and the synthesis agent, an OpenAI-compatible or
// Anthropic completion client, the DuckDuckGo/trafilatura web augmentation
// client and the chromem-backed archival store. All defaults are safe for
// local development against Ollama.
package moa

import (
	"fmt"

	"github.com/philippgille/chromem-go"

	"github.com/vodalus/moa/agent"
	"github.com/vodalus/moa/config"
	"github.com/vodalus/moa/logging"
	"github.com/vodalus/moa/memory"
	"github.com/vodalus/moa/model"
	"github.com/vodalus/moa/model/anthropic"
	"github.com/vodalus/moa/model/openai"
	"github.com/vodalus/moa/orchestrator"
	"github.com/vodalus/moa/websearch"
)

// Version is the module version.
const Version = "0.1.0"

// Options override the collaborators the façade would otherwise build from
// config.
type Options struct {
	// Completer overrides the provider-selected completion client.
	Completer model.Completer
	// Search overrides the default web augmentation client. Set to nil and
	// DisableSearch to run without web access.
	Search agent.Searcher
	// Embedding overrides the provider-selected embedding function for
	// archival memory.
	Embedding chromem.EmbeddingFunc
	// DisableSearch suppresses the default search client when Search is nil.
	DisableSearch bool

	Logger logging.Logger
}

// New assembles a ready-to-use Orchestrator from deployment configuration.
func New(cfg config.Config, optFns ...func(o *Options)) (*orchestrator.Orchestrator, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	completer := opts.Completer
	if completer == nil {
		switch cfg.Provider {
		case config.ProviderAnthropic:
			completer = anthropic.NewCompleter(func(o *anthropic.Options) {
				o.APIKey = cfg.APIKey
			})
		case config.ProviderOpenAI, "":
			completer = openai.NewCompleter(func(o *openai.Options) {
				o.BaseURL = cfg.BaseURL
				o.APIKey = cfg.APIKey
			})
		default:
			return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
		}
	}

	search := opts.Search
	if search == nil && !opts.DisableSearch {
		search = websearch.NewDefault(func(o *websearch.Options) {
			o.Logger = opts.Logger
		})
	}

	embed := opts.Embedding
	if embed == nil {
		switch cfg.EmbeddingProvider {
		case "openai":
			embed = chromem.NewEmbeddingFuncOpenAI(cfg.APIKey, chromem.EmbeddingModelOpenAI(cfg.EmbeddingModel))
		case "ollama", "":
			embed = chromem.NewEmbeddingFuncOllama(cfg.EmbeddingModel, cfg.EmbeddingBaseURL)
		default:
			return nil, fmt.Errorf("unknown embedding provider %q", cfg.EmbeddingProvider)
		}
	}

	coreMemory, err := memory.NewCoreMemory(cfg.CoreMemoryPath)
	if err != nil {
		return nil, fmt.Errorf("core memory: %w", err)
	}

	archival, err := memory.NewArchival(embed, func(o *memory.ArchivalOptions) {
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, fmt.Errorf("archival memory: %w", err)
	}

	agentOpts := func(o *agent.Options) {
		o.Searcher = search
		o.Logger = opts.Logger
	}

	references := []*agent.Agent{
		agent.New(agent.AnalyticalAgentName, cfg.ReferenceModels[0], agent.AnalyticalPrompt, completer, agentOpts),
		agent.New(agent.HistoricalContextAgentName, cfg.ReferenceModels[1], agent.HistoricalContextPrompt, completer, agentOpts),
		agent.New(agent.ScienceTruthAgentName, cfg.ReferenceModels[2], agent.ScienceTruthPrompt, completer, agentOpts),
	}
	synthesis := agent.New(agent.SynthesisAgentName, cfg.SynthesisModel, agent.SynthesisPrompt, completer, agentOpts)

	return orchestrator.New(references, synthesis, completer, coreMemory, archival, func(o *orchestrator.Options) {
		o.Search = search
		o.Temperature = cfg.Temperature
		o.MaxTokens = cfg.MaxTokens
		o.WebSearchEnabled = cfg.WebSearchEnabled && search != nil
		o.Logger = opts.Logger
	})
}
