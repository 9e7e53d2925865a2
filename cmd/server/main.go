package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/x-maues/rag-flarista/internal/api"
	"github.com/x-maues/rag-flarista/internal/chat"
	"github.com/x-maues/rag-flarista/internal/chromemdb"
	"github.com/x-maues/rag-flarista/internal/chunker"
	"github.com/x-maues/rag-flarista/internal/config"
	"github.com/x-maues/rag-flarista/internal/embedding"
	"github.com/x-maues/rag-flarista/internal/llmservice"
	"github.com/x-maues/rag-flarista/internal/parser"
	"github.com/x-maues/rag-flarista/internal/rag"
	"github.com/x-maues/rag-flarista/internal/session"
)

const defaultConfigPath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	configPath := flag.String("config", defaultConfigPath, "Path to the configuration file")
	docsDir := flag.String("docs", "", "Override the document corpus directory")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if *docsDir != "" {
		cfg.Docs.Dir = *docsDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := buildService(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing assistant")
	}
	defer svc.Shutdown()

	server := api.NewServer(svc, cfg.Server.CORSOrigins, log.Logger)
	if err := server.Run(ctx, cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// buildService runs the startup ingestion pipeline and wires the answer
// sources. Ingestion and index-build failures disable retrieval for the
// process lifetime; only provider-client construction is fatal.
func buildService(ctx context.Context, cfg *config.Config) (*chat.Service, error) {
	client, err := llmservice.NewGoogleAI(ctx, cfg.APIKey, cfg.LLM.ChatModel, cfg.LLM.EmbeddingModel)
	if err != nil {
		return nil, err
	}
	embedder, err := embedding.NewEmbedder(client)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout()
	general := rag.NewGeneral(
		llmservice.NewClient(client, cfg.LLM.GeneralModel, cfg.LLM.GeneralTemperature, timeout))

	var retrieval rag.Source
	docs, err := parser.LoadDirectory(cfg.Docs.Dir)
	switch {
	case errors.Is(err, parser.ErrNoDocuments):
		log.Warn().Err(err).Msg("no document corpus, retrieval unavailable")
	case err != nil:
		log.Error().Err(err).Msg("document load failed, retrieval unavailable")
	default:
		chunks := chunker.Split(docs, cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap)
		log.Info().Int("documents", len(docs)).Int("chunks", len(chunks)).Msg("corpus loaded")

		index, err := chromemdb.Build(ctx, embedder, chunks, timeout)
		if err != nil {
			log.Error().Err(err).Msg("index build failed, retrieval unavailable")
		} else {
			retrieval = rag.NewRetrieval(index,
				llmservice.NewClient(client, cfg.LLM.ChatModel, cfg.LLM.ChatTemperature, timeout),
				cfg.RAG.TopK)
			log.Info().Int("size", index.Size()).Msg("retrieval index ready")
		}
	}

	return chat.NewService(retrieval, general, session.NewStore(), log.Logger), nil
}
