package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"reel_hook_generator/config"
	"reel_hook_generator/generator"
	"reel_hook_generator/logger"
	"reel_hook_generator/server"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath string
	listenAddr string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hookgen",
		Short:         "AI viral reel hook generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
	for _, c := range []*cobra.Command{root, serve} {
		c.Flags().StringVar(&listenAddr, "addr", "", "listen address (overrides PORT)")
	}

	root.AddCommand(serve, newGenerateCmd())
	return root
}

// setup loads config once and builds the logger and pipeline from it.
func setup() (config.Config, *logger.Logger, *generator.Agent, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log := logger.New(logger.FromConfig(cfg.LogLevel, cfg.LogFormat))

	llm, err := buildLLM(cfg)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, log, agent, nil
}

func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
		Model:            cfg.LLM.Model,
		APIKey:           cfg.LLM.APIKey,
		BaseURL:          cfg.LLM.BaseURL,
		Timeout:          cfg.LLM.Timeout,
		Temperature:      cfg.LLM.Temperature,
		MaxTokens:        cfg.LLM.MaxTokens,
		TopP:             cfg.LLM.TopP,
		FrequencyPenalty: cfg.LLM.FrequencyPenalty,
		PresencePenalty:  cfg.LLM.PresencePenalty,
	})
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, agent, err := setup()
	if err != nil {
		return err
	}
	srv, err := server.New(agent, cfg, log)
	if err != nil {
		return err
	}

	listen := cfg.Addr()
	if listenAddr != "" {
		listen = listenAddr
	}
	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	log.Info("server running", slog.String("addr", listen))
	log.Info("openai api key configured", slog.String("model", cfg.LLM.Model))
	log.Info("api endpoint", slog.String("route", "POST /api/generate-hooks"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(ctx)
}

func newGenerateCmd() *cobra.Command {
	var (
		req    generator.Request
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate hooks once and print them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, agent, err := setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if cfg.LLM.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.LLM.Timeout)
				defer cancel()
			}
			res, err := agent.Generate(ctx, req)
			if err != nil {
				if !generator.IsValidation(err) {
					log.LogError(ctx, err, "error generating hooks")
				}
				return err
			}
			return printResult(cmd.OutOrStdout(), res, asJSON)
		},
	}
	cmd.Flags().StringVar(&req.Topic, "topic", "", "what the video is about (3-500 characters)")
	cmd.Flags().StringVar(&req.Platform, "platform", "Instagram Reels", "target platform")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full JSON result")
	return cmd
}

func printResult(w io.Writer, res generator.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	for _, h := range res.Hooks {
		if _, err := fmt.Fprintln(w, h); err != nil {
			return err
		}
	}
	return nil
}
