package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-quoteform/pkg/config"
	"github.com/goliatone/go-quoteform/pkg/contract"
	"github.com/goliatone/go-quoteform/pkg/i18n"
	"github.com/goliatone/go-quoteform/pkg/iplookup"
	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/renderers/tui"
	"github.com/goliatone/go-quoteform/pkg/submit"
	"github.com/goliatone/go-quoteform/pkg/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	printContract := flag.Bool("print-contract", false, "print the endpoint OpenAPI document and exit")
	flag.Parse()

	if *printContract {
		fmt.Print(string(contract.Document()))
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "quoteform: ", log.LstdFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := i18n.Default()
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}

	clientOpts := []submit.Option{
		submit.WithEndpoint(cfg.APIBaseURL, cfg.APIPath),
		submit.WithTimeout(cfg.Timeout),
		submit.WithLogger(logger),
	}
	if !cfg.SkipContract {
		checker, err := contract.LoadSource(ctx, cfg.ContractSource, contract.WithLogger(logger))
		if err != nil {
			log.Fatalf("Failed to load endpoint contract: %v", err)
		}
		clientOpts = append(clientOpts, submit.WithPayloadChecker(checker))
	}
	client := submit.New(clientOpts...)

	ctrl := wizard.New(
		wizard.WithLogger(logger),
		wizard.WithStepListener(func(from, to model.Step) {
			if to == model.StepSuccess {
				logger.Printf("request completed after %s", from)
			}
		}),
	)
	// Preselects the language prompt; the user still confirms it.
	ctrl.Update(model.Patch{Language: model.LanguagePtr(cfg.InitialLanguage())})

	renderer, err := tui.New(
		tui.WithTranslator(catalog),
		tui.WithSubmitter(client),
		tui.WithIPResolver(iplookup.New(
			iplookup.WithURL(cfg.IPLookupURL),
			iplookup.WithLogger(logger),
		)),
		tui.WithSuccessDelay(cfg.SuccessDelay),
		tui.WithSplashDuration(cfg.SplashDuration),
		tui.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to start terminal: %v", err)
	}

	logger.Printf("posting quote requests to %s", client.Endpoint())
	if err := renderer.Run(ctx, ctrl); err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(130)
		}
		log.Fatalf("Session failed: %v", err)
	}
}
