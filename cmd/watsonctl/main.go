// Command watsonctl is a small operator tool for the Watson service clients.
//
// Usage:
//
//	watsonctl classifiers
//	watsonctl classify <classifier-id> <text>
//	watsonctl profile <text>
//
// Credentials and endpoints are read from the environment (WATSON_USERNAME,
// WATSON_PASSWORD, WATSON_CLASSIFIER_URL, WATSON_PERSONALITY_URL) or a local
// .env file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	watson "github.com/watson-community/watson-go-sdk"
	"github.com/watson-community/watson-go-sdk/internal/cliconfig"
	"github.com/watson-community/watson-go-sdk/naturallanguageclassifier"
	"github.com/watson-community/watson-go-sdk/personalityinsights"
	"github.com/watson-community/watson-go-sdk/transport"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "watsonctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: watsonctl <classifiers|classify|profile> [args]")
	}

	cfg, err := cliconfig.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	httpClient := transport.New(transport.Config{
		Timeout:    cfg.HTTPTimeout,
		RetryCount: cfg.HTTPRetryCount,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "classifiers":
		return listClassifiers(ctx, cfg, httpClient, logger)
	case "classify":
		if len(args) < 3 {
			return fmt.Errorf("usage: watsonctl classify <classifier-id> <text>")
		}
		return classify(ctx, cfg, httpClient, logger, args[1], strings.Join(args[2:], " "))
	case "profile":
		if len(args) < 2 {
			return fmt.Errorf("usage: watsonctl profile <text>")
		}
		return profile(ctx, cfg, httpClient, logger, strings.Join(args[1:], " "))
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func classifierClient(cfg *cliconfig.Config, httpClient watson.HTTPClient, logger *zap.Logger) (*naturallanguageclassifier.Client, error) {
	return naturallanguageclassifier.NewClient(watson.Config{
		URL:        cfg.ClassifierURL,
		Username:   cfg.Username,
		Password:   cfg.Password,
		HTTPClient: httpClient,
		Logger:     logger,
	})
}

func listClassifiers(ctx context.Context, cfg *cliconfig.Config, httpClient watson.HTTPClient, logger *zap.Logger) error {
	client, err := classifierClient(cfg, httpClient, logger)
	if err != nil {
		return err
	}

	classifiers, err := client.List(ctx)
	if err != nil {
		return err
	}
	return printJSON(classifiers)
}

func classify(ctx context.Context, cfg *cliconfig.Config, httpClient watson.HTTPClient, logger *zap.Logger, classifierID, text string) error {
	client, err := classifierClient(cfg, httpClient, logger)
	if err != nil {
		return err
	}

	classification, err := client.Classify(ctx, classifierID, text)
	if err != nil {
		return err
	}
	return printJSON(classification)
}

func profile(ctx context.Context, cfg *cliconfig.Config, httpClient watson.HTTPClient, logger *zap.Logger, text string) error {
	client, err := personalityinsights.NewClient(watson.Config{
		URL:        cfg.PersonalityURL,
		Username:   cfg.Username,
		Password:   cfg.Password,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	result, err := client.ProfileFromText(ctx, text)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func newLogger(levelName string) (*zap.Logger, error) {
	var level zapcore.Level
	switch levelName {
	case "debug":
		level = zapcore.DebugLevel
	case "info", "":
		level = zapcore.InfoLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", levelName)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		level,
	)

	return zap.New(core), nil
}
