package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/dcsstech/kbportal/assistant"
	"github.com/dcsstech/kbportal/gemini"
	kbhttp "github.com/dcsstech/kbportal/http"
	"github.com/dcsstech/kbportal/memory"
	kbslog "github.com/dcsstech/kbportal/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing.
	Catalog  *memory.CatalogService
	Accounts *memory.AccountService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kbportal"),
		kong.Description("Field engineering knowledge-base portal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	// Stores initialize from the fixed seed set and live for the
	// process lifetime.
	m.Catalog = memory.NewCatalogService(memory.SeedDocuments())
	m.Accounts = memory.NewAccountService(memory.SeedAccounts())

	chatter := kbslog.NewChatter(gemini.NewChatter(client, m.Catalog), logger)
	explainer := gemini.NewLimitedExplainer(
		kbslog.NewExplainer(gemini.NewExplainer(client), logger),
		cli.Serve.ExplainRPS, 1,
	)
	session := assistant.NewSession(chatter, logger)

	deps.Server = kbhttp.NewServer(m.Catalog, m.Accounts, explainer, session, logger)

	return kongCtx.Run(deps)
}
