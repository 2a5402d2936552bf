package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"graphite-theme/api"
	"graphite-theme/config"
	"graphite-theme/content"
	"graphite-theme/model"
	"graphite-theme/storage"
	"graphite-theme/theme"
	"graphite-theme/ui"
	"graphite-theme/validate"
)

var (
	configPath string
	noColor    bool
	format     string
	outPath    string
	outDir     string
	scanRoot   string
	listen     string
	genPath    string
	appVersion = "0.1.0"

	settings config.Settings
	printer  *ui.Printer
)

var rootCmd = &cobra.Command{
	Use:           "graphite-theme",
	Short:         "graphite-theme – design tokens for the Graphite frontend",
	Long:          "graphite-theme validates, resolves, and exports the utility-framework color palette and content globs used by the Graphite frontend.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.LoadSettings()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("config") {
			settings.ConfigPath = configPath
		}
		if cmd.Flags().Changed("no-color") {
			settings.NoColor = noColor
		}
		printer = ui.NewPrinter(os.Stdout, settings.NoColor)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check colors, names, and content globs",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the configuration as JSON, YAML, or a JS module",
	Long:  "Write the configuration to stdout, a file (--out), or an artifact directory (--out-dir). With --out the format follows the file extension unless --format is given.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve NAME...",
	Short: "Resolve token names such as black or data-vector-dim",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print swatches for every utility color",
	Args:  cobra.NoArgs,
	RunE:  runPalette,
}

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "List files matched by the content globs",
	Args:  cobra.NoArgs,
	RunE:  runContent,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a palette preview and lookup API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the built-in configuration to a file",
	Long:  "Write the built-in configuration to a file. The format follows the extension; existing files are never overwritten.",
	Args:  cobra.NoArgs,
	RunE:  runConfigGenerate,
}

func init() {
	rootCmd.Version = appVersion
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Theme configuration file (.json, .yaml); default: built-in palette")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	exportCmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml, js, cjs")
	exportCmd.Flags().StringVar(&outPath, "out", "", "Write to this file instead of stdout")
	exportCmd.Flags().StringVar(&outDir, "out-dir", "", "Write theme.json, theme.yaml, and tailwind.config.js into this directory")

	contentCmd.Flags().StringVar(&scanRoot, "root", ".", "Project directory the content globs are relative to")
	serveCmd.Flags().StringVar(&listen, "listen", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&scanRoot, "root", ".", "Project directory for the content listing")

	configGenerateCmd.Flags().StringVar(&genPath, "path", "theme.json", "Destination file")
	configCmd.AddCommand(configGenerateCmd)

	rootCmd.AddCommand(validateCmd, exportCmd, resolveCmd, paletteCmd, contentCmd, serveCmd, configCmd)
}

// loadConfig returns the configured file, or the built-in palette when none is set.
func loadConfig() (model.Config, error) {
	if settings.ConfigPath == "" {
		return theme.Default(), nil
	}
	cfg, err := config.Load(settings.ConfigPath)
	if err != nil {
		return model.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func loadManager() (*theme.Manager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return theme.NewManager(cfg), nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := validate.Config(cfg); err != nil {
		printer.Issues(err)
		return errors.New("configuration is invalid")
	}

	source := settings.ConfigPath
	if source == "" {
		source = "built-in palette"
	}
	printer.Status("success", fmt.Sprintf("%s: %d tokens, %d content globs", source, len(cfg.Theme.Colors), len(cfg.Content)))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := validate.Config(cfg); err != nil {
		printer.Issues(err)
		return errors.New("refusing to export an invalid configuration")
	}

	if outDir != "" {
		store := storage.New(outDir)
		if err := store.EnsureDirs(); err != nil {
			return fmt.Errorf("ensure out dir: %w", err)
		}
		if _, err := store.Write(cfg, config.FormatJSON, config.FormatYAML, config.FormatESM); err != nil {
			return err
		}
		artifacts, err := store.List()
		if err != nil {
			return err
		}
		for _, a := range artifacts {
			printer.Status("success", fmt.Sprintf("%s (%d bytes)", filepath.Join(outDir, a.Name), a.Size))
		}
		return nil
	}

	f, err := config.ParseFormat(format)
	if err != nil {
		return err
	}
	if outPath != "" && !cmd.Flags().Changed("format") {
		if f, err = config.FormatFromPath(outPath); err != nil {
			return err
		}
	}

	data, err := config.Marshal(cfg, f)
	if err != nil {
		return err
	}
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := config.WriteFileAtomic(outPath, data); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	printer.Status("success", "wrote "+outPath)
	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}

	var failed bool
	for _, name := range args {
		value, err := m.Resolve(name)
		if err != nil {
			printer.Status("error", err.Error())
			failed = true
			continue
		}
		printer.Line("%s\t%s", name, value)
	}
	if failed {
		return errors.New("some tokens could not be resolved")
	}
	return nil
}

func runPalette(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}
	printer.Palette(m)
	return nil
}

func runContent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root := settings.Root
	if cmd.Flags().Changed("root") {
		root = scanRoot
	}

	files, err := content.Scan(cmd.Context(), root, cfg.Content)
	if err != nil {
		return err
	}
	for _, f := range files {
		printer.Line("%s", f)
	}

	counts := content.CountByExtension(files)
	exts := make([]string, 0, len(counts))
	for ext := range counts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		printer.Status("info", fmt.Sprintf("%s: %d", ext, counts[ext]))
	}
	if len(files) == 0 {
		printer.Status("warning", "no files matched the content globs under "+root)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}
	if err := validate.Config(m.Config()); err != nil {
		printer.Issues(err)
		return errors.New("refusing to serve an invalid configuration")
	}

	addr := settings.Listen
	if cmd.Flags().Changed("listen") {
		addr = listen
	}
	root := settings.Root
	if cmd.Flags().Changed("root") {
		root = scanRoot
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	mux := http.NewServeMux()
	api.NewServer(m, root).Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("loaded %d color tokens", len(m.Names()))
	log.Printf("listening on http://%s", displayAddr(addr))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	return nil
}

func runConfigGenerate(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(genPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := config.Save(path, theme.Default()); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	printer.Status("success", "generated default config file: "+path)
	return nil
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}

func main() {
	// A missing .env is fine; the environment may already carry the settings.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
