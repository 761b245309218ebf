// Package main provides the CLI entrypoint for hangman.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hangman/internal/asset"
	"github.com/verte-zerg/hangman/internal/config"
	"github.com/verte-zerg/hangman/internal/console"
	"github.com/verte-zerg/hangman/internal/dictionary"
	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/images"
	"github.com/verte-zerg/hangman/internal/logging"
	"github.com/verte-zerg/hangman/internal/tui"
)

const (
	version     = "0.7"
	envFile     = ".env"
	builtinName = "built-in"
)

var (
	imageFile      string
	dictionaryFile string
	promptWord     bool
	plainMode      bool

	checkImageFile      string
	checkDictionaryFile string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "hangman [word]",
		Short:             "Terminal hangman",
		Version:           version,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setupLogging,
		RunE:              runGameCmd,
	}

	rootCmd.Flags().StringVarP(&imageFile, "image-file", "i", "", "image asset path (default: built-in frames unless "+config.DefaultImagePath()+" exists)")
	rootCmd.Flags().StringVarP(&dictionaryFile, "dictionary-file", "d", "", "dictionary path (default: embedded list unless "+config.DefaultDictionaryPath()+" exists)")
	rootCmd.Flags().BoolVarP(&promptWord, "word", "W", false, "prompt for a hidden word to guess instead of using the dictionary")
	rootCmd.Flags().BoolVar(&plainMode, "plain", false, "line mode without the full-screen interface")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

func setupLogging(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	logging.Setup(os.Stderr, os.Getenv(config.EnvLogLevel))
	return nil
}

func runGameCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg = config.ApplyEnv(fileCfg)
	applyStringConfig(cmd, "image-file", &imageFile, fileCfg.Game.ImageFile)
	applyStringConfig(cmd, "dictionary-file", &dictionaryFile, fileCfg.Game.DictionaryFile)
	applyBoolConfig(cmd, "plain", &plainMode, fileCfg.Game.Plain)

	if err := validateArgs(args, promptWord); err != nil {
		return err
	}

	frames, source, err := loadFrames(imageFile)
	if err != nil {
		return err
	}
	log.Debug().Str("source", source).Int("frames", frames.Count()).Msg("loaded images")

	interactive := !plainMode && isTerminal()
	input := console.NewInput(cmd.InOrStdin())

	var session *game.Session
	switch {
	case len(args) == 1:
		session, err = game.NewSession(args[0], frames)
	case promptWord:
		word, ok, perr := readSecretWord(cmd, input, interactive)
		if perr != nil {
			return perr
		}
		if !ok {
			return nil
		}
		session, err = game.NewSession(word, frames)
	default:
		dict, dictSource, derr := loadDictionary(dictionaryFile)
		if derr != nil {
			return derr
		}
		log.Debug().Str("source", dictSource).Int("words", dict.Len()).Msg("loaded dictionary")
		session, err = game.NewDictionarySession(dict, frames)
	}
	if err != nil {
		return fmt.Errorf("failed to start game with %s images: %w", source, err)
	}

	title := console.Title(version)
	if interactive {
		return runTUI(session, title)
	}
	return runPlain(session, input, cmd.OutOrStdout(), title)
}

func validateArgs(args []string, prompt bool) error {
	if len(args) == 0 {
		return nil
	}
	if prompt {
		return fmt.Errorf("--word cannot be combined with a word argument")
	}
	if !dictionary.IsLettersOnly(args[0]) {
		return fmt.Errorf("explicit word argument contained illegal character(s): %q", args[0])
	}
	return nil
}

func runTUI(session *game.Session, title string) error {
	model := tui.NewModel(session, title)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	log.Debug().Stringer("status", model.Status()).Bool("exit", model.ExitConfirmed()).Msg("game finished")
	return nil
}

func runPlain(session *game.Session, input *console.Input, out io.Writer, title string) error {
	status, err := session.Run(input, console.NewRenderer(out, title))
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to run game: %w", err)
	}
	log.Debug().Stringer("status", status).Msg("game finished")
	return nil
}

func readSecretWord(cmd *cobra.Command, input *console.Input, interactive bool) (string, bool, error) {
	if interactive {
		prompt := tui.NewWordPrompt(dictionary.IsLettersOnly)
		if _, err := tea.NewProgram(prompt).Run(); err != nil {
			return "", false, fmt.Errorf("failed to run word prompt: %w", err)
		}
		word, ok := prompt.Word()
		return word, ok, nil
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), "Word: "); err != nil {
		return "", false, fmt.Errorf("failed to write output: %w", err)
	}
	word, err := input.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read word: %w", err)
	}
	if !dictionary.IsLettersOnly(word) {
		return "", false, fmt.Errorf("explicit word contained illegal character(s)")
	}
	return word, true, nil
}

// loadFrames loads the image asset at path. With an empty path the default
// location is tried and a missing file falls back to the built-in frames.
func loadFrames(path string) (game.Frames, string, error) {
	if path != "" {
		set, err := images.Load(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load image file: %w", err)
		}
		return set, path, nil
	}
	defaultPath := config.DefaultImagePath()
	set, err := images.Load(defaultPath)
	if err == nil {
		return set, defaultPath, nil
	}
	if errors.Is(err, asset.ErrNotFound) {
		log.Info().Str("path", defaultPath).Msg("image file not found; using built-in frames")
		return images.Fallback(), builtinName, nil
	}
	return nil, "", fmt.Errorf("failed to load image file: %w", err)
}

// loadDictionary mirrors loadFrames for word lists.
func loadDictionary(path string) (*dictionary.Dictionary, string, error) {
	if path != "" {
		dict, err := dictionary.Load(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load dictionary file: %w", err)
		}
		return dict, path, nil
	}
	defaultPath := config.DefaultDictionaryPath()
	dict, err := dictionary.Load(defaultPath)
	if err == nil {
		return dict, defaultPath, nil
	}
	if errors.Is(err, asset.ErrNotFound) {
		log.Info().Str("path", defaultPath).Msg("dictionary file not found; using embedded word list")
		return dictionary.Default(), builtinName, nil
	}
	return nil, "", fmt.Errorf("failed to load dictionary file: %w", err)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate image and dictionary files",
		Args:  cobra.NoArgs,
		RunE:  runCheckCmd,
	}
	cmd.Flags().StringVarP(&checkImageFile, "image-file", "i", "", "image asset path")
	cmd.Flags().StringVarP(&checkDictionaryFile, "dictionary-file", "d", "", "dictionary path")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg = config.ApplyEnv(fileCfg)
	applyStringConfig(cmd, "image-file", &checkImageFile, fileCfg.Game.ImageFile)
	applyStringConfig(cmd, "dictionary-file", &checkDictionaryFile, fileCfg.Game.DictionaryFile)

	out := cmd.OutOrStdout()
	frames, source, err := loadFrames(checkImageFile)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "images: %s: %d frames\n", source, frames.Count()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := game.NewSession("check", frames); err != nil {
		return fmt.Errorf("images: %s: %w", source, err)
	}

	dict, source, err := loadDictionary(checkDictionaryFile)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "dictionary: %s: %d words\n", source, dict.Len()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file at path unless it exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hangman configuration
# Uncomment a value to enable it. CLI flags and %s / %s override config values.

[game]
# image-file = %q       # Image asset with @0..@N, @@ and @@@ tokens
# dictionary-file = %q  # One word per line; lines with non-letters are skipped
# plain = false          # Line mode without the full-screen interface
`,
		config.EnvImageFile,
		config.EnvDictionaryFile,
		config.DefaultImagePath(),
		config.DefaultDictionaryPath(),
	)
}
