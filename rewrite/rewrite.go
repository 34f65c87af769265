package rewrite

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/runelabs/realias/internal"
	tt "github.com/runelabs/realias/internal/types"
	"github.com/runelabs/realias/scanner"
)

// SourceExtension is the file extension the batch runner operates on.
const SourceExtension = ".rs"

// skipSegments are directory names excluded from discovery regardless of
// configuration: build output and test trees.
var skipSegments = []string{"target", "tests"}

type RewriteEngine interface {
	RewriteFile(path string) tt.FileResult
	RewriteSource(src string) (string, []tt.Change, []string)
	IgnorePath(path string)
	IgnoredPaths() []string
}

// New builds an engine from the given configuration file. An empty path
// selects the built-in rule table and ignore list; a non-empty path must
// name a readable, valid configuration.
func New(configurationPath string, dryRun bool) (*internal.Engine, error) {
	config, err := loadConfig(configurationPath)
	if err != nil {
		return nil, err
	}

	rules, err := internal.CompileRules(config.Rules)
	if err != nil {
		return nil, err
	}

	engine := internal.NewEngine(rules, dryRun)
	for _, path := range config.Ignore {
		engine.IgnorePath(path)
	}
	return engine, nil
}

// ProcessRoot discovers every eligible file under root and rewrites them
// one at a time in path order. A failure inside one file is recorded on
// its result and never stops the batch; only a bad root or a cancelled
// context abort the run.
func ProcessRoot(ctx context.Context, logger *zap.Logger, engine RewriteEngine, root string) ([]tt.FileResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	files, err := scanner.New(root, SourceExtension).
		SkipSegments(skipSegments...).
		IgnorePaths(engine.IgnoredPaths()...).
		Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", root, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(root),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	results := make([]tt.FileResult, 0, len(files))
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result := engine.RewriteFile(file.Path)
		if result.Err != "" && logger != nil {
			logger.Error("error processing file",
				zap.String("file", file.Path), zap.String("error", result.Err))
		}
		results = append(results, result)
		bar.Add(1)
	}

	return results, nil
}

// Config represents the overall configuration: a name, the rewrite rules
// in application order, and path substrings to ignore.
type Config struct {
	Name   string          `yaml:"name"`
	Rules  []tt.RuleConfig `yaml:"rules"`
	Ignore []string        `yaml:"ignore,omitempty"`
}

// DefaultConfig mirrors the built-in rule table, mainly so `realias init`
// can write it out as a starting point.
func DefaultConfig() Config {
	rules := internal.DefaultRules()
	configs := make([]tt.RuleConfig, 0, len(rules))
	for _, rule := range rules {
		configs = append(configs, tt.RuleConfig{
			Description: rule.Description,
			Pattern:     rule.Pattern.String(),
			Replacement: rule.Replacement,
			Import:      rule.Import,
		})
	}
	return Config{
		Name:  "realias",
		Rules: configs,
		Ignore: []string{
			"src/utils/aliases/definition.rs",
			"src/lib.rs",
		},
	}
}

func loadConfig(configurationPath string) (Config, error) {
	if configurationPath == "" {
		return DefaultConfig(), nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var config Config
	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
