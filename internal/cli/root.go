package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rohmanhakim/safeurl/internal/config"
	"github.com/rohmanhakim/safeurl/pkg/safeurl"
	"github.com/rohmanhakim/safeurl/pkg/urlkey"
)

var (
	cfgFile         string
	encodingLabel   string
	baseURL         string
	canonicalize    string
	excludeFragment bool
	showIssues      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "safeurl",
	Short: "Parse and sanitize URLs the way a browser does.",
	Long: `safeurl turns user-supplied URL strings into canonical, legal URLs
following the WHATWG URL standard, including IDNA domain-to-ASCII
conversion and percent-encoding that never double-encodes.

URLs are read from the command arguments, or from standard input when
no arguments are given, one URL per line.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path (e.g., /home/myuser/config.json)")
	rootCmd.PersistentFlags().StringVar(&encodingLabel, "encoding", "utf-8", "encoding label for special-scheme queries")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base", "", "base URL to resolve relative inputs against")
	rootCmd.PersistentFlags().StringVar(&canonicalize, "canonicalize", config.SerializePreserve, "serialization mode: standard, canonical or preserve")
	rootCmd.PersistentFlags().BoolVar(&excludeFragment, "exclude-fragment", false, "drop fragments from the output")
	rootCmd.PersistentFlags().BoolVar(&showIssues, "show-issues", false, "report non-fatal validation issues on stderr")

	rootCmd.AddCommand(sanitizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(keyCmd)
}

// InitConfig builds the run configuration from the config file when
// one is given, otherwise from defaults overridden by flags.
func InitConfig() (config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("error initializing config from file: %w", err)
		}
		return cfg, nil
	}

	cfg := config.WithDefault()
	if encodingLabel != "" {
		cfg = cfg.WithEncoding(encodingLabel)
	}
	if baseURL != "" {
		cfg = cfg.WithBaseURL(baseURL)
	}
	var err error
	cfg, err = cfg.WithCanonicalize(canonicalize)
	if err != nil {
		return cfg, err
	}
	cfg = cfg.WithExcludeFragment(excludeFragment)
	return cfg, nil
}

// inputURLs yields the positional arguments, or stdin lines when
// there are none.
func inputURLs(args []string, each func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := each(arg); err != nil {
				return err
			}
		}
		return nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := each(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func serializeOptions(cfg config.Config) *safeurl.SerializeOptions {
	opts := &safeurl.SerializeOptions{ExcludeFragment: cfg.ExcludeFragment()}
	switch cfg.Canonicalize() {
	case config.SerializeCanonical:
		v := true
		opts.Canonicalize = &v
	case config.SerializePreserve:
		v := false
		opts.Canonicalize = &v
	}
	return opts
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [urls...]",
	Short: "Print the sanitized form of each URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := InitConfig()
		if err != nil {
			return err
		}
		return inputURLs(args, func(raw string) error {
			sink := &safeurl.RecordingSink{}
			u, err := safeurl.Parse(raw, sanitizeParseOptions(cfg, sink))
			if err != nil {
				return fmt.Errorf("%s: %w", raw, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.Serialize(serializeOptions(cfg)))
			reportIssues(cmd, raw, sink)
			return nil
		})
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [urls...]",
	Short: "Print the parsed record of each URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := InitConfig()
		if err != nil {
			return err
		}
		return inputURLs(args, func(raw string) error {
			sink := &safeurl.RecordingSink{}
			u, err := safeurl.Parse(raw, &safeurl.ParseOptions{
				BaseURL:  cfg.BaseURL(),
				Encoding: cfg.Encoding(),
				Sink:     sink,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", raw, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scheme: %s\n", u.Scheme())
			fmt.Fprintf(out, "Special: %t\n", u.IsSpecial())
			fmt.Fprintf(out, "Username: %s\n", u.Username())
			fmt.Fprintf(out, "Password: %s\n", u.Password())
			fmt.Fprintf(out, "Host: %s\n", u.Host())
			if port, ok := u.Port(); ok {
				fmt.Fprintf(out, "Port: %d\n", port)
			}
			if opaque, ok := u.OpaquePath(); ok {
				fmt.Fprintf(out, "Opaque path: %s\n", opaque)
			} else {
				fmt.Fprintf(out, "Path segments: %q\n", u.PathSegments())
			}
			if query, ok := u.Query(); ok {
				fmt.Fprintf(out, "Query: %s\n", query)
			}
			if fragment, ok := u.Fragment(); ok {
				fmt.Fprintf(out, "Fragment: %s\n", fragment)
			}
			fmt.Fprintf(out, "Serialized: %s\n", u.Serialize(serializeOptions(cfg)))
			reportIssues(cmd, raw, sink)
			return nil
		})
	},
}

var keyCmd = &cobra.Command{
	Use:   "key [urls...]",
	Short: "Print the canonical fingerprint of each URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		return inputURLs(args, func(raw string) error {
			key, err := urlkey.Key(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", raw, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", key, raw)
			return nil
		})
	},
}

func sanitizeParseOptions(cfg config.Config, sink safeurl.ValidationSink) *safeurl.ParseOptions {
	opts := safeurl.SafestParseOptions(cfg.Encoding())
	opts.BaseURL = cfg.BaseURL()
	opts.Sink = sink
	return opts
}

func reportIssues(cmd *cobra.Command, raw string, sink *safeurl.RecordingSink) {
	if !showIssues {
		return
	}
	for _, issue := range sink.Issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "issue: %s: [%s] %s %s\n", raw, issue.State, issue.Cause, issue.Detail)
	}
}
