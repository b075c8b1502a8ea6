package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"artpiece/internal/app"
	"artpiece/internal/logger"
)

// serviceName tags every log line.
const serviceName = "artpiece"

type rootOptions struct {
	streams app.Streams

	home            string
	configFile      string
	passphrase      string
	passphraseStdin bool
	catalogURL      string
	storage         string
	redisAddr       string
	location        string
	logLevel        string
	logFormat       string
	assumeYes       bool

	wire *app.Wire
}

// Execute runs the CLI against the process's standard streams.
func Execute() error {
	return NewRootCmd(app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}).Execute()
}

// NewRootCmd returns the root command bound to streams.
func NewRootCmd(streams app.Streams) *cobra.Command {
	o := &rootOptions{streams: streams}

	root := &cobra.Command{
		Use:          "artpiece",
		Short:        "Browse art pieces and keep authenticated favorites",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.wire == nil {
				return nil
			}
			return o.wire.Close()
		},
	}
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&o.home, "home", "", "config dir (default ~/.artpiece)")
	pf.StringVar(&o.configFile, "config", "", "config file (default <home>/config.yaml)")
	pf.StringVarP(&o.passphrase, "passphrase", "p", "", "passphrase answering authentication prompts")
	pf.BoolVar(&o.passphraseStdin, "passphrase-stdin", false, "read authentication secrets from stdin lines")
	pf.StringVar(&o.catalogURL, "catalog-url", "", "catalog endpoint (e.g. http://127.0.0.1:8080/data.json)")
	pf.StringVar(&o.storage, "storage", "", "storage backend: file or redis")
	pf.StringVar(&o.redisAddr, "redis-addr", "", "redis address for --storage=redis")
	pf.StringVar(&o.location, "static-location", "", "fixed \"lat,lon\" instead of IP geolocation")
	pf.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&o.logFormat, "log-format", "", "text or json")
	pf.BoolVarP(&o.assumeYes, "yes", "y", false, "answer yes to permission questions")

	root.AddCommand(
		listCmd(o),
		favoriteCmd(o),
		favoritesCmd(o),
		viewCmd(o),
		locationCmd(o),
		enrollCmd(o),
		unenrollCmd(o),
		fingerprintCmd(o),
	)
	return root
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := app.Load(o.home, o.configFile)
	if err != nil {
		return err
	}
	o.applyFlags(cmd, &cfg)

	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return err
	}

	log := logger.NewWithWriter(serviceName, cfg.LogLevel, cfg.LogFormat, o.streams.Err)
	w, err := app.NewWire(cfg, o.streams, log)
	if err != nil {
		return err
	}
	o.wire = w

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.NewContext(ctx, log.With("command", cmd.Name())))
	return nil
}

// applyFlags overrides cfg with flags the user set explicitly.
func (o *rootOptions) applyFlags(cmd *cobra.Command, cfg *app.Config) {
	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("catalog-url", &cfg.CatalogURL, o.catalogURL)
	set("storage", &cfg.Storage, o.storage)
	set("redis-addr", &cfg.RedisAddr, o.redisAddr)
	set("static-location", &cfg.StaticLocation, o.location)
	set("log-level", &cfg.LogLevel, o.logLevel)
	set("log-format", &cfg.LogFormat, o.logFormat)
	set("passphrase", &cfg.Passphrase, o.passphrase)
	cfg.PassphraseStdin = o.passphraseStdin
	cfg.AssumeYes = o.assumeYes
}
