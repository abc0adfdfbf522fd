// Command kvctl inspects and maintains the key/value store behind profilehub.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mypage/profilehub/internal/config"
	"mypage/profilehub/internal/keyedstore"
	"mypage/profilehub/internal/repository"
)

func main() {
	root, a := newRootCmd()
	if err := a.execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}

type app struct {
	configPath string
	store      *keyedstore.Store
	closeKV    func() error
	logger     *zap.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:          "kvctl",
		Short:        "Inspect and maintain the profilehub key/value store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yaml", "path to config file")

	root.AddCommand(a.keysCmd(), a.getCmd(), a.setCmd(), a.sweepCmd())
	return root, a
}

// execute runs root and releases the store whether or not the command failed.
func (a *app) execute(ctx context.Context, root *cobra.Command) (err error) {
	defer func() {
		if cerr := a.close(); err == nil {
			err = cerr
		}
	}()
	return root.ExecuteContext(ctx)
}

func (a *app) open(ctx context.Context) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	kv, closeKV, err := repository.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}
	a.logger = logger
	a.closeKV = closeKV
	a.store = keyedstore.New(kv, logger.Named("keyedstore"))
	return nil
}

func (a *app) close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.closeKV == nil {
		return nil
	}
	closeKV := a.closeKV
	a.closeKV = nil
	return closeKV()
}

func (a *app) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every stored key, marking the ones eviction protects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := a.store.Keys(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, key := range keys {
				mark := " "
				if keyedstore.Whitelisted(key) {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\n", mark, key)
			}
			return nil
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the stored JSON of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, ok, err := a.store.Raw(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("key %q not found", args[0])
			}
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				// show corrupt entries verbatim
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <json>",
		Short: "Overwrite a key with a JSON value, evicting foreign keys if the store is full",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v json.RawMessage
			if err := json.Unmarshal([]byte(args[1]), &v); err != nil {
				return fmt.Errorf("value is not valid JSON: %w", err)
			}
			return a.store.Save(cmd.Context(), args[0], v)
		},
	}
}

func (a *app) sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove every key outside the page namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed, err := a.store.Sweep(cmd.Context())
			for _, key := range removed {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", key)
			}
			return err
		},
	}
}
