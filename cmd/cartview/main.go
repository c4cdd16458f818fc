package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/cartview"
	"github.com/nikolayk812/cartview/internal/client"
	"github.com/nikolayk812/cartview/internal/config"
	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// printNavigator stands in for a router: it reports where the page would go.
type printNavigator struct {
	out io.Writer
}

func (n printNavigator) Navigate(route string) {
	fmt.Fprintf(n.out, "-> %s\n", route)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		backendURL string
		ownerID    string
		view       *cartview.View
	)

	root := &cobra.Command{
		Use:           "cartview",
		Short:         "Terminal shopping cart backed by the cart API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			if !cmd.Flags().Changed("backend-url") {
				backendURL = cfg.Client.BackendURL
			}
			if !cmd.Flags().Changed("owner") {
				ownerID = cfg.Client.OwnerID
			}

			backend, err := client.New(backendURL,
				client.WithTimeout(cfg.Client.Timeout),
				client.WithOwnerID(ownerID))
			if err != nil {
				return err
			}

			view = cartview.New(backend, printNavigator{out: stdout}, logger)

			// a failed load is logged by the view and leaves the page empty
			_ = view.Load(cmd.Context())

			return nil
		},
	}

	root.PersistentFlags().StringVar(&backendURL, "backend-url", "", "cart API base URL (default from CART_BACKEND_URL)")
	root.PersistentFlags().StringVar(&ownerID, "owner", "", "cart owner sent as X-Owner-ID (default from CART_OWNER_ID)")

	render := func() error {
		return view.Render(stdout)
	}

	// action failures are logged by the view; the page is shown either way
	itemCmd := func(use, short string, apply func(ctx context.Context, id uuid.UUID) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " ITEM_ID",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("item id[%s] is not valid: %w", args[0], err)
				}

				_ = apply(cmd.Context(), id)

				return render()
			},
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the cart",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return render()
			},
		},
		itemCmd("inc", "Increase an item's quantity by one", func(ctx context.Context, id uuid.UUID) error {
			return view.AdjustQuantity(ctx, id, domain.Increment)
		}),
		itemCmd("dec", "Decrease an item's quantity by one, not below one", func(ctx context.Context, id uuid.UUID) error {
			return view.AdjustQuantity(ctx, id, domain.Decrement)
		}),
		itemCmd("rm", "Remove an item from the cart", func(ctx context.Context, id uuid.UUID) error {
			return view.Remove(ctx, id)
		}),
		&cobra.Command{
			Use:   "checkout",
			Short: "Check out the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := view.Checkout(cmd.Context()); err != nil {
					return render()
				}
				return nil
			},
		},
	)

	return root
}
