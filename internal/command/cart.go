package command

import (
	"fmt"
	"strconv"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"

	"github.com/spf13/cobra"
)

// NewCartCmd creates the cart command group.
func NewCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and edit the synced cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newCartShowCmd(),
		newCartAddCmd(),
		newCartQtyCmd(),
		newCartRmCmd(),
		newCartClearCmd(),
		newCartSyncCmd(),
	)
	return cmd
}

func newCartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the server cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			ctx.Cart.Hydrate(cmd.Context())
			for _, l := range ctx.Cart.Items() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tx%d\t%s\t%d\n", l.VariantKey, l.Quantity, l.Name, l.TotalCents())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d items, %d cents\n", ctx.Cart.TotalQuantity(), ctx.Cart.TotalPriceCents())
			return nil
		},
	}
}

func newCartAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <productId>",
		Short: "Add a product line to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			qty, _ := cmd.Flags().GetInt("qty")
			size, _ := cmd.Flags().GetString("size")
			color, _ := cmd.Flags().GetString("color")
			dimFlags, _ := cmd.Flags().GetStringToString("dim")
			name, _ := cmd.Flags().GetString("name")
			price, _ := cmd.Flags().GetInt64("price")

			dims := variant.Normalize(variant.Selection{Size: size, Color: color, Dimensions: dimFlags})
			ctx.Cart.Hydrate(cmd.Context())
			ctx.Cart.Add(domain.CartLine{
				ProductID:      args[0],
				Name:           name,
				UnitPriceCents: price,
				Dimensions:     dims,
			}, qty)
			return nil
		},
	}
	cmd.Flags().Int("qty", 1, "quantity to add")
	cmd.Flags().String("size", "", "size option")
	cmd.Flags().String("color", "", "color option")
	cmd.Flags().StringToString("dim", nil, "extra dimension, name=value")
	cmd.Flags().String("name", "", "display name for the line")
	cmd.Flags().Int64("price", 0, "unit price in cents")
	return cmd
}

func newCartQtyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qty <variantKey> <quantity>",
		Short: "Set a line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			ctx.Cart.Hydrate(cmd.Context())
			ctx.Cart.UpdateQuantity(args[0], qty)
			return nil
		},
	}
}

func newCartRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <variantKey>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			ctx.Cart.Hydrate(cmd.Context())
			ctx.Cart.Remove(args[0])
			return nil
		},
	}
}

func newCartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart locally and on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			return ctx.Cart.Clear(cmd.Context())
		},
	}
}

func newCartSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push any pending cart state immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			ctx.Cart.Hydrate(cmd.Context())
			ctx.Cart.SyncNow()
			return nil
		},
	}
}
