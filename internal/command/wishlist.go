package command

import (
	"fmt"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"

	"github.com/spf13/cobra"
)

// NewWishCmd creates the wish command group.
func NewWishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wish",
		Short: "Inspect and edit the synced wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newWishShowCmd(),
		newWishSaveCmd(),
		newWishRmCmd(),
		newWishClearCmd(),
	)
	return cmd
}

func newWishShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the server wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			ctx.Wishlist.Hydrate(cmd.Context())
			for _, e := range ctx.Wishlist.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", e.Kind, e.ProductID, e.VariantID, e.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d entries\n", ctx.Wishlist.Len())
			return nil
		},
	}
}

func newWishSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <productId>",
		Short: "Save a product, optionally with a variant snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			variantID, _ := cmd.Flags().GetString("variant")
			size, _ := cmd.Flags().GetString("size")
			color, _ := cmd.Flags().GetString("color")
			dimFlags, _ := cmd.Flags().GetStringToString("dim")
			name, _ := cmd.Flags().GetString("name")
			price, _ := cmd.Flags().GetInt64("price")

			ctx.Wishlist.Hydrate(cmd.Context())
			dims := variant.Normalize(variant.Selection{Size: size, Color: color, Dimensions: dimFlags})
			if variantID == "" && len(dims) == 0 && name == "" {
				return ctx.Wishlist.SaveReference(cmd.Context(), args[0])
			}
			return ctx.Wishlist.SaveSnapshot(cmd.Context(), domain.WishlistEntry{
				ProductID:  args[0],
				VariantID:  variantID,
				Dimensions: dims,
				Name:       name,
				PriceCents: price,
			})
		},
	}
	cmd.Flags().String("variant", "", "variant id to snapshot")
	cmd.Flags().String("size", "", "size option")
	cmd.Flags().String("color", "", "color option")
	cmd.Flags().StringToString("dim", nil, "extra dimension, name=value")
	cmd.Flags().String("name", "", "display name to freeze")
	cmd.Flags().Int64("price", 0, "price in cents to freeze")
	return cmd
}

func newWishRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <productId>",
		Short: "Remove saved entries for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			variantID, _ := cmd.Flags().GetString("variant")
			ctx.Wishlist.Hydrate(cmd.Context())
			return ctx.Wishlist.Remove(cmd.Context(), args[0], variantID)
		},
	}
	cmd.Flags().String("variant", "", "remove only this variant's entry")
	return cmd
}

func newWishClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the wishlist locally and on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			return ctx.Wishlist.Clear(cmd.Context())
		},
	}
}
