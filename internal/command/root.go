package command

import (
	"os"

	"github.com/spf13/cobra"
)

const AppName = "shopctl"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "shopctl - storefront cart and wishlist sync client",
		Long:          "shopctl drives the cart and wishlist sync engine against a persistence API from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().String("as-user", "", "authenticate with a bearer credential instead of the guest token")

	cmd.AddCommand(
		NewCartCmd(),
		NewWishCmd(),
		NewWhoamiCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(Version).Execute()
}
