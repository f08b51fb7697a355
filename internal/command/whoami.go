package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()

			if cred := ctx.Resolver.Credential(); cred != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "user (bearer %s)\n", cred)
				return nil
			}
			if tok := ctx.Resolver.GuestToken(); tok != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "guest (token %s)\n", tok)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "guest (no token yet)")
			return nil
		},
	}
}
