package main

import (
	"github.com/spf13/cobra"

	"github.com/t14raptor/autobind/transform/autobind"
)

var callsiteCmd = &cobra.Command{
	Use:     "callsite [flags] <file|directory>...",
	Aliases: []string{"call-site"},
	Short:   "Rewrite this.x.bind(this) call sites",
	Long: `Replace this.x.bind(this) inside methods with this.x and turn each
bound method x into an arrow-function class field.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRewrite(cmd, args, autobind.ModeCallSite)
	},
}

func init() {
	addRewriteFlags(callsiteCmd)
}
