package main

import (
	"github.com/spf13/cobra"

	"github.com/t14raptor/autobind/transform/autobind"
)

var constructorCmd = &cobra.Command{
	Use:   "constructor [flags] <file|directory>...",
	Short: "Rewrite this.x = this.x.bind(this) in constructors",
	Long: `Remove constructor statements of the form this.x = this.x.bind(this)
and turn each bound method x into an arrow-function class field.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRewrite(cmd, args, autobind.ModeConstructor)
	},
}

func init() {
	addRewriteFlags(constructorCmd)
}
