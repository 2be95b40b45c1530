package command

import (
	"github.com/spf13/cobra"
)

var Fmt = &cobra.Command{
	Use:     "fmt <n>",
	Short:   "Prints an integer in canonical form using the root formatting flags.",
	Example: "bigcalc --width 12 --zero fmt -- -0042",
	Args:    cobra.ExactArgs(1),
	RunE:    commandFmt,
}

func commandFmt(cmd *cobra.Command, args []string) error {
	n, err := parseArg("<n>", args[0])
	if err != nil {
		return err
	}
	printInt(cmd, n)
	return nil
}

func init() {
	Root.AddCommand(Fmt)
}
