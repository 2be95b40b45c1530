package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	bigint "github.com/shabbyrobe/go-bigint"
)

var arithOps = map[string]func(a, b bigint.Int) (bigint.Int, error){
	"+": func(a, b bigint.Int) (bigint.Int, error) { return a.Add(b), nil },
	"-": func(a, b bigint.Int) (bigint.Int, error) { return a.Sub(b), nil },
	"*": func(a, b bigint.Int) (bigint.Int, error) { return a.Mul(b), nil },
	"/": bigint.Int.Quo,
	"%": bigint.Int.Rem,
}

var cmpOps = map[string]func(a, b bigint.Int) bool{
	"<":  bigint.Int.LessThan,
	">":  bigint.Int.GreaterThan,
	"<=": bigint.Int.LessOrEqualTo,
	">=": bigint.Int.GreaterOrEqualTo,
	"==": bigint.Int.Equal,
	"!=": bigint.Int.NotEqual,
}

var Eval = &cobra.Command{
	Use:   "eval <a> <op> <b>",
	Short: "Applies an arithmetic operator or comparison to two integers.",
	Long: "Applies an arithmetic operator or comparison to two integers.\n\n" +
		"Operators: " + strings.Join(opNames(), " ") + "\n" +
		"Division truncates towards zero and the remainder takes the sign of <a>.",
	Example: "bigcalc eval 123456789123456789 '*' 987654321\n" +
		"bigcalc eval -- -50 / 7",
	Args: cobra.ExactArgs(3),
	RunE: commandEval,
}

func opNames() []string {
	names := make([]string, 0, len(arithOps)+len(cmpOps))
	for k := range arithOps {
		names = append(names, k)
	}
	for k := range cmpOps {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func commandEval(cmd *cobra.Command, args []string) error {
	a, err := parseArg("<a>", args[0])
	if err != nil {
		return err
	}
	op := args[1]
	b, err := parseArg("<b>", args[2])
	if err != nil {
		return err
	}

	logger.Debug("eval", zap.Stringer("a", a), zap.String("op", op), zap.Stringer("b", b))

	if fn, ok := cmpOps[op]; ok {
		fmt.Fprintln(cmd.OutOrStdout(), fn(a, b))
		return nil
	}

	fn, ok := arithOps[op]
	if !ok {
		return fmt.Errorf("unknown operator %q, expected one of: %s", op, strings.Join(opNames(), " "))
	}
	result, err := fn(a, b)
	if err != nil {
		return fmt.Errorf("%s %s %s: %w", a, op, b, err)
	}
	printInt(cmd, result)
	return nil
}

func init() {
	Root.AddCommand(Eval)
}
