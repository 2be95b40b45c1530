package command

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shabbyrobe/go-bigint/internal/rpn"
)

var RPN = &cobra.Command{
	Use:   "rpn [expr...]",
	Short: "Evaluates postfix expressions.",
	Long: "Evaluates each argument as a postfix (reverse Polish) expression and prints\n" +
		"the result. With no arguments, each non-blank line of stdin is evaluated.\n\n" +
		"Operators: + - * / % neg abs inc dec dup swap",
	Example: "bigcalc rpn '999999999 1 +' '100 7 %'\n" +
		"echo '2 3 + 4 *' | bigcalc rpn",
	Args: cobra.ArbitraryArgs,
	RunE: commandRPN,
}

func commandRPN(cmd *cobra.Command, args []string) error {
	m := rpn.New(logger.Named("rpn"))

	if len(args) > 0 {
		for _, expr := range args {
			if err := evalRPN(cmd, m, expr); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	var line int
	for scanner.Scan() {
		line++
		expr := scanner.Text()
		if strings.TrimSpace(expr) == "" {
			continue
		}
		if err := evalRPN(cmd, m, expr); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

func evalRPN(cmd *cobra.Command, m *rpn.Machine, expr string) error {
	result, err := m.Eval(expr)
	if err != nil {
		return err
	}
	logger.Info("evaluated", zap.String("expr", expr), zap.Stringer("result", result))
	printInt(cmd, result)
	return nil
}

func init() {
	Root.AddCommand(RPN)
}
