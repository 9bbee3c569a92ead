// Command symkernel is a one-shot CLI over the symkernel package,
// grounded on the subcommand layout the pack's CLI repos build with
// spf13/cobra rather than the teacher's bare flag.Parse (cmd/repl's
// main.go) — one operation per expression, scriptable from a shell.
package main

import (
	"fmt"
	"os"

	"github.com/client9/symkernel"
	"github.com/client9/symkernel/solve"
	"github.com/spf13/cobra"
)

var dialectFlag string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "symkernel",
		Short: "Symbolic mathematics kernel CLI",
	}
	root.PersistentFlags().StringVar(&dialectFlag, "format", "simple", "output dialect: simple|latex|wolfram")
	root.AddCommand(
		simplifyCmd(),
		expandCmd(),
		factorCmd(),
		derivativeCmd(),
		integrateCmd(),
		solveCmd(),
		formatCmd(),
	)
	return root
}

func parseArg(s string) (symkernel.Handle, error) {
	return symkernel.Parse(s)
}

func render(h symkernel.Handle) string {
	switch dialectFlag {
	case "latex":
		return symkernel.FormatLaTeX(h)
	case "wolfram":
		return symkernel.FormatWolfram(h)
	default:
		return symkernel.FormatSimple(h)
	}
}

func simplifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <expr>",
		Short: "Simplify an expression to canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseArg(args[0])
			if err != nil {
				return err
			}
			fmt.Println(render(symkernel.Simplify(h)))
			return nil
		},
	}
}

func expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <expr>",
		Short: "Distribute products over sums and expand integer powers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseArg(args[0])
			if err != nil {
				return err
			}
			fmt.Println(render(symkernel.Expand(h)))
			return nil
		},
	}
}

func factorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factor <expr>",
		Short: "Factor a single-variable polynomial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseArg(args[0])
			if err != nil {
				return err
			}
			factors, err := symkernel.Factor(h)
			if err != nil {
				return err
			}
			for _, f := range factors {
				fmt.Println(render(f))
			}
			return nil
		},
	}
}

func derivativeCmd() *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "derivative <expr> <var>",
		Short: "Differentiate an expression with respect to var",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseArg(args[0])
			if err != nil {
				return err
			}
			fmt.Println(render(symkernel.NthDerivative(h, args[1], order)))
			return nil
		},
	}
	cmd.Flags().IntVar(&order, "order", 1, "derivative order")
	return cmd
}

func integrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "integrate <expr> <var>",
		Short: "Integrate an expression with respect to var",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseArg(args[0])
			if err != nil {
				return err
			}
			r, err := symkernel.Integrate(h, args[1])
			if err != nil {
				return err
			}
			fmt.Println(render(r))
			return nil
		},
	}
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <equation> <var>",
		Short: "Solve an equation for var",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseArg(args[0])
			if err != nil {
				return err
			}
			result, err := symkernel.Solve(h, args[1])
			if err != nil {
				return err
			}
			return printSolveResult(result)
		},
	}
}

func printSolveResult(result symkernel.SolveResult) error {
	switch result.Kind {
	case solve.KindNoSolution:
		fmt.Println("no solution:", result.Diagnostic)
	case solve.KindInfinite:
		fmt.Println("infinitely many solutions")
	default:
		for _, s := range result.Solutions {
			fmt.Println(render(s))
		}
	}
	return nil
}

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <expr>",
		Short: "Parse and re-render an expression without simplifying",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseArg(args[0])
			if err != nil {
				return err
			}
			fmt.Println(render(h))
			return nil
		},
	}
}
