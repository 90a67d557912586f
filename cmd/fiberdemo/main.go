// Command fiberdemo drives a couple of generators end-to-end, giving the
// OS-mapped stack allocator and the debug hook a real entry point outside
// of tests.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corostack/fiber"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var stackSize int
	var verbose bool

	root := &cobra.Command{
		Use:   "fiberdemo",
		Short: "Exercise the fiber stackful-coroutine library",
	}
	root.PersistentFlags().IntVar(&stackSize, "stack-size", 0, "OS stack size in bytes (0 = minimum)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(newIncrementCommand(&stackSize))
	root.AddCommand(newCountCommand(&stackSize))
	return root
}

func newIncrementCommand(stackSize *int) *cobra.Command {
	var start, steps int

	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Run the increment generator a fixed number of times",
		RunE: func(*cobra.Command, []string) error {
			stack, err := fiber.NewOSStack(*stackSize)
			if err != nil {
				return err
			}
			gen, err := fiber.New(stack, func(y *fiber.Yielder[int, int], x0 int) {
				x := x0
				for x != 0 {
					x = y.Suspend(x + 1)
				}
			})
			if err != nil {
				return err
			}

			x := start
			for i := 0; i < steps; i++ {
				v, ok := gen.Resume(x)
				if !ok {
					break
				}
				fmt.Println(v)
				x = v
			}
			gen.Resume(0)

			out := gen.Unwrap()
			return out.(fiber.OSStack).Close()
		},
	}
	cmd.Flags().IntVar(&start, "start", 2, "first value sent to the generator")
	cmd.Flags().IntVar(&steps, "steps", 3, "number of times to resume before stopping it")
	return cmd
}

func newCountCommand(stackSize *int) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the first n natural numbers from the iterator adapter",
		RunE: func(*cobra.Command, []string) error {
			stack, err := fiber.NewOSStack(*stackSize)
			if err != nil {
				return err
			}
			it, err := fiber.NewIterator(stack, func(y *fiber.Yielder[struct{}, int]) {
				for i := 1; ; i++ {
					y.Suspend(i)
				}
			})
			if err != nil {
				return err
			}

			for i := 0; i < n; i++ {
				v, ok := it.Next()
				if !ok {
					break
				}
				fmt.Println(v)
			}

			out := it.Close()
			return out.(fiber.OSStack).Close()
		},
	}
	cmd.Flags().IntVar(&n, "n", 5, "how many values to print")
	return cmd
}
