package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/bst"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/viz"
)

func newBSTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bst op:value [op:value ...]",
		Short: "run binary search tree operations, e.g. insert:50 search:30",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runBST,
	}
	cmd.Flags().StringVar(&bstURL, "url", "", "bst service base url, e.g. http://localhost"+config.DefaultAddr+" (empty runs in process)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print steps instead of opening the player")
	addPlayerFlags(cmd)
	return cmd
}

type bstCall struct {
	op    bst.Operation
	value int
}

func parseBSTCall(arg string) (bstCall, error) {
	name, val, ok := strings.Cut(arg, ":")
	if !ok {
		return bstCall{}, fmt.Errorf("invalid operation %q: expected op:value", arg)
	}
	op, err := bst.ParseOperation(strings.ToLower(name))
	if err != nil {
		return bstCall{}, err
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return bstCall{}, fmt.Errorf("invalid value %q: %w", val, err)
	}
	return bstCall{op: op, value: v}, nil
}

// runBST applies the operations in order against one carried tree. A
// rejected operation is reported and leaves the tree unchanged.
func runBST(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	calls := make([]bstCall, 0, len(args))
	for _, a := range args {
		c, err := parseBSTCall(a)
		if err != nil {
			return err
		}
		calls = append(calls, c)
	}

	var ops bst.Operator = bst.NewLocal(cfg.BST.MinValue, cfg.BST.MaxValue)
	if cfg.BST.URL != "" {
		ops = bst.NewClient(cfg.BST.URL, cfg.BST.Timeout, logger)
	}

	out := cmd.OutOrStdout()
	var all step.Sequence
	for _, c := range calls {
		seq, err := ops.Do(cmd.Context(), c.op, c.value)
		if err != nil {
			var remote *bst.RemoteOperationError
			if !errors.As(err, &remote) && cfg.BST.URL != "" {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d: %v\n", c.op, c.value, err)
			continue
		}
		if plain {
			fmt.Fprintf(out, "== %s %d\n", c.op, c.value)
			writeSteps(out, seq, step.ModeTree)
		}
		all = append(all, seq...)
	}

	if plain {
		fmt.Fprintf(out, "\ntree (in order): %v  height: %d\n", ops.Tree().InOrder(), ops.Tree().Height())
		return nil
	}
	return viz.Run(all, playerOptions(cfg, "binary search tree", ""))
}
