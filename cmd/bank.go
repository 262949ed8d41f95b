package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/preset"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and check question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets and the banks they draw from",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s  %-10s  %9s  %7s  %s\n", "Preset", "Bank", "Questions", "Pool", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, name := range preset.Names() {
			p := preset.MustGet(name)
			b, err := p.LoadBank()
			if err != nil {
				return fmt.Errorf("preset %s: %w", name, err)
			}
			fmt.Fprintf(out, "%-10s  %-10s  %9d  %7d  %s\n",
				p.Name, b.Name(), p.Plan().Total(), len(b.Items()), p.Title)
		}
		return nil
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show <preset>",
	Short: "Show the sampling plan next to the bank population",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := preset.Get(args[0])
		if err != nil {
			return err
		}
		b, err := p.LoadBank()
		if err != nil {
			return err
		}

		have := make(map[bank.Stratum]int)
		for _, s := range b.Composition() {
			have[bank.Stratum{Category: s.Category, Difficulty: s.Difficulty}] = s.Count
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s bank)\n\n", p.Title, b.Name())
		fmt.Fprintf(out, "%-22s  %-12s  %4s  %4s\n", "Category", "Difficulty", "Want", "Pool")
		fmt.Fprintln(out, strings.Repeat("─", 48))
		for _, s := range p.Plan().Strata {
			pool := have[bank.Stratum{Category: s.Category, Difficulty: s.Difficulty}]
			mark := ""
			if pool < s.Count {
				mark = "  short"
			}
			fmt.Fprintf(out, "%-22s  %-12s  %4d  %4d%s\n",
				p.CategoryLabel(s.Category), s.Difficulty, s.Count, pool, mark)
		}
		fmt.Fprintf(out, "\n%d writing prompts\n", len(b.Prompts()))
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file.yaml...]",
	Short: "Validate bank files, or every embedded bank and preset plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) > 0 {
			failed := 0
			for _, path := range args {
				b, err := bank.LoadFile(path)
				if err != nil {
					fmt.Fprintf(out, "FAIL  %s\n  %v\n", path, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "ok    %s (%d questions, %d prompts)\n", path, len(b.Items()), len(b.Prompts()))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d banks failed validation", failed, len(args))
			}
			return nil
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		for _, name := range preset.Names() {
			p := preset.MustGet(name)
			b, err := p.LoadBank()
			if err != nil {
				return fmt.Errorf("preset %s: %w", name, err)
			}
			if err := b.Validate(); err != nil {
				return err
			}
			test, err := b.Sample(rand.New(rand.NewPCG(seed, seed)), p.Plan())
			if err != nil {
				return fmt.Errorf("preset %s: %w", name, err)
			}
			fmt.Fprintf(out, "ok    %s: drew %d questions, %d prompts\n", name, len(test.Items), len(test.Prompts))
			for _, d := range test.Deficits {
				fmt.Fprintf(out, "      padded %s/%s: want %d, pool %d, from %v\n",
					d.Category, d.Difficulty, d.Want, d.Have, d.PaddedFrom)
			}
		}
		return nil
	},
}

func init() {
	bankValidateCmd.Flags().Uint64("seed", 1, "Seed for the trial draw")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankShowCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
