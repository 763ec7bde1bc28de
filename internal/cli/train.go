package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/happyhackingspace/cbow"
	"github.com/spf13/cobra"
)

func (c *CLI) newTrainCommand() *cobra.Command {
	cfg := cbow.DefaultConfig()
	var (
		query string
		top   int
	)

	cmd := &cobra.Command{
		Use:   "train [corpusfile]",
		Short: "Train CBOW embeddings on a corpus",
		Long: `Train CBOW embeddings on a corpus file (plain text, or HTML reduced to its
visible text) and print the per-epoch training loss. With no argument the
built-in poem is used.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  cbow train
  cbow train corpus.txt --epochs 20 --dim 25
  cbow train page.html --query the --top 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, source, err := loadCorpus(args)
			if err != nil {
				return err
			}
			cfg.Verbose = c.verbose

			slog.Info("Training CBOW model", "source", source,
				"epochs", cfg.Epochs, "dim", cfg.EmbedDim, "context", cfg.ContextSize)
			start := time.Now()
			emb, err := cbow.Train(text, &cfg)
			if err != nil {
				return err
			}
			slog.Debug("Training completed", "duration", time.Since(start))

			for i, loss := range emb.Losses() {
				fmt.Printf("epoch %2d  loss %.4f\n", i+1, loss)
			}

			if query != "" {
				neighbors := emb.Nearest(query, top)
				if neighbors == nil {
					return fmt.Errorf("cbow: %q is not in the vocabulary", query)
				}
				fmt.Printf("\nnearest to %q:\n", query)
				for _, nb := range neighbors {
					fmt.Printf("  %-20s %.4f\n", nb.Word, nb.Similarity)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "Number of training epochs")
	cmd.Flags().IntVar(&cfg.EmbedDim, "dim", cfg.EmbedDim, "Embedding dimension")
	cmd.Flags().IntVar(&cfg.HiddenSize, "hidden", cfg.HiddenSize, "Hidden layer width")
	cmd.Flags().IntVar(&cfg.ContextSize, "context", cfg.ContextSize, "Context window size on each side")
	cmd.Flags().Float64Var(&cfg.LearningRate, "lr", cfg.LearningRate, "Learning rate")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for parameter initialization")
	cmd.Flags().StringVar(&query, "query", "", "Print nearest neighbors of this word after training")
	cmd.Flags().IntVar(&top, "top", 10, "Number of neighbors to print with --query")
	return cmd
}
