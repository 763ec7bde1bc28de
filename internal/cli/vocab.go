package cli

import (
	"fmt"

	"github.com/happyhackingspace/cbow/internal/corpus"
	"github.com/spf13/cobra"
)

func (c *CLI) newVocabCommand() *cobra.Command {
	var contextSize int
	var list bool

	cmd := &cobra.Command{
		Use:   "vocab [corpusfile]",
		Short: "Show corpus token and vocabulary statistics",
		Args:  cobra.MaximumNArgs(1),
		Example: `  cbow vocab corpus.txt
  cbow vocab --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, source, err := loadCorpus(args)
			if err != nil {
				return err
			}

			tokens := corpus.Tokenize(text)
			vocab := corpus.Build(tokens)
			samples := corpus.BuildSamples(vocab.Encode(tokens), contextSize)

			fmt.Printf("source:     %s\n", source)
			fmt.Printf("tokens:     %d\n", len(tokens))
			fmt.Printf("vocabulary: %d\n", vocab.Size())
			fmt.Printf("samples:    %d (context size %d)\n", len(samples), contextSize)
			if list {
				for id := 0; id < vocab.Size(); id++ {
					fmt.Printf("%4d  %s\n", id, vocab.Token(id))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&contextSize, "context", 2, "Context window size on each side")
	cmd.Flags().BoolVar(&list, "list", false, "List every token with its index")
	return cmd
}
