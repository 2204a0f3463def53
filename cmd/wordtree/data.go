package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keigo1110/wordtree/internal/dataprep"
)

func newDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Build the offline lookup tables",
	}
	cmd.AddCommand(newDataWordnetCommand())
	cmd.AddCommand(newDataOMWCommand())
	return cmd
}

func newDataWordnetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wordnet",
		Short: "Build the word-sense table from the Japanese WordNet distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			table, err := dataprep.BuildSenseTable(cfg.Build.WordFile, cfg.Build.DefinitionFile)
			if err != nil {
				return fmt.Errorf("dataprep.BuildSenseTable > %w", err)
			}

			output := filepath.Join(cfg.Build.OutputDirectory, "word_senses.json")
			if err := dataprep.WriteTable(output, table); err != nil {
				return fmt.Errorf("dataprep.WriteTable > %w", err)
			}
			fmt.Printf("Wrote %d words to %s\n", len(table), output)
			return nil
		},
	}
}

func newDataOMWCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "omw",
		Short: "Build the multilingual synset table from Open Multilingual Wordnet lexicons",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			table, err := dataprep.BuildSynsetTable(cfg.Build.OMWDirectory)
			if err != nil {
				return fmt.Errorf("dataprep.BuildSynsetTable > %w", err)
			}

			output := filepath.Join(cfg.Build.OutputDirectory, "multilingual_synsets.json")
			if err := dataprep.WriteTable(output, table); err != nil {
				return fmt.Errorf("dataprep.WriteTable > %w", err)
			}
			fmt.Printf("Wrote %d synsets to %s\n", len(table), output)
			return nil
		},
	}
}
