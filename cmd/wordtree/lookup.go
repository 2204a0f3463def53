package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	var withEtymology bool

	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word from the command line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			lookups, closer, err := newLookupService(cfg)
			if err != nil {
				return err
			}
			defer closer()

			response, err := lookups.Handle(cmd.Context(), args[0], withEtymology)
			if err != nil {
				return fmt.Errorf("lookups.Handle > %w", err)
			}

			if response.Dictionary != nil {
				color.Cyan("Definitions")
				if response.Dictionary.Phonetic != "" {
					fmt.Printf("  %s [%s]\n", response.Dictionary.Word, response.Dictionary.Phonetic)
				}
				for _, meaning := range response.Dictionary.Meanings {
					fmt.Printf("  %s\n", meaning.PartOfSpeech)
					for _, definition := range meaning.Definitions {
						fmt.Printf("    - %s\n", definition.Definition)
					}
				}
			}
			if response.Synonyms != nil {
				color.Cyan("Synonyms")
				fmt.Printf("  %s\n", strings.Join(response.Synonyms.Synonyms, ", "))
				if len(response.Synonyms.Antonyms) > 0 {
					color.Cyan("Antonyms")
					fmt.Printf("  %s\n", strings.Join(response.Synonyms.Antonyms, ", "))
				}
			}
			if response.Translations != nil && len(response.Translations.Translations) > 0 {
				color.Cyan("Translations")
				for code, lemmas := range response.Translations.Translations {
					fmt.Printf("  %s: %s\n", code, strings.Join(lemmas, ", "))
				}
			}
			if response.Etymology != nil && response.Etymology.Etymology != "" {
				color.Cyan("Etymology")
				fmt.Printf("  %s\n", response.Etymology.Etymology)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withEtymology, "etymology", false, "Include etymology in the result")
	return cmd
}
