package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/model"
)

func (c *cli) generateCommand() *cobra.Command {
	var (
		length int
		count  int
		flags  = map[model.Class]*bool{}
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print passwords without opening the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			sel := model.Selection{}
			for class, on := range flags {
				sel[class] = *on
			}
			if !sel.Any() {
				sel = model.AllClasses()
			}

			svc := c.service(cmd.Context())
			for i := 0; i < count; i++ {
				password, err := svc.GeneratePassword(sel, charset.ClampLength(length))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), password)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", charset.DefaultLength,
		fmt.Sprintf("password length, clamped to [%d, %d]", charset.MinLength, charset.MaxLength))
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords to print")
	flags[model.LatinUpperAlphabet] = cmd.Flags().Bool("upper", false, "include uppercase letters")
	flags[model.LatinLowerAlphabet] = cmd.Flags().Bool("lower", false, "include lowercase letters")
	flags[model.ArabicNumerals] = cmd.Flags().Bool("digits", false, "include digits")
	flags[model.PunctuationCharacters] = cmd.Flags().Bool("punct", false, "include punctuation")

	return cmd
}
