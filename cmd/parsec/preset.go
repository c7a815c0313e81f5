package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "preset <c|ts>",
		Short:         "Print a built-in LanguageDef's reserved words and operators",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := resolveLanguageDef("", args[0])
			if err != nil {
				return err
			}
			names := append([]string(nil), def.ReservedNames...)
			ops := append([]string(nil), def.ReservedOpNames...)
			sort.Strings(names)
			sort.Strings(ops)
			fmt.Printf("reserved names:  %s\n", strings.Join(names, ", "))
			fmt.Printf("reserved ops:    %s\n", strings.Join(ops, ", "))
			fmt.Printf("nested comments: %v\n", def.NestedComments)
			return nil
		},
	}
	return cmd
}
