/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(params *dccParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "check DC files, report errors and warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, res, err := load(params, args)
			if res != nil {
				fmt.Fprintf(params.out, "%d error(s), %d warning(s)\n", res.Errors(), res.Warnings())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(params.out, "%d struct(s), %d class(es), hash 0x%08x\n", file.NumStructs(), file.NumClasses(), file.Hash())
			return nil
		},
	}
	cmd.SilenceErrors = true
	return cmd
}

func newHashCmd(params *dccParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [files...]",
		Short: "print the hash of DC files",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _, err := load(params, args)
			if err != nil {
				return err
			}
			fmt.Fprintf(params.out, "0x%08x\n", file.Hash())
			return nil
		},
	}
	cmd.SilenceErrors = true
	return cmd
}

func newValueCmd(params *dccParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value --type <name> <literal> [files...]",
		Short: "compile literal value of DC type and print its bytes in hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _, err := load(params, args[1:])
			if err != nil {
				return err
			}
			b, err := params.loader.CompileOverride(file, params.typeName, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(params.out, hex.EncodeToString(b))
			return nil
		},
	}
	cmd.SilenceErrors = true
	cmd.Flags().StringVarP(&params.typeName, "type", "t", "", "Name of typedef, struct or class")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
