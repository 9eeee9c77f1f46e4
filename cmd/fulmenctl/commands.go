package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/crucible-go/diagnostic"
	"github.com/fulmenhq/crucible-go/identity"
	"github.com/fulmenhq/crucible-go/schema"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [prefix]",
		Short: "List schema catalog entries, optionally filtered by prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			descriptors, err := schema.DefaultRegistry().ListSchemas(prefix)
			if err != nil {
				return err
			}
			for _, d := range descriptors {
				fmt.Fprintln(cmd.OutOrStdout(), d.ID)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var schemaID string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a schema descriptor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := schema.DefaultRegistry().GetSchema(schemaID)
			if err != nil {
				return err
			}
			return printJSON(cmd, d)
		},
	}
	cmd.Flags().StringVar(&schemaID, "schema-id", "", "schema ID to show")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var schemaID string
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a data file against a schema ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := schema.DefaultRegistry().ValidateFileBySchemaID(context.Background(), args[0], schemaID, schema.ValidateOptions{})
			if err != nil {
				return err
			}
			if err := printJSON(cmd, result); err != nil {
				return err
			}
			if !result.Valid {
				return &diagnostic.SchemaValidationError{SchemaID: schemaID, Diagnostics: result.Diagnostics, Source: result.Source}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&schemaID, "schema-id", "", "schema ID to validate against")
	return cmd
}

func newValidateSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-schema <file>",
		Short: "Meta-validate a standalone schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return &diagnostic.SchemaExportError{Reason: diagnostic.ExportReasonWriteFailed, OutPath: args[0], Cause: err}
			}
			result, err := schema.ValidateSchema(content)
			if err != nil {
				return err
			}
			if err := printJSON(cmd, result); err != nil {
				return err
			}
			if !result.Valid {
				return &diagnostic.SchemaValidationError{Diagnostics: result.Diagnostics, Source: result.Source}
			}
			return nil
		},
	}
}

func newNormalizeCmd() *cobra.Command {
	var compact bool
	var outPath string
	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Canonicalize a schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			normalized, err := schema.NormalizeSchema(content, schema.NormalizeOptions{Compact: compact})
			if err != nil {
				return err
			}
			if outPath != "" {
				return os.WriteFile(outPath, normalized, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(normalized)
			return err
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact (non-indented) JSON")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this path instead of stdout")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var showNormalized bool
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two schema documents for canonical equality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			b, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			equal, err := schema.CompareSchemas(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), equal)
			if showNormalized {
				na, _ := schema.NormalizeSchema(a, schema.NormalizeOptions{})
				nb, _ := schema.NormalizeSchema(b, schema.NormalizeOptions{})
				fmt.Fprintln(cmd.OutOrStdout(), "--- a ---")
				cmd.OutOrStdout().Write(na)
				fmt.Fprintln(cmd.OutOrStdout(), "--- b ---")
				cmd.OutOrStdout().Write(nb)
			}
			if !equal {
				return &diagnostic.SchemaValidationError{Source: diagnostic.SourceLibraryEngine, Cause: fmt.Errorf("schemas differ after normalization")}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showNormalized, "show-normalized", false, "print both normalized documents")
	return cmd
}

func newExportCmd() *cobra.Command {
	var schemaID, outPath, format string
	var force, noProvenance, noValidate bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a vendored schema, normalized and provenance-stamped",
		RunE: func(cmd *cobra.Command, _ []string) error {
			normOpts := schema.NormalizeOptions{}
			switch format {
			case "json", "yaml", "auto", "":
				// All three are accepted; the registry always emits JSON
				// today (see DESIGN.md), so "yaml"/"auto" are reserved
				// for a future YAML export path.
			default:
				return &diagnostic.SchemaExportError{Reason: diagnostic.ExportReasonInvalidFormat, OutPath: outPath}
			}
			return schema.DefaultRegistry().ExportSchema(schema.ExportOptions{
				SchemaID:          schemaID,
				OutPath:           outPath,
				IncludeProvenance: !noProvenance,
				Validate:          !noValidate,
				Overwrite:         force,
				Format:            normOpts,
			})
		},
	}
	cmd.Flags().StringVar(&schemaID, "schema-id", "", "schema ID to export")
	cmd.Flags().StringVar(&outPath, "out", "", "output path")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&noProvenance, "no-provenance", false, "omit the provenance stamp")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip meta-validation before export")
	cmd.Flags().StringVar(&format, "format", "auto", "output format: json|yaml|auto")
	return cmd
}

func newIdentityShowCmd() *cobra.Command {
	var path string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "identity-show",
		Short: "Show the resolved app identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := identity.LoadIdentity(identity.LoadOptions{Path: path})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "binary_name: %s\nvendor: %s\nenv_prefix: %s\nconfig_name: %s\ndescription: %s\n",
				id.BinaryName, id.Vendor, id.EnvPrefix, id.ConfigName, id.Description)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "explicit identity file path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of plain text")
	return cmd
}

func newIdentityValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity-validate [file]",
		Short: "Validate an identity file against the identity schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ".fulmen/app.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			return identity.ValidateFile(path)
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
