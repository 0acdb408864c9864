package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"attrkit/internal/demo"
	"attrkit/property"
)

type classDoc struct {
	Class      string         `yaml:"class"`
	Properties []propertyDoc  `yaml:"properties"`
	Operations []operationDoc `yaml:"operations"`
}

type propertyDoc struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type operationDoc struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Property string `yaml:"property"`
}

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "List the properties and operations of the demo Order class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			class := demo.NewOrderClass(property.WithLogger(opts.logger(cmd.ErrOrStderr())))
			return describe(cmd.OutOrStdout(), class, opts.output)
		},
	}
}

func describeClass(c *property.Class) classDoc {
	doc := classDoc{Class: c.Name()}

	for _, p := range c.Properties() {
		doc.Properties = append(doc.Properties, propertyDoc{Name: p.Name(), Description: p.String()})
	}

	for _, op := range c.Operations() {
		doc.Operations = append(doc.Operations, operationDoc{Name: op.Name, Kind: op.Kind.String(), Property: op.Property})
	}

	return doc
}

func describe(w io.Writer, c *property.Class, output string) error {
	doc := describeClass(c)

	if output == outputYAML {
		return writeYAML(w, doc)
	}

	fmt.Fprintf(w, "class %s\n\nproperties:\n", doc.Class)

	for _, p := range doc.Properties {
		fmt.Fprintf(w, "  %s\n", p.Description)
	}

	fmt.Fprintln(w, "\noperations:")

	for _, op := range doc.Operations {
		fmt.Fprintf(w, "  %-16s %-7s %s\n", op.Name, op.Kind, op.Property)
	}

	return nil
}
