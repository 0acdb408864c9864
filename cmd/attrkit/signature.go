package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"attrkit/call"
)

var errBadParam = errors.New("parameter must be KIND:NAME")

var paramKinds = map[string]call.Kind{
	"req":     call.Positional,
	"opt":     call.OptionalPositional,
	"rest":    call.RestPositional,
	"keyreq":  call.Keyword,
	"key":     call.OptionalKeyword,
	"keyrest": call.RestKeyword,
}

type signatureDoc struct {
	Signature          string   `yaml:"signature"`
	RequiredPositional int      `yaml:"required_positional"`
	OptionalPositional int      `yaml:"optional_positional"`
	RequiredKeywords   []string `yaml:"required_keywords,omitempty"`
	AcceptsKeywords    bool     `yaml:"accepts_keywords"`
	Adaptable          bool     `yaml:"adaptable"`
}

func newSignatureCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signature KIND:NAME...",
		Short: "Describe a call signature",
		Long: "Describe a call signature. KIND is one of req, opt, rest, keyreq, key, keyrest.\n" +
			"Example: attrkit signature opt:a keyreq:object key:value",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args)
			if err != nil {
				return err
			}

			return signature(cmd.OutOrStdout(), params, opts.output)
		},
	}
}

func parseParams(args []string) ([]call.Param, error) {
	params := make([]call.Param, 0, len(args))

	for _, arg := range args {
		kind, name, ok := strings.Cut(arg, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", errBadParam, arg)
		}

		k, ok := paramKinds[kind]
		if !ok {
			return nil, fmt.Errorf("%w: unknown kind %q in %q", call.ErrUnsupportedParameterKind, kind, arg)
		}

		params = append(params, call.Param{Kind: k, Name: name})
	}

	return params, nil
}

func signature(w io.Writer, params []call.Param, output string) error {
	sig, err := call.Describe(params...)
	if err != nil {
		return err
	}

	doc := signatureDoc{
		Signature:          sig.String(),
		RequiredPositional: sig.RequiredPositionalCount(),
		OptionalPositional: sig.OptionalPositionalCount(),
		RequiredKeywords:   sig.RequiredKeywords(),
		AcceptsKeywords:    sig.AcceptsKeywords(),
		Adaptable:          sig.RequiredPositionalCount() == 0,
	}

	if output == outputYAML {
		return writeYAML(w, doc)
	}

	fmt.Fprintf(w, "signature:           %s\n", doc.Signature)
	fmt.Fprintf(w, "required positional: %d\n", doc.RequiredPositional)
	fmt.Fprintf(w, "optional positional: %d\n", doc.OptionalPositional)
	fmt.Fprintf(w, "required keywords:   %s\n", strings.Join(doc.RequiredKeywords, ", "))
	fmt.Fprintf(w, "accepts keywords:    %t\n", doc.AcceptsKeywords)
	fmt.Fprintf(w, "adaptable:           %t\n", doc.Adaptable)

	return nil
}
