// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	colorFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Value:   false,
	}

	compactFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:  "compact",
		Usage: "emit single-line json output",
		Value: false,
	}

	deltaFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:  "delta",
		Usage: "render a field-level delta for each modified feature",
		Value: false,
	}

	stepSummaryFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:  "summary",
		Usage: "write a step summary when running in a pipeline",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("INPUT_SUMMARY"),
		),
		Value: false,
	}

	tableFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "table",
		Aliases: []string{"t"},
		Usage:   "render the summary counters as a terminal table",
		Value:   false,
	}
)

// NewFormatFlag constructs the --format flag, optionally namespaced to a
// command and config file. params[1] is the config file.
func NewFormatFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("GEODIFF_FORMAT"),
			cli.EnvVar("INPUT_OUTPUT_FORMAT"),
		),
		Value: "json",
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator)
		},
	}

	// Only chain config file sources when a config file was actually found.
	if len(params) == 2 && params[1] != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewProfileFlag constructs the --profile flag used when fetching s3:// inputs.
func NewProfileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS profile for s3:// inputs. Overrides the environment",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("GEODIFF_AWS_PROFILE"),
		),
	}
}

// NewRegionFlag constructs the --region flag used when fetching s3:// inputs.
func NewRegionFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region for s3:// inputs. Overrides the environment",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("GEODIFF_AWS_REGION"),
		),
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
