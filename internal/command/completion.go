// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/geodiff/geodiff/internal/meta"
)

const bashCompletionScript = `# bash completion for geodiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_geodiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "diff gpkg completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--color -c --compact --format -f --profile --region --summary --table -t"

    case "$cmd" in
        diff)
      local opts="$common --delta --history --offset"
            ;;
        gpkg)
      local opts="$common --report"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--format" || "$prev" == "-f" ]]; then
        COMPREPLY=( $(compgen -W "json geojson summary" -- "$cur") )
        return 0
    fi

  # If current token starts with '-', offer flags
  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Otherwise complete files
  COMPREPLY=( $(compgen -o default -- "$cur") )
  return 0
}

complete -F _geodiff geodiff
`

const zshCompletionScript = `#compdef geodiff

_geodiff() {
  local -a cmds
  cmds=(
    'diff:compare two GeoJSON files'
    'gpkg:compare two GeoPackage files'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '--compact[single-line json output]'
  '(-f --format)'{-f,--format}'[output format]:format:(json geojson summary)'
  '--profile[AWS profile for s3 inputs]:profile'
  '--region[AWS region for s3 inputs]:region'
  '--summary[write a pipeline step summary]'
  '(-t --table)'{-t,--table}'[render summary as a table]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'geodiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    diff)
      _arguments -C \
        $common \
        '--delta[render per-feature deltas]' \
        '--history[compare against the previous commit]' \
        '--offset[commits to go back]:offset' \
        '*:file:_files'
      ;;
    gpkg)
      _arguments -C \
        $common \
        '--report[pre-computed changeset report]:file:_files' \
        '*:file:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:file:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _geodiff geodiff geodiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: geodiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "geodiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: completionCommandAction,
	}
}
