package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for grgen.

grgen is usually installed with "go install", so completions are not set
up by a package manager; load them yourself for the current session:

  $ source <(grgen completion bash)
  $ grgen completion fish | source
  PS> grgen completion powershell | Out-String | Invoke-Expression

or install them permanently:

  $ grgen completion bash > /etc/bash_completion.d/grgen
  $ grgen completion zsh > "${fpath[1]}/_grgen"
  $ grgen completion fish > ~/.config/fish/completions/grgen.fish

Zsh needs compinit enabled (add "autoload -U compinit; compinit" to
~/.zshrc once) and a fresh shell after installing.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
