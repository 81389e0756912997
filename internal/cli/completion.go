package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command for generating shell completions.
func newCompletionCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for distrograph.

To load completions:

Bash:
  $ source <(distrograph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ distrograph completion bash > /etc/bash_completion.d/distrograph
  # macOS:
  $ distrograph completion bash > $(brew --prefix)/etc/bash_completion.d/distrograph

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ distrograph completion zsh > "${fpath[1]}/_distrograph"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ distrograph completion fish | source

  # To load completions for each session, execute once:
  $ distrograph completion fish > ~/.config/fish/completions/distrograph.fish

PowerShell:
  PS> distrograph completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> distrograph completion powershell > distrograph.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
