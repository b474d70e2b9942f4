package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// imageExtensions are offered when completing an image argument.
var imageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp"}

// completeImage completes the single image argument of generate and edit.
func completeImage(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return imageExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for boxshuffle.

Bash:
  $ source <(boxshuffle completion bash)

Zsh (with compinit enabled):
  $ boxshuffle completion zsh > "${fpath[1]}/_boxshuffle"

Fish:
  $ boxshuffle completion fish > ~/.config/fish/completions/boxshuffle.fish

PowerShell:
  PS> boxshuffle completion powershell | Out-String | Invoke-Expression

Image arguments complete to files with an image extension.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}

	return cmd
}
