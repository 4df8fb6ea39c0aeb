package page

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/signup/pkg/signup"
)

// copyToClipboard copies text to the system clipboard.
// Uses pbcopy on macOS, xclip or xsel on Linux, clip.exe on Windows.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard tool found (install xclip or xsel)")
		}
	case "windows":
		cmd = exec.Command("clip.exe")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

func copyFormCmd(data signup.FormState) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{Err: copyToClipboard(formatFormAsMarkdown(data))}
	}
}

// formatFormAsMarkdown formats a submitted application as markdown.
func formatFormAsMarkdown(data signup.FormState) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Application: %s\n", data.Name))
	for _, f := range signup.Fields {
		v := data.Get(f)
		if v == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("**%s:** %s\n", signup.Labels[f], v))
	}
	return sb.String()
}
