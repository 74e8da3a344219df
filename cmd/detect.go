package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gizmo-platform/gizmoget/internal/platform"
)

var (
	detectPlatformID string
	detectUserAgent  string
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect a client platform from its environment strings",
	Long: `Detect maps a platform identifier string and a user-agent string to the
normalized platform label the download page uses, and reports which page
element would be revealed for it.`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectPlatformID, "platform", "", "platform identifier string (e.g. \"Win32\")")
	detectCmd.Flags().StringVar(&detectUserAgent, "user-agent", "", "full user-agent string")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src := platform.Values{PlatformID: detectPlatformID, Agent: detectUserAgent}
	label := platform.DetectFrom(src)
	element := platform.ChooseElement(label, cfg.Supported)

	fmt.Printf("%s\n", label)
	fmt.Printf("element: %s\n", element)

	return nil
}
