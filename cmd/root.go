package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanq16/dust/internal/config"
	"github.com/tanq16/dust/internal/output"
	"github.com/tanq16/dust/internal/utils"
	"golang.org/x/term"
)

var (
	configFile string
	timeout    time.Duration
	kaTimeout  time.Duration
	userAgent  string
	proxyURL   string
	debug      bool
)

var DustVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "dust [URL]",
	Short:   "Dust downloads a single file over HTTP into the directory set in config.json",
	Version: DustVersion,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		var raw string
		if len(args) > 0 {
			raw = args[0]
		} else {
			var err error
			raw, err = readURL(cmd.InOrStdin(), cmd.OutOrStdout(), term.IsTerminal(int(os.Stdin.Fd())))
			if err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
		}
		name, err := runDownload(cmd.Context(), raw, newClient())
		if err != nil {
			output.PrintError(err.Error())
			os.Exit(1)
		}
		output.PrintSuccess(fmt.Sprintf("Downloaded %s", name))
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() *utils.DustHTTPClient {
	return utils.NewDustHTTPClient(utils.HTTPClientConfig{
		Timeout:   timeout,
		KATimeout: kaTimeout,
		ProxyURL:  proxyURL,
		UserAgent: userAgent,
	})
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "Path to the JSON config file holding the destination directory")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 0, "Overall request timeout, 0 disables it (eg. 30s, 10m)")
	rootCmd.PersistentFlags().DurationVarP(&kaTimeout, "keep-alive-timeout", "k", 90*time.Second, "Keep-alive timeout for idle connections")
	rootCmd.PersistentFlags().StringVarP(&userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent")
	rootCmd.PersistentFlags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL (e.g., http://proxy.example.com:8080)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newSizeCmd())
}
