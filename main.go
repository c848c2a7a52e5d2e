package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/chaos-io/rembg/rembg"
)

type flags struct {
	verbose bool
	lower   string
	upper   string
	maxSize int
	trim    bool
}

func (f *flags) options() (rembg.Options, error) {
	opts := rembg.DefaultOptions()

	lower, err := rembg.ParseColor(f.lower)
	if err != nil {
		return opts, fmt.Errorf("--lower: %w", err)
	}
	upper, err := rembg.ParseColor(f.upper)
	if err != nil {
		return opts, fmt.Errorf("--upper: %w", err)
	}

	opts.Range = rembg.ColorRange{Lower: lower, Upper: upper}
	opts.MaxSize = f.maxSize
	opts.Trim = f.trim
	return opts, nil
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "rembg <input> <output>",
		Short: "Make a near-white background transparent",
		Long: `Pixels whose color falls inside [--lower, --upper] (r,g,b,a, inclusive)
become fully transparent; every other pixel keeps its color and alpha.
The output format follows the output extension: png, jpg, bmp, tif or webp.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return rembg.ErrUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.verbose {
				log.SetLevel(log.DebugLevel)
			}

			opts, err := f.options()
			if err != nil {
				return err
			}
			return rembg.Run(args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVarP(&f.verbose, "verbose", "V", false, "Enable verbose logging")
	cmd.Flags().StringVar(&f.lower, "lower", rembg.FormatColor(rembg.DefaultColorRange.Lower), "Lower bound of the background color (r,g,b[,a])")
	cmd.Flags().StringVar(&f.upper, "upper", rembg.FormatColor(rembg.DefaultColorRange.Upper), "Upper bound of the background color (r,g,b[,a])")
	cmd.Flags().IntVar(&f.maxSize, "max-size", 0, "Downscale so the longest edge is at most this many pixels (0 keeps the size)")
	cmd.Flags().BoolVar(&f.trim, "trim", false, "Crop fully transparent borders from the result")
	return cmd
}

// run 返回进程退出码：0 成功，1 处理失败，2 参数个数不对
func run(args []string, stderr io.Writer) int {
	if args == nil {
		// cobra 遇到 nil 会退回去读 os.Args
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, rembg.ErrUsage):
		_, _ = fmt.Fprintf(stderr, "Usage: %s <input> <output>\n", cmd.Name())
		return 2
	default:
		log.Error(err.Error())
		return 1
	}
}

func main() {
	log.SetHandler(clihandler.Default)
	os.Exit(run(os.Args[1:], os.Stderr))
}
