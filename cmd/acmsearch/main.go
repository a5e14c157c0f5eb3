package main

import (
	"fmt"
	"os"

	"github.com/function61/gokit/dynversion"
	"github.com/function61/gokit/ossignal"
	"github.com/spf13/cobra"
)

func main() {
	opts := searchOptions{}

	app := &cobra.Command{
		Use:     os.Args[0] + " [domainSearch]",
		Short:   "Searches AWS ACM for certificates containing a domain substring",
		Version: dynversion.Version,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := search(ossignal.InterruptOrTerminateBackgroundCtx(nil), args[0], opts); err != nil {
				panic(err)
			}
		},
	}

	app.Flags().StringVarP(&opts.region, "region", "", opts.region, "AWS region (defaults to shared config / ENV)")
	app.Flags().BoolVarP(&opts.verbose, "verbose", "v", opts.verbose, "Print the effective region before searching")
	app.Flags().BoolVarP(&opts.asJson, "json", "", opts.asJson, "Machine-readable output")
	app.Flags().BoolVarP(&opts.asTable, "table", "", opts.asTable, "Compact table output")

	if err := app.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
