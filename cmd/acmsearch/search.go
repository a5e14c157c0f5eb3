package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/function61/acmsearch/pkg/certsearch"
	"github.com/function61/gokit/logex"
)

type searchOptions struct {
	region  string
	verbose bool
	asJson  bool
	asTable bool
}

func search(ctx context.Context, domainSearch string, opts searchOptions) error {
	if opts.verbose {
		region := opts.region
		if region == "" {
			region = "default"
		}

		fmt.Printf("Searching in region: %s\n", region)
	}

	client, err := certsearch.NewClient(opts.region)
	if err != nil {
		return err
	}

	// progress chatter would corrupt machine-readable output
	if !opts.asJson {
		fmt.Printf("Searching for certificates containing: '%s'\n", domainSearch)
		fmt.Println(strings.Repeat("-", 60))
	}

	certs, err := certsearch.Search(
		ctx,
		client,
		domainSearch,
		logex.Prefix("search", logex.StandardLogger()))
	if err != nil {
		return err
	}

	if opts.asJson {
		return certsearch.DisplayJson(os.Stdout, certs)
	}

	if opts.asTable {
		certsearch.RenderTable(os.Stdout, certs)
	} else {
		certsearch.Display(os.Stdout, certs, domainSearch)
	}

	if len(certs) > 0 {
		fmt.Printf("\nSearch completed. Found %d matching certificate(s).\n", len(certs))
	} else {
		fmt.Printf("\nSearch completed. No certificates found containing '%s'.\n", domainSearch)
	}

	return nil
}
