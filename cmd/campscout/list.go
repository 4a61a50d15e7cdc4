package main

import (
	"fmt"

	"github.com/fwojciec/campscout"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := campscout.CampsiteFilter{}
	if c.Country != "" {
		filter.Country = &c.Country
	}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	campsites, err := deps.Campsites.FindCampsites(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", campscout.ErrorMessage(err))
		return err
	}

	if len(campsites) == 0 {
		fmt.Fprintln(deps.Stdout, "No campsites found. Use 'campscout crawl' to collect some.")
		return nil
	}

	for _, camp := range campsites {
		fmt.Fprintf(deps.Stdout, "%-30s  %-15s  %-7s  %s\n", camp.Name, camp.Country, camp.Category, camp.URL)
	}

	return nil
}
