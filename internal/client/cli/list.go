package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventhive/internal/client/dashboard"
)

// List shows the dashboard. Optional arguments switch the tab and set a
// search query:
//
//	list                 refresh the current view
//	list past            switch to the past tab, clear the query
//	list gophers oslo    search the current tab
//	list upcoming go     switch tab and search
//
// Pagination is server-driven; the tab partition and the search run over the
// fetched page.
func (a *App) List(ctx context.Context, args []string) error {
	if len(args) > 0 {
		rest := args
		switch args[0] {
		case string(dashboard.TabUpcoming):
			a.tab = dashboard.TabUpcoming
			rest = args[1:]
		case string(dashboard.TabPast):
			a.tab = dashboard.TabPast
			rest = args[1:]
		}
		a.search = strings.Join(rest, " ")
	}

	events, err := a.events.ListPage(ctx, a.cursor)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	now := time.Now()
	upcoming, past := dashboard.Counts(events, now)
	filtered := dashboard.Filter(events, a.tab, a.search, now)

	printlnFn(a.renderTabs(upcoming, past))
	if a.search != "" {
		printlnFn(fmt.Sprintf("Search: %q", a.search))
	}

	if len(filtered) == 0 {
		printlnFn("No events to show")
	}
	for _, e := range filtered {
		printlnFn(formatEventLine(e, now))
	}

	printlnFn(fmt.Sprintf("Page %d/%d, %d events total (size %d)",
		a.cursor.Page+1, max(a.cursor.TotalPages, 1), a.cursor.TotalElements, a.cursor.Size))
	return nil
}

func (a *App) renderTabs(upcoming, past int) string {
	up := fmt.Sprintf("Upcoming (%d)", upcoming)
	pa := fmt.Sprintf("Past (%d)", past)
	if a.tab == dashboard.TabPast {
		return fmt.Sprintf(" %s | [%s]", up, pa)
	}
	return fmt.Sprintf("[%s] | %s", up, pa)
}

// Next advances to the following dashboard page and re-renders.
func (a *App) Next(ctx context.Context) error {
	if !a.cursor.Next() {
		printlnFn("Already on the last page")
		return nil
	}
	return a.List(ctx, nil)
}

// Prev steps back one dashboard page and re-renders.
func (a *App) Prev(ctx context.Context) error {
	if !a.cursor.Prev() {
		printlnFn("Already on the first page")
		return nil
	}
	return a.List(ctx, nil)
}

// SetSize switches the dashboard page size.
func (a *App) SetSize(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: size <n>")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || !a.cursor.SetSize(n) {
		printlnFn(fmt.Sprintf("Page size must be one of %v", dashboard.AllowedPageSizes))
		return nil
	}
	return a.List(ctx, nil)
}
