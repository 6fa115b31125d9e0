package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabflash-backend/internal/adapter/localstore"
	"github.com/heartmarshall/vocabflash-backend/internal/app"
	"github.com/heartmarshall/vocabflash-backend/internal/config"
)

type commandContext struct {
	dataFlag string
	verbose  bool

	now func() time.Time
	rnd *rand.Rand // nil means time-seeded

	settings *config.LocalSettings
	store    *localstore.Store
}

func newCommandContext() *commandContext {
	return &commandContext{now: time.Now}
}

// loadSettings reads the local configuration once.
func (c *commandContext) loadSettings() (*config.LocalSettings, error) {
	if c.settings != nil {
		return c.settings, nil
	}
	settings, err := config.LoadLocal()
	if err != nil {
		return nil, err
	}
	c.settings = settings
	return settings, nil
}

// openStore opens the local store on first use and reuses it afterwards.
func (c *commandContext) openStore(cmd *cobra.Command) (*localstore.Store, error) {
	if c.store != nil {
		return c.store, nil
	}

	settings, err := c.loadSettings()
	if err != nil {
		return nil, err
	}

	path := settings.Local.Path
	if p := strings.TrimSpace(c.dataFlag); p != "" {
		path = p
	}

	logCfg := settings.Log
	logCfg.Level = "warn"
	if c.verbose {
		logCfg.Level = "debug"
	}
	logger := app.NewLoggerTo(cmd.ErrOrStderr(), logCfg)

	store, err := localstore.Open(path, logger)
	if err != nil {
		return nil, fmt.Errorf("open local data at %s: %w", path, err)
	}
	c.store = store
	return store, nil
}

func (c *commandContext) close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}

func (c *commandContext) today() string {
	return c.now().Format(localstore.DateLayout)
}

// addDateFlags registers --date / --from / --to on cmd.
func addDateFlags(cmd *cobra.Command, date, from, to *string) {
	cmd.Flags().StringVar(date, "date", "", "Only items saved on this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(from, "from", "", "Start of an inclusive date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(to, "to", "", "End of an inclusive date range (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("date", "from")
	cmd.MarkFlagsMutuallyExclusive("date", "to")
	cmd.MarkFlagsRequiredTogether("from", "to")
}

// selectItems returns the items picked by the date flags, or everything.
func selectItems(store *localstore.Store, date, from, to string) ([]localstore.Item, error) {
	switch {
	case date != "":
		return store.ByDate(date)
	case from != "" || to != "":
		return store.ByDateRange(from, to)
	default:
		return store.All()
	}
}
