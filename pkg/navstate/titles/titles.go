// Package titles resolves display titles for tabs and routes through go-i18n
// message catalogs. Lookups never fail: a missing message falls back to the
// tab or route ID, so a tab bar can always render something.
package titles

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/navstate/pkg/navstate/internal"
	"github.com/BrandonKowalski/navstate/pkg/navstate/router"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// RoutePrefix is prepended to a route ID to form its title message ID.
const RoutePrefix = "route."

// Catalog holds message files and the active language preference.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	langs     []string
}

// New creates a catalog whose fallback language is base. Message files may
// be TOML or JSON.
func New(base language.Tag) *Catalog {
	bundle := i18n.NewBundle(base)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	c := &Catalog{bundle: bundle}
	c.Use(base.String())
	return c
}

// LoadFile loads a message file such as "active.fr.toml". The language is
// taken from the file name.
func (c *Catalog) LoadFile(path string) error {
	if _, err := c.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("titles: load %s: %w", path, err)
	}
	return nil
}

// Parse loads message file contents. name supplies the language and format,
// as in "en.toml".
func (c *Catalog) Parse(data []byte, name string) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("titles: parse %s: %w", name, err)
	}
	return nil
}

// Add registers messages for a language directly.
func (c *Catalog) Add(tag language.Tag, messages ...*i18n.Message) error {
	return c.bundle.AddMessages(tag, messages...)
}

// Use sets the preferred languages, most preferred first. Entries may be
// tags or Accept-Language values.
func (c *Catalog) Use(langs ...string) {
	c.langs = langs
	c.localizer = i18n.NewLocalizer(c.bundle, langs...)
}

// Languages returns the preference set by Use.
func (c *Catalog) Languages() []string {
	return c.langs
}

// Lookup localizes messageID, falling back to fallback when no language has it.
func (c *Catalog) Lookup(messageID, fallback string, data map[string]any) string {
	text, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err == nil {
		return text
	}
	var notFound *i18n.MessageNotFoundErr
	if errors.As(err, &notFound) {
		if text != "" {
			return text
		}
		return fallback
	}
	internal.GetInternalLogger().Warn("Failed to localize title", "message", messageID, "error", err)
	return fallback
}

// Tab returns the title of tab. Its Title field is used as the message ID,
// or its ID when Title is empty.
func (c *Catalog) Tab(tab router.Tab) string {
	messageID := tab.Title
	if messageID == "" {
		messageID = tab.ID
	}
	return c.Lookup(messageID, messageID, nil)
}

// Route returns the title of route from the message "route.<id>". The
// route's parameters are available to the message template.
func (c *Catalog) Route(route router.Route) string {
	return c.Lookup(RoutePrefix+route.ID(), route.ID(), route.Parameters())
}
