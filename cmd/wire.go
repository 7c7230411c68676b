package cmd

import (
	"github.com/BrandonKowalski/navstate/pkg/navstate"
	"github.com/BrandonKowalski/navstate/pkg/navstate/titles"
	"golang.org/x/text/language"
)

type app struct {
	host   *navstate.Host
	titles *titles.Catalog
}

func wireApp(opts *rootOptions) (*app, error) {
	host, err := navstate.LoadTabHost(opts.layoutPath)
	if err != nil {
		return nil, err
	}

	catalog := titles.New(language.English)
	for _, path := range opts.messages {
		if err := catalog.LoadFile(path); err != nil {
			return nil, err
		}
	}
	catalog.Use(opts.langs...)

	return &app{host: host, titles: catalog}, nil
}
