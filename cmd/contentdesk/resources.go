// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"database/sql"

	"contentdesk/internal/access"
	"contentdesk/internal/auth"
	"contentdesk/internal/config"
	"contentdesk/internal/content"
	"contentdesk/internal/engagement"
	"contentdesk/internal/handlers"
	"contentdesk/internal/models"
	"contentdesk/internal/store"
)

// resources holds the mounted handlers plus the repositories the seed needs.
type resources struct {
	mounted   []handlers.Mountable
	news      store.Repository[models.NewsArticle]
	tutorials store.Repository[models.Tutorial]
}

// repository opens kind on Postgres, or in memory when db is nil.
func repository[T any](db *sql.DB, kind *store.Kind[T]) (store.Repository[T], error) {
	if db == nil {
		s, err := store.NewMemory(kind)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := store.NewPostgres(db, kind)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// mount builds the store, access router, counter and handlers of kind.
func mount[T any](res *resources, db *sql.DB, kind *store.Kind[T], limits access.Limits, opts handlers.Options) (store.Repository[T], error) {
	repo, err := repository(db, kind)
	if err != nil {
		return nil, err
	}
	router := access.New(repo, kind, auth.Gate{}, limits)
	res.mounted = append(res.mounted, handlers.NewResource(router, engagement.New(repo, kind), opts))
	return repo, nil
}

// buildResources wires every content type.
func buildResources(db *sql.DB, cfg *config.Config, opts handlers.Options) (*resources, error) {
	limits := access.Limits{Default: cfg.Limits.Default, Max: cfg.Limits.Max}
	res := &resources{}

	var err error
	if res.news, err = mount(res, db, content.News, limits, opts); err != nil {
		return nil, err
	}
	if res.tutorials, err = mount(res, db, content.Tutorials, limits, opts); err != nil {
		return nil, err
	}
	if _, err = mount(res, db, content.Newsletters, limits, opts); err != nil {
		return nil, err
	}
	if _, err = mount(res, db, content.Reports, limits, opts); err != nil {
		return nil, err
	}
	if _, err = mount(res, db, content.Whitepapers, limits, opts); err != nil {
		return nil, err
	}
	if _, err = mount(res, db, content.CaseStudies, limits, opts); err != nil {
		return nil, err
	}
	if _, err = mount(res, db, content.Webinars, limits, opts); err != nil {
		return nil, err
	}
	if _, err = mount(res, db, content.Jobs, limits, opts); err != nil {
		return nil, err
	}
	if _, err = mount(res, db, content.Applications, limits, opts); err != nil {
		return nil, err
	}
	if _, err = mount(res, db, content.Products, limits, opts); err != nil {
		return nil, err
	}
	if _, err = mount(res, db, content.Team, limits, opts); err != nil {
		return nil, err
	}
	return res, nil
}
