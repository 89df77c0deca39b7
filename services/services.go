package services

import (
	"context"

	"go-food-ordering/apperrors"
)

// Subscriber registers a callback for changes to any of topics. The returned
// func stops it.
type Subscriber interface {
	Subscribe(fn func(), topics ...string) (dispose func())
}

// Destinations returned in place of browser redirects.
const (
	AdminHome    = "/admin/dashboard"
	CustomerHome = "/dashboard"
	EntryPage    = "/"
	LoginPage    = "/login"
)

func requireConfirmation(confirmed bool, action string) error {
	if !confirmed {
		return apperrors.ConfirmationRequired(action + " requires confirmation.")
	}
	return nil
}

// watch runs load inside a feed subscription and hands the result to push.
// Load failures are pushed too so the view can show them.
func watch[T any](feed Subscriber, load func(context.Context) (T, error), push func(T, error), topics ...string) func() {
	return feed.Subscribe(func() {
		push(load(context.Background()))
	}, topics...)
}
