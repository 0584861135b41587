// Package models defines server-side records persisted in the database and
// the JSON shapes the HTTP API exchanges for them.
package models
