// Package client talks to the PomoKeeper HTTP API on behalf of the terminal
// client.
//
// # Overview
//
// Client is the API contract the rest of the terminal client depends on;
// HTTPClient implements it over net/http. The session token handed out by
// POST /api/auth is kept in memory and attached as the pomo-auth cookie to
// every request. Callers persist it between runs via Session/SetSession.
//
// # Error Handling
//
// Non-2xx answers become *APIError values carrying the server's message.
// They match the sentinel errors of the common package under errors.Is:
// 400 → common.ErrorValidation, 401 → common.ErrorUnauthorized,
// 404 → common.ErrorNotFound. Transport failures match ErrUnavailable.
package client
