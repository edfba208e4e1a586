// Package oauth implements the OAuth2 client-credentials flow used to
// authenticate against the Billwerk+ Transform API, including a
// file-persisted token cache.
//
// The lifecycle is deliberately simple: a single machine-to-machine token is
// cached in memory and on disk, and every outbound API call asks the
// TokenSource for a valid access token. A token is treated as expired 60
// seconds before its actual expiry so that a request never travels with a
// token that dies in flight.
package oauth
