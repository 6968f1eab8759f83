// Package session owns the in-memory session state of the client.
//
// A Manager is built once per process from the credential store and then
// mirrors it: Login and Logout update the store and the mirror under one
// lock, so no subscriber ever sees one without the other. Whether the user is
// authenticated is never stored; State.Authenticated derives it from the
// credential on every call.
//
// The Manager does not navigate. It publishes an Event after each transition
// and the router (or any other consumer) reacts to it.
//
// Processes sharing a store do not notify each other. A process only notices
// another one's login or logout on its next outbound request (the request
// authenticator reads the store directly) or when Sync runs. Watch runs Sync
// periodically for callers that want to close that window.
package session
