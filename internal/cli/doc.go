// Package cli provides the interactive LuxAuto terminal client.
//
// It wires configuration, the local store and the domain services into a
// REPL that covers what the web pages used to do: sending and managing
// contact messages, registering and logging in, the sell-car wizard with a
// live price suggestion, the replies feed and the reservation checker.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// No command handler may take the loop down: validation problems are
// printed for the user to correct, and storage failures are logged and
// degrade to a no-op.
package cli
