// Package cli provides the interactive DrawIO converter command-line client.
//
// It wires configuration, the conversion service client, the download
// navigator and the workflow controller behind a small REPL. A session
// mirrors the web front-end: the landing page is shown, "start" brings the
// workflow into view, and the user moves through select → convert → download.
//
// Conversions run in the background so the prompt stays usable; "wait"
// blocks until the current one has been applied.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// ctx is canceled. See App and runREPL for details.
package cli
