// Package bootstrap implements the environment preparation sequence: verify
// the base interpreter, ensure the virtual environment and its package
// manager, install dependencies when the manifest is newer than its
// freshness stamp, and compute the environment for the delegated process.
//
// Every stage either succeeds or aborts the whole sequence with an *Error
// classifying the failure. There are no retries and no partial-success
// states: the freshness stamp is written only after a complete install.
package bootstrap
