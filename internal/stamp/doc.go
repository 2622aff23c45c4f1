// Package stamp handles freshness-stamp files inside the virtual
// environment. A stamp records when dependencies were last installed;
// comparing it against the manifest's modification time decides whether
// the install step may be skipped.
package stamp
