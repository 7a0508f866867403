// Package siptrack tracks mutual-fund SIP performance by combining a
// personal CAS statement with historical NAV data fetched from the AMFI
// registry mirror.
//
// The package owns the two correctness-sensitive subsystems: resolving the
// free-text scheme names found in a statement to canonical AMFI scheme
// codes (Resolver), and acquiring and caching per-scheme NAV histories
// (NavCache). Statement extraction lives in the statement subpackage and
// the registry client in the amfi subpackage; presentation is a thin
// markdown layer on top (renderer, cmd).
package siptrack
