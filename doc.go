// Package quotefeed adapts third-party market-data web services into a
// normalized set of financial entities, behind a single provider contract.
//
// The core functionalities include:
//   - Entities: immutable, typed aggregates (MarketData, DividendData,
//     SplitData, FundamentalData) built from date-keyed row maps, with
//     field-level validation at construction time.
//   - Field Resolution: static correspondence tables mapping the target
//     row fields to the source columns of a provider response, resolved
//     through a typed, fallible Record.
//   - Provider Contract: the DataProvider interface implemented by each
//     provider package (currently yahoo), with one bulk upstream fetch
//     per configuration and pure in-memory reads afterwards.
//
// This package serves as the foundational logic for the `qf` command-line
// tool, which fetches and renders market, dividend and split history.
package quotefeed
