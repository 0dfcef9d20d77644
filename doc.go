// Package nbudata provides types and aggregations for the financial
// reference data published by the National Bank of Ukraine: daily currency
// exchange rates and the register of domestic government bonds with their
// payment schedules.
//
// The core functionalities include:
//   - Data Model: typed records for exchange-rate observations (RateRecord)
//     and bond terms (BondRecord with nested PaymentEvent), with all amounts
//     held as exact decimals.
//   - Filtering: allow-list intersection of fetched records by instrument
//     identifier, preserving order and silently ignoring unknown identifiers.
//   - Payment Ledger: flattening of every bond's payment schedule into one
//     row per payment date and currency, answering "how much cash flow is
//     due on this date across the selected bonds".
//   - Rate Series: a currency's observations as a sorted time series, and an
//     inner join of several series on their shared dates.
//   - Data Export: JSON encoding of bond records that preserves the upstream
//     field vocabulary, optionally prefixed with the field glossary.
//
// Retrieval from the bank.gov.ua endpoints lives in the bankgov subpackage;
// records exist for the duration of one invocation and are never cached.
// This package serves as the foundational logic for the `nbu` command-line
// tool.
package nbudata
