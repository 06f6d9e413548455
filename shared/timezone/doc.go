// Package timezone provides timezone utilities for the application.
//
// All business-date arithmetic (night audit cut-offs, forecast day buckets)
// goes through the day-boundary helpers here rather than mutating time values
// ad hoc, so the audit engine and the forecast calculator cannot drift apart
// on what "a day" means.
//
// Usage:
//
//  1. Current time in the application timezone:
//     now := timezone.Now()
//
//  2. Day boundaries for a business date:
//     start := timezone.DayStart(date)
//     end := timezone.DayEnd(date)
//
//  3. Parsing and formatting in the application timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-01-10")
//     s := timezone.Format(t, "2006-01-02")
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use standard IANA timezone names.
package timezone
