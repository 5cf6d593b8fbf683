/*
Package observability provides ready-made lifecycle hooks for monitoring a
machine: slog audit hooks for transition logging and prometheus collectors
for transition metrics. Hook sets from different sources are merged with
Combine.
*/
package observability
