/*
Package observability binds store hooks to Prometheus metrics.

It counts writes, skipped writes and delivered notifications per store, and
tracks the active subscriber count, so a host can expose how busy its reactive
cells are without touching the cells themselves.
*/
package observability
