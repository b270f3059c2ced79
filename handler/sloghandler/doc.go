// Package sloghandler provides an adapter from a ulog Logger to
// log/slog.Handler, so code written against the standard library's
// slog API can log through ulog handlers and templates.
//
// Attributes are rendered as " key=value" text appended to the message;
// groups become dotted key prefixes.
package sloghandler
