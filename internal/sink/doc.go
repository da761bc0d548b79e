// Package sink provides concrete receivers for animator highlight commands.
//
//   - [Recorder]: keeps every call in order, for tests and headless replay
//   - [Board]: idempotent highlight state polled by renderers
//   - [Tee]: forwards each call to several sinks
//   - [Logged]: decorates a sink with debug logging
package sink
