// Package main hosts the CineBob CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into IPC
// calls against the daemon, local catalog queries, dataset processing,
// and configuration scaffolding. It centralizes configuration resolution
// and socket discovery so subcommands can focus on user experience.
package main
