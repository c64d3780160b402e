// Package cmd provides CLI commands for the mapperfmt tool.
//
// This package implements the command-line interface for mapperfmt,
// providing commands for formatting MyBatis mapper XML files, inspecting
// their token streams, and managing formatter projects.
//
// # Available Commands
//
// The cmd package currently provides:
//   - fmt: Format mapper files or stdin, optionally writing results back
//   - tokens: Dump the token stream of a mapper file for debugging
//   - highlight: Print a formatted mapper file with syntax colors
//   - init: Initialize a new mapperfmt project structure
//   - list: List the namespaces and statements mapper files declare
//   - dialects: List the supported SQL dialects
//
// # Command Structure
//
// Each command is implemented as a constructor returning a *cli.Command,
// following the urfave/cli/v3 pattern. Constructors receive their
// dependencies (project configuration, logger) through fx, keeping
// commands composable and testable.
//
// # Formatting Options
//
// Commands that render SQL accept shared flags that override the project
// configuration:
//   - --dialect, -D: SQL dialect keywords are classified against
//   - --connection, -c: take the dialect from a named connection
//   - --indent: number of spaces per indentation level
//
// # Example Usage
//
//	mapperfmt init --dialect postgresql   # Scaffold a new project
//	mapperfmt fmt -w mappers/             # Format a directory in place
//	mapperfmt fmt -l mappers/             # List files needing formatting
//	cat user.xml | mapperfmt fmt          # Format stdin to stdout
//	mapperfmt tokens mappers/user.xml     # Inspect the token stream
//	mapperfmt list                        # Show namespaces and statements
package cmd
