// Package utils provides small helpers shared across the codebase.
package utils
