// Package project manages mapper formatting projects on disk.
//
// A project is a directory containing a mapperfmt.yaml configuration and one
// or more MyBatis mapper XML files. The package scaffolds new projects from
// an embedded skeleton, discovers mapper files, and builds a lightweight
// index of the namespaces and statements they declare.
package project
