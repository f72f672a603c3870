// Package playground holds the sample components watched by cmd/playground.
// The generated app.we.go is checked in so the package doubles as an
// end-to-end exercise of the compiler's output.
//
//go:generate go run github.com/pepijnd/webelements/cmd/wegen -dir .
package playground
