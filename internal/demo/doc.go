// Package demo declares an order host type on top of the property package.
// It backs the attrkit CLI and serves as a worked example.
package demo
