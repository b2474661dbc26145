// Package dataset holds the customer dataset bundled with the binaries.
package dataset

import _ "embed"

// Name of the bundled asset, for log and error messages.
const Name = "customers.json"

//go:embed customers.json
var customers []byte

// Customers returns the bundled dataset document. Callers must not modify it.
func Customers() []byte { return customers }
