// Package main provides the entry point for the Mushroom Mentor CLI.
//
// Mushroom Mentor identifies cultivated mushrooms from a photo by calling an
// external prediction service, then pairs the result with growing or
// nutrition reference data.
//
// Usage:
//
//	mentor serve
//	mentor identify <image> --role farmer
//	mentor species --format markdown
//
// See --help for all available options.
package main

func main() {
	Execute()
}
