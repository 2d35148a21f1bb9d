// Swatch - colour palette analysis
//
// Swatch scores, compares and explains colour palettes, simulates colour
// vision deficiencies, and generates, extracts and exports palettes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/swatch/internal/cli"

func main() {
	cli.Execute()
}
