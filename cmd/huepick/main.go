// huepick - An HSL colour picker for the terminal
//
// huepick converts colours between HSL, RGB and hex-with-alpha and runs an
// interactive editing session that emits a CSS rgba() value.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/huepick/internal/cli"

func main() {
	cli.Execute()
}
