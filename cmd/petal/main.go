// Command petal inspects theme presets and manages device-bound secure values.
package main

import "github.com/opencode-ai/petal/internal/cli"

func main() {
	cli.Execute()
}
