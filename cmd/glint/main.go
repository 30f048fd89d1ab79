// Command glint runs the Glint scripting language: a REPL with no
// arguments, a script with one, per spec.md section 6.
package main

import "github.com/glint-lang/glint/cmd/glint/cmd"

func main() {
	cmd.Execute()
}
