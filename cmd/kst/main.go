// Command kst is a thin CLI boundary over the knowledge space theory core:
// every subcommand parses a course file, invokes pure core operations, and
// renders a textual report. No subcommand holds state across invocations.
package main

func main() {
	Execute()
}
