// Command coverwalk finds a route through a room graph that visits every
// room at least once.
//
//	coverwalk solve --graph rooms.yaml --workers 8 --verify
//	coverwalk solve --fixture lollipop:3,3 --max-length 9 --json
//	coverwalk validate --graph rooms.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
