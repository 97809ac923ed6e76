// Command pinchreplay replays a JSON gesture script against a headless pinch
// view and prints the content state recorded at every "mark" step. It is
// used to tune zoom settings without a window or a touch screen.
//
//	pinchreplay run gestures.json --config zoom.yaml --output json
//	pinchreplay config --config zoom.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
