package main

import "github.com/ringtoolkit/ring-toolkit-core/plugins"

func main() {
	plugins.ToolkitMain()
}
