// Command rosmsg inspects ROS message types and decodes captured payloads.
//
//	rosmsg [-config FILE] list
//	rosmsg [-config FILE] md5 TYPE
//	rosmsg [-config FILE] show TYPE
//	rosmsg [-config FILE] size TYPE
//	rosmsg [-config FILE] header [-raw] TYPE
//	rosmsg [-config FILE] decode [-format F] [-header] [-frames] TYPE FILE
//
// Types come from the bundled definitions plus the roots listed under
// `paths` in the config file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "rosmsg: %v\n", err)
		os.Exit(1)
	}
}
