// Command buildstamp bumps the embedded build number before a release build.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/aerialrush/aerialrush/buildinfo"
)

func main() {
	dir := flag.String("dir", "assets", "directory holding build_number and build_info.yaml")
	flag.Parse()

	info, err := buildinfo.Stamp(*dir, time.Now())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("buildstamp: build %d at %s", info.BuildNumber, info.LastBuildUTC)
}
