// garden is the playable toy: tap bare soil to plant, long-press a plant
// to tend it, then drag, twist, or pinch to arrange it. Long-press the
// soil to start over.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/seedbed"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	scriptPath := flag.String("script", "", "path to a JSON input script to replay")
	showFPS := flag.Bool("fps", false, "show the FPS/TPS overlay")
	flag.Parse()

	cfg := seedbed.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = seedbed.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	var script *seedbed.Script
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		script, err = seedbed.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := seedbed.Run(cfg, seedbed.RunConfig{
		ShowFPS: *showFPS,
		Script:  script,
	}); err != nil {
		log.Fatal(err)
	}
}
