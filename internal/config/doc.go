// Package config manages aoc-init settings.
//
// Settings live in an optional JSON file. A missing file yields defaults, so
// the tool runs unconfigured; anything present in the file overrides the
// matching default.
//
//	settings, err := config.Load("/home/me/.config/aoc-init.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(settings.BaseDir)
//
// Save writes the file back (indented JSON, atomic replace):
//
//	settings.FetchStatement = true
//	err = settings.Save("/home/me/.config/aoc-init.json")
package config
