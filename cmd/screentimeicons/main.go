package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"screentimeicons/pkg/catalog"
	"screentimeicons/pkg/config"
	"screentimeicons/pkg/icon"
)

func main() {
	cfgPath := config.ResolvePath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config %q: %v", cfgPath, err)
	}

	outDir := flag.String("out", cfg.OutputDir, "destination AppIcon.appiconset directory")
	manifest := flag.Bool("manifest", !cfg.SkipManifest, "write the Contents.json manifest")
	master := flag.Bool("svg", cfg.WriteSVG, "write an app-icon.svg master next to the icon set")
	flag.Parse()

	cfg.OutputDir = *outDir
	cfg.SkipManifest = !*manifest
	cfg.WriteSVG = *master
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	gen := icon.NewGenerator(cfg.OutputDir)
	rep := gen.GenerateAll()
	failed := rep.Total - rep.Succeeded

	if !cfg.SkipManifest {
		if err := catalog.WriteContents(cfg.OutputDir, icon.AppIconSet); err != nil {
			fmt.Printf("❌ Error writing Contents.json: %v\n", err)
			failed++
		} else {
			fmt.Println("   ✅ Created Contents.json")
		}
	}

	if cfg.WriteSVG {
		path := cfg.MasterSVGPath()
		if err := writeMasterSVG(path); err != nil {
			fmt.Printf("❌ Error writing %s: %v\n", path, err)
			failed++
		} else {
			fmt.Printf("   ✅ Created %s\n", path)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func writeMasterSVG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := icon.WriteMaster(file, icon.MasterSize); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
