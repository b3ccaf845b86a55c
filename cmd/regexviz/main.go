// ===== cmd/regexviz/main.go =====
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/outslept/regex-engine/internal/corpus"
	"github.com/outslept/regex-engine/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern to compile and visualize")
	preset := flag.String("preset", "", "name of a pattern preset from -presets-file, used instead of -re")
	presetsFile := flag.String("presets-file", "testdata/presets.yaml", "path to a YAML file of named presets")
	outFile := flag.String("o", "graph.dot", "output file")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng")
	flag.Parse()

	pat := *pattern
	if *preset != "" {
		presets, err := corpus.LoadPresets(*presetsFile)
		if err != nil {
			log.Fatalf("regexviz: %v", err)
		}
		p, ok := corpus.FindPreset(presets, *preset)
		if !ok {
			log.Fatalf("regexviz: no preset named %q in %s", *preset, *presetsFile)
		}
		pat = p.Pattern
	}

	if pat == "" {
		fmt.Fprintln(os.Stderr, "usage: regexviz -re <pattern> | -preset <name> [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	re, err := regexlib.Compile(pat)
	if err != nil {
		log.Fatalf("regexviz: %v", err)
	}

	var buf bytes.Buffer
	regexlib.WriteDOT(&buf, re.Program())

	if *pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			log.Fatalf("regexviz: dot failed: %v", err)
		}
		fmt.Printf("PNG written to %s\n", *outFile)
		return
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("regexviz: cannot create %s: %v", *outFile, err)
		}
		defer f.Close()
		w = f
	}
	_, _ = io.Copy(w, &buf)
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}
