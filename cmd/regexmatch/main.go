// ===== cmd/regexmatch/main.go =====
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/outslept/regex-engine/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern to compile (required)")
	input := flag.String("in", "", "text to match against -re; omit to enter interactive mode")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexmatch -re <pattern> [-in <text>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	re, err := regexlib.Compile(*pattern)
	if err != nil {
		log.Fatalf("regexmatch: %v", err)
	}

	if *input != "" {
		fmt.Println(re.MatchString(*input))
		return
	}

	rdr := bufio.NewScanner(os.Stdin)
	fmt.Printf("pattern %s (id %s) loaded; one input per line, Ctrl-D to quit\n", re.String(), re.ID())
	for {
		fmt.Print("text> ")
		if !rdr.Scan() {
			break
		}
		fmt.Println(re.MatchString(rdr.Text()))
	}
}
