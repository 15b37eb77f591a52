// Command rerexmatch compiles a pattern and tests each line of stdin
// against it in its entirety, printing the lines that match.
//
// Usage:
//
//	rerexmatch -e '[a-z]+@[a-z]+\.[a-z]+' < addresses.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/gorerex/rerex"
)

func main() {
	pattern := flag.String("e", "", "pattern to match (required)")
	quiet := flag.Bool("q", false, "suppress matched lines, only set exit status")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: rerexmatch -e <pattern> < input")
		os.Exit(2)
	}

	re, err := rerex.Compile(*pattern)
	if err != nil {
		if synErr, ok := err.(*rerex.SyntaxError); ok {
			fmt.Fprintf(os.Stderr, "rerexmatch: %s\n", synErr)
			fmt.Fprintf(os.Stderr, "  %s\n", synErr.Pattern)
			fmt.Fprintf(os.Stderr, "  %*s^\n", synErr.Offset, "")
		} else {
			fmt.Fprintf(os.Stderr, "rerexmatch: %v\n", err)
		}
		os.Exit(2)
	}

	m := rerex.NewMatcher(re)
	found := false

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if m.Match(line) {
			found = true
			if !*quiet {
				fmt.Println(line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "rerexmatch: read stdin: %v\n", err)
		os.Exit(2)
	}

	if !found {
		os.Exit(1)
	}
}
