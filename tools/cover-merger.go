//go:build tools

// cover-merger combines the unit and integration coverage profiles into one.
// Blocks reported by several profiles keep the highest count.
//
//	go test -coverprofile=unit.cover ./...
//	go test -tags integration -coverprofile=integration.cover ./internal/repository/...
//	go run -tags tools ./tools/cover-merger.go -out coverage.out unit.cover integration.cover
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

func main() {
	out := flag.String("out", "coverage.out", "merged profile path")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		var err error
		if inputs, err = filepath.Glob("*.cover"); err != nil {
			fmt.Fprintf(os.Stderr, "failed to find .cover files: %v\n", err)
			os.Exit(1)
		}
	}

	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "warning: no coverage profiles given")
		return
	}

	mode, blocks, err := mergeProfiles(inputs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := writeProfile(*out, mode, blocks); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mergeProfiles(paths []string) (string, map[string]int, error) {
	mode := "set"
	blocks := make(map[string]int)

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to open %s: %w", path, err)
		}

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}

			if m, ok := strings.CutPrefix(line, "mode: "); ok {
				mode = m
				continue
			}

			// "<file>:<range> <statements> <count>"
			i := strings.LastIndexByte(line, ' ')
			if i < 0 {
				continue
			}

			count, err := strconv.Atoi(line[i+1:])
			if err != nil {
				continue
			}

			key := line[:i]
			if count > blocks[key] {
				blocks[key] = count
			} else if _, seen := blocks[key]; !seen {
				blocks[key] = count
			}
		}

		f.Close()
		if err := sc.Err(); err != nil {
			return "", nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	return mode, blocks, nil
}

func writeProfile(path, mode string, blocks map[string]int) error {
	keys := make([]string, 0, len(blocks))
	for k := range blocks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "mode: %s\n", mode)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s %d\n", k, blocks[k])
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
