package reader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"ffspm"
)

// ReadNeighbors opens path — the neighborhood file — and parses one
// item's neighbor list per line: the item identifier followed by zero
// or more neighbor identifiers, all separated by sep.
//
// This reads from path directly, which is the neighborhood file the
// caller passed in. An earlier implementation of this reader (traced
// back to the original collaborator it was distilled from) opened the
// transaction file here instead; that behavior is not reproduced.
func ReadNeighbors(path string, sep string) (*ffspm.NeighborIndex, error) {
	if sep == "" {
		sep = DefaultSeparator
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ffspm.NewError(ffspm.InputUnavailable, "ReadNeighbors", err)
	}
	defer file.Close()

	builder := ffspm.NewNeighborIndexBuilder()
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, sep)
		if len(fields) == 0 || fields[0] == "" {
			return nil, ffspm.NewError(ffspm.MalformedRecord, fmt.Sprintf("ReadNeighbors:%d", lineNo), fmt.Errorf("empty item identifier"))
		}

		item := ffspm.Item(fields[0])
		var neighbors []ffspm.Item
		for _, n := range fields[1:] {
			if n == "" {
				continue
			}
			neighbors = append(neighbors, ffspm.Item(n))
		}
		builder.Add(item, neighbors)
	}
	if err := scanner.Err(); err != nil {
		return nil, ffspm.NewError(ffspm.InputUnavailable, "ReadNeighbors", err)
	}

	return builder.Build(), nil
}
