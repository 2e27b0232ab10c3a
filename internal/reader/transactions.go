// Package reader parses the text formats the core engine consumes:
// quantitative transactions and spatial neighborhoods. Neither format is
// part of the core's contract (ffspm treats parsed RawTransaction and
// NeighborIndex values as opaque input); this package exists only to
// turn the reference line-oriented formats spec callers use into those
// values.
package reader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ffspm"
)

// DefaultSeparator is used to split the items/quantities sub-fields of a
// transaction line, and the neighbor list of a neighborhood line, when
// the caller does not configure one.
const DefaultSeparator = "\t"

// ReadTransactions opens path and parses one RawTransaction per line.
// Each line must have exactly three colon-separated fields: items,
// count, quantities. Items and quantities are further split on sep
// (pass DefaultSeparator for the reference format). The count field is
// read but not otherwise validated against the split length; a mismatch
// between item and quantity counts is a MalformedRecord.
func ReadTransactions(path string, sep string) ([]ffspm.RawTransaction, error) {
	if sep == "" {
		sep = DefaultSeparator
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ffspm.NewError(ffspm.InputUnavailable, "ReadTransactions", err)
	}
	defer file.Close()

	var out []ffspm.RawTransaction
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		tx, err := parseTransactionLine(line, sep)
		if err != nil {
			if ffspm.IsKind(err, ffspm.NonNumericQuantity) {
				return nil, err
			}
			return nil, ffspm.NewError(ffspm.MalformedRecord, fmt.Sprintf("ReadTransactions:%d", lineNo), err)
		}
		out = append(out, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, ffspm.NewError(ffspm.InputUnavailable, "ReadTransactions", err)
	}
	return out, nil
}

func parseTransactionLine(line, sep string) (ffspm.RawTransaction, error) {
	fields := strings.Split(line, ":")
	if len(fields) != 3 {
		return ffspm.RawTransaction{}, fmt.Errorf("expected 3 colon-separated fields, got %d", len(fields))
	}

	itemFields := strings.Split(fields[0], sep)
	quantityFields := strings.Split(fields[2], sep)
	if len(itemFields) != len(quantityFields) {
		return ffspm.RawTransaction{}, fmt.Errorf("item count %d does not match quantity count %d", len(itemFields), len(quantityFields))
	}

	items := make([]ffspm.Item, len(itemFields))
	quantities := make([]int, len(quantityFields))
	for i, raw := range itemFields {
		items[i] = ffspm.Item(raw)
	}
	for i, raw := range quantityFields {
		q, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || q < 0 {
			return ffspm.RawTransaction{}, ffspm.NewError(ffspm.NonNumericQuantity, "parseTransactionLine", fmt.Errorf("quantity %q is not a non-negative integer", raw))
		}
		quantities[i] = q
	}

	return ffspm.RawTransaction{Items: items, Quantities: quantities}, nil
}
