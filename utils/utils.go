package utils

import (
	"io"
	"log"
	"strings"
)

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

func Contains[A comparable](input []A, item A) bool {
	for _, i := range input {
		if i == item {
			return true
		}
	}
	return false
}

// Uniques keeps the first occurrence of every item, preserving input order.
func Uniques[A comparable](input []A) []A {
	seen := make(map[A]bool, len(input))
	output := make([]A, 0, len(input))
	for _, item := range input {
		if seen[item] {
			continue
		}
		seen[item] = true
		output = append(output, item)
	}
	return output
}

func ToMap[A any, K comparable](input []A, key func(A) K) map[K]A {
	output := make(map[K]A, len(input))
	for _, item := range input {
		output[key(item)] = item
	}
	return output
}

// SplitTrimmed splits a comma separated list and drops blank entries.
func SplitTrimmed(value string) []string {
	parts := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func Closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Printf("failed to close: %v", err)
		}
	}
}
