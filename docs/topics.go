// Package docs serves the embedded documentation shown by the topic
// command. Every *.md file in this directory is a topic, except
// readme.md which is the index listing them.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topics returns the names of every available topic, sorted.
func Topics() ([]string, error) {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Topic returns the markdown content of a single topic.
func Topic(name string) (string, error) {
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Get returns the concatenated content of the given topics. The name
// "*" expands, in place, to every available topic.
func Get(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == "*" {
			all, err := Topics()
			if err != nil {
				return "", err
			}
			content, err := Get(all...)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			continue
		}
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
