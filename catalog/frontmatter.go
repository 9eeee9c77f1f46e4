package catalog

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

const frontmatterDelimiter = "---"

// parseFrontmatter reads path and, if it opens with a "---" delimited YAML
// block, returns the parsed metadata, the body with that block stripped,
// and true. If there is no frontmatter block, it returns (nil, the whole
// content, false, nil).
func parseFrontmatter(path string) (map[string]any, string, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", false, err
	}
	return parseFrontmatterBytes(raw)
}

func parseFrontmatterBytes(raw []byte) (map[string]any, string, bool, error) {
	content := string(raw)
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontmatterDelimiter {
		return nil, content, false, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, content, false, nil
	}

	block := strings.Join(lines[1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")
	body = strings.TrimPrefix(body, "\n")

	var meta map[string]any
	if strings.TrimSpace(block) != "" {
		if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
			return nil, content, false, err
		}
	}
	return meta, body, true, nil
}
