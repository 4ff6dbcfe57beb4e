package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Pre-compiled repair regexes. They cover the errors chat models actually
// make in suggestion output; exotic breakage still fails the parse.
var (
	// Trailing commas before a closing brace/bracket: ,} -> } and ,] -> ]
	trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)

	// Single-quoted object keys: {'title': -> {"title":
	singleQuoteKeyRegex = regexp.MustCompile(`([{,]\s*)'(\w+)'(\s*:)`)

	// Single-quoted string values: : 'value' -> : "value"
	singleQuoteValueRegex = regexp.MustCompile(`(:\s*)'((?:[^'\\]|\\.)*)'(\s*[,}\]])`)
)

// ExtractAndParseJSON extracts the first JSON value from a chat-model response
// and unmarshals it into T. Markdown fences and prose around the value are
// ignored; a small set of common syntax errors is repaired before giving up.
func ExtractAndParseJSON[T any](response string) (T, error) {
	var result T

	cleaned := stripFences(response)
	if cleaned == "" {
		return result, fmt.Errorf("no JSON found in response")
	}

	idx := strings.IndexAny(cleaned, "{[")
	if idx == -1 {
		// The whole response may be a quoted string that itself contains JSON.
		var asString string
		if err := json.Unmarshal([]byte(cleaned), &asString); err == nil {
			return ExtractAndParseJSON[T](asString)
		}
		return result, fmt.Errorf("no JSON start ({ or [) found")
	}

	// A Decoder reads one value and leaves trailing prose unread.
	jsonPart := cleaned[idx:]
	decoder := json.NewDecoder(strings.NewReader(jsonPart))
	if err := decoder.Decode(&result); err != nil {
		repaired := repairJSON(jsonPart)
		if repaired != jsonPart {
			dec2 := json.NewDecoder(strings.NewReader(repaired))
			if err2 := dec2.Decode(&result); err2 == nil {
				return result, nil
			}
		}
		return result, fmt.Errorf("parse JSON: %w", err)
	}

	return result, nil
}

// repairJSON fixes trailing commas, single-quoted keys and values, and
// truncation of the closing braces.
func repairJSON(input string) string {
	result := trailingCommaRegex.ReplaceAllString(input, `$1`)
	result = singleQuoteKeyRegex.ReplaceAllString(result, `$1"$2"$3`)
	result = singleQuoteValueRegex.ReplaceAllStringFunc(result, func(match string) string {
		parts := singleQuoteValueRegex.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}
		value := strings.ReplaceAll(parts[2], `\'`, `'`)
		value = strings.ReplaceAll(value, `"`, `\"`)
		return parts[1] + `"` + value + `"` + parts[3]
	})
	return closeTruncated(result)
}

// closeTruncated balances quotes, brackets, and braces of a value the model
// stopped generating mid-way. Containers close in reverse nesting order.
func closeTruncated(input string) string {
	var stack []byte
	inString := false
	escaped := false
	for i := 0; i < len(input); i++ {
		c := input[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{', '[':
			if !inString {
				stack = append(stack, c)
			}
		case '}', ']':
			if !inString && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if inString {
		input += `"`
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			input += "}"
		} else {
			input += "]"
		}
	}
	return input
}

// stripFences removes a surrounding markdown code block, if any.
func stripFences(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
