package llm

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Rrens/fitsmart/internal/domain"
)

const defaultImageMIME = "image/jpeg"

var dataURIPattern = regexp.MustCompile(`^data:(image/[\w.+-]+);base64,`)

// StripDataURI removes a data:image/...;base64, prefix and returns the raw
// payload with its MIME type. Bare payloads are assumed to be JPEG.
func StripDataURI(s string) (data, mime string) {
	s = strings.TrimSpace(s)
	m := dataURIPattern.FindStringSubmatch(s)
	if m == nil {
		return s, defaultImageMIME
	}
	return s[len(m[0]):], m[1]
}

// ExtractJSONObject returns the first balanced top-level JSON object in text.
// Braces inside string literals are ignored. When no balanced object parses,
// the span from the first '{' to the last '}' is returned.
func ExtractJSONObject(text string) (string, error) {
	first := strings.IndexByte(text, '{')
	last := strings.LastIndexByte(text, '}')
	if first == -1 || last < first {
		return "", &domain.ParseError{Content: text}
	}

	for start := first; start != -1; {
		if end := matchBrace(text, start); end != -1 {
			candidate := text[start : end+1]
			if json.Valid([]byte(candidate)) {
				return candidate, nil
			}
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next == -1 {
			break
		}
		start += next + 1
	}

	return text[first : last+1], nil
}

// matchBrace returns the index of the '}' closing the '{' at start, or -1
func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

var requiredNutritionFields = []string{"calories", "protein", "carbs", "fats"}

// maxNutritionValue bounds calories and grams accepted from a reply
const maxNutritionValue = 100000

type rawBreakdownItem struct {
	Item     json.RawMessage `json:"item"`
	Portion  json.RawMessage `json:"portion"`
	Calories json.RawMessage `json:"calories"`
	Protein  json.RawMessage `json:"protein"`
	Carbs    json.RawMessage `json:"carbs"`
	Fats     json.RawMessage `json:"fats"`
}

// ParseMealAnalysis extracts and validates the nutrition object of a model reply.
// Calories and macros must be numbers or numeric strings between 0 and
// maxNutritionValue and are rounded to the nearest integer. Descriptive
// fields of an unexpected shape are kept where they hold text and dropped otherwise.
func ParseMealAnalysis(text string) (*domain.MealAnalysisResult, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, &domain.ParseError{Content: text}
	}

	values := make(map[string]int, len(requiredNutritionFields))
	var invalid []string
	for _, name := range requiredNutritionFields {
		v, ok := nutritionValue(fields[name])
		if !ok {
			invalid = append(invalid, name)
			continue
		}
		values[name] = int(math.Round(v))
	}
	if len(invalid) > 0 {
		return nil, &domain.ValidationError{Fields: invalid}
	}

	result := &domain.MealAnalysisResult{
		FoodName:    textValue(fields["foodName"]),
		Calories:    values["calories"],
		Protein:     values["protein"],
		Carbs:       values["carbs"],
		Fats:        values["fats"],
		Ingredients: textList(fields["ingredients"]),
		PortionSize: textValue(fields["portionSize"]),
	}

	var breakdown []json.RawMessage
	if err := json.Unmarshal(fields["breakdown"], &breakdown); err != nil {
		breakdown = nil
	}
	for _, entry := range breakdown {
		var item rawBreakdownItem
		if err := json.Unmarshal(entry, &item); err != nil {
			continue
		}
		calories, _ := nutritionValue(item.Calories)
		protein, _ := nutritionValue(item.Protein)
		carbs, _ := nutritionValue(item.Carbs)
		fats, _ := nutritionValue(item.Fats)
		result.Breakdown = append(result.Breakdown, domain.BreakdownItem{
			Item:     textValue(item.Item),
			Portion:  textValue(item.Portion),
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fats:     fats,
		})
	}
	return result, nil
}

// nutritionValue is numericValue restricted to [0, maxNutritionValue]
func nutritionValue(raw json.RawMessage) (float64, bool) {
	v, ok := numericValue(raw)
	if !ok || v < 0 || v > maxNutritionValue {
		return 0, false
	}
	return v, true
}

// numericValue accepts a JSON number or a string holding one
func numericValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// textValue returns a string, a number or boolean as written, or the
// "name" or "item" of an object. Anything else is "".
func textValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64, bool:
		return string(raw)
	case map[string]any:
		for _, key := range []string{"name", "item"} {
			if name, ok := t[key].(string); ok {
				return name
			}
		}
	}
	return ""
}

// textList reads an array (or a single value) of text, skipping entries with no text
func textList(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		entries = []json.RawMessage{raw}
	}

	var out []string
	for _, entry := range entries {
		if s := textValue(entry); s != "" {
			out = append(out, s)
		}
	}
	return out
}
