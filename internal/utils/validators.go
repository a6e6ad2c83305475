package utils

import (
	"Foodgram-Backend/domain"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	usernameAllowed = regexp.MustCompile(`^[a-zA-Z0-9а-яА-ЯёЁ.@+\-_]+$`)
	plainNameBanned = regexp.MustCompile(`[^a-zA-Zа-яА-ЯёЁ ]`)
	tagColorAllowed = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	tagSlugBanned   = regexp.MustCompile(`[^-a-zA-Z0-9_]`)
)

// ValidateUsername rejects the reserved "me" (any case) and any character
// outside letters, digits and . @ + - _ .
func ValidateUsername(value string) (string, error) {
	if strings.ToLower(value) == "me" {
		return "", fmt.Errorf("%w: username 'me' is reserved", domain.ErrInvalidInput)
	}
	if !usernameAllowed.MatchString(value) {
		return "", fmt.Errorf("%w: username %q contains forbidden characters", domain.ErrInvalidInput, value)
	}
	return value, nil
}

// ValidateName accepts Latin and Cyrillic letters plus space and reports
// the exact offending characters otherwise.
func ValidateName(value string) (string, error) {
	if invalid := collectInvalidChars(plainNameBanned, value); invalid != "" {
		return "", fmt.Errorf("%w: forbidden characters %q in name %q", domain.ErrInvalidInput, invalid, value)
	}
	if value == "" {
		return "", fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
	}
	return value, nil
}

// ValidateTagColor accepts #RGB or #RRGGBB hex colors.
func ValidateTagColor(value string) (string, error) {
	if len(value) > 7 || !tagColorAllowed.MatchString(value) {
		return "", fmt.Errorf("%w: %q is not a valid HEX color", domain.ErrInvalidInput, value)
	}
	return value, nil
}

// ValidateTagSlug accepts [-a-zA-Z0-9_] only.
func ValidateTagSlug(value string) (string, error) {
	if invalid := collectInvalidChars(tagSlugBanned, value); invalid != "" {
		return "", fmt.Errorf("%w: forbidden characters %q in slug %q", domain.ErrInvalidInput, invalid, value)
	}
	if value == "" {
		return "", fmt.Errorf("%w: slug cannot be empty", domain.ErrInvalidInput)
	}
	return value, nil
}

func collectInvalidChars(banned *regexp.Regexp, value string) string {
	matches := banned.FindAllString(value, -1)
	if len(matches) == 0 {
		return ""
	}
	seen := make(map[string]struct{}, len(matches))
	uniq := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; !ok {
			seen[m] = struct{}{}
			uniq = append(uniq, m)
		}
	}
	sort.Strings(uniq)
	return strings.Join(uniq, "")
}
