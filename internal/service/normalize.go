package service

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

const defaultPhoneRegion = "KR"

var idnaProfile = idna.Lookup

var (
	errInvalidEmail = errors.New("must be a valid email address")
	errInvalidPhone = errors.New("must be a valid phone number")
	errEmptyValue   = errors.New("must not be empty")
)

// ProfileNormalizer cleans member contact details before they are stored.
type ProfileNormalizer struct {
	DefaultRegion string
}

// NewProfileNormalizer builds a normalizer that parses local phone numbers
// against defaultRegion.
func NewProfileNormalizer(defaultRegion string) *ProfileNormalizer {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &ProfileNormalizer{DefaultRegion: region}
}

// Email lower-cases the address and converts its domain to IDNA ASCII form.
func (n *ProfileNormalizer) Email(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return "", errInvalidEmail
	}
	if !isDomainValid(domain) {
		return "", errInvalidEmail
	}
	asciiDomain, err := idnaProfile.ToASCII(domain)
	if err != nil || asciiDomain == "" {
		return "", errInvalidEmail
	}
	return local + "@" + asciiDomain, nil
}

// Phone formats a phone number as E.164. An empty input yields an empty result.
func (n *ProfileNormalizer) Phone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	number, err := phonenumbers.Parse(raw, n.DefaultRegion)
	if err != nil {
		return "", errInvalidPhone
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return "", errInvalidPhone
	}
	return phonenumbers.Format(number, phonenumbers.E164), nil
}

// Text trims a free-form field and rejects blanks.
func (n *ProfileNormalizer) Text(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errEmptyValue
	}
	return value, nil
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
