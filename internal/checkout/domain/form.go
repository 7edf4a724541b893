package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Form is the 12-field checkout form. It lives only for the duration of a
// checkout session; nothing beyond the card's last four digits survives it.
type Form struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Country    string `json:"country"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCvc    string `json:"cardCvc"`
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
	zipRe   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cardRe  = regexp.MustCompile(`^\d{16}$`)
	cvcRe   = regexp.MustCompile(`^\d{3,4}$`)
	mmyyRe  = regexp.MustCompile(`^\d{2}/\d{2}$`)

	nonDigits    = regexp.MustCompile(`\D`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Errors maps field names to messages. An empty map means the form is valid.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// Validate applies every rule independently and accumulates all violations.
func (f Form) Validate(now time.Time) Errors {
	errs := Errors{}

	fields := map[string]string{
		"firstName":  f.FirstName,
		"lastName":   f.LastName,
		"email":      f.Email,
		"phone":      f.Phone,
		"address":    f.Address,
		"city":       f.City,
		"state":      f.State,
		"zipCode":    f.ZipCode,
		"country":    f.Country,
		"cardNumber": f.CardNumber,
		"cardExpiry": f.CardExpiry,
		"cardCvc":    f.CardCvc,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			errs[name] = "This field is required"
		}
	}

	if f.Email != "" && !emailRe.MatchString(f.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if f.Phone != "" && !phoneRe.MatchString(f.Phone) {
		errs["phone"] = "Please enter a valid phone number"
	}
	if f.ZipCode != "" && !zipRe.MatchString(f.ZipCode) {
		errs["zipCode"] = "Please enter a valid ZIP code"
	}
	if f.CardNumber != "" && !validCardNumber(f.CardNumber) {
		errs["cardNumber"] = "Please enter a valid 16-digit card number"
	}
	if f.CardExpiry != "" && !validExpiry(f.CardExpiry, now) {
		errs["cardExpiry"] = "Please enter a valid future date (MM/YY)"
	}
	if f.CardCvc != "" && !cvcRe.MatchString(f.CardCvc) {
		errs["cardCvc"] = "Please enter a valid CVC (3-4 digits)"
	}

	return errs
}

// CardLast4 returns the last four characters of the card number after
// whitespace stripping. Only valid after Validate passes.
func (f Form) CardLast4() string {
	cleaned := whitespaceRe.ReplaceAllString(f.CardNumber, "")
	if len(cleaned) < 4 {
		return cleaned
	}
	return cleaned[len(cleaned)-4:]
}

// CustomerName joins first and last name the way orders record it.
func (f Form) CustomerName() string {
	return f.FirstName + " " + f.LastName
}

func validCardNumber(s string) bool {
	return cardRe.MatchString(whitespaceRe.ReplaceAllString(s, ""))
}

func validExpiry(s string, now time.Time) bool {
	if !mmyyRe.MatchString(s) {
		return false
	}

	parts := strings.SplitN(s, "/", 2)
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])

	curYear := now.Year() % 100
	curMonth := int(now.Month())

	if month < 1 || month > 12 {
		return false
	}
	if year < curYear {
		return false
	}
	return year > curYear || month >= curMonth
}

// FormatCardNumber groups digits in fours separated by spaces, capped at 19
// characters (16 digits plus 3 separators).
func FormatCardNumber(value string) string {
	cleaned := nonDigits.ReplaceAllString(value, "")
	if cleaned == "" {
		return ""
	}

	var groups []string
	for len(cleaned) > 4 {
		groups = append(groups, cleaned[:4])
		cleaned = cleaned[4:]
	}
	groups = append(groups, cleaned)

	out := strings.Join(groups, " ")
	if len(out) > 19 {
		out = out[:19]
	}
	return out
}

// FormatExpiry turns raw digits into MM/YY as typed.
func FormatExpiry(value string) string {
	cleaned := nonDigits.ReplaceAllString(value, "")
	if len(cleaned) >= 2 {
		end := len(cleaned)
		if end > 4 {
			end = 4
		}
		return cleaned[:2] + "/" + cleaned[2:end]
	}
	return cleaned
}

// FormatCvc keeps digits only, at most four.
func FormatCvc(value string) string {
	cleaned := nonDigits.ReplaceAllString(value, "")
	if len(cleaned) > 4 {
		cleaned = cleaned[:4]
	}
	return cleaned
}

// FormatPhone filters to digits, spaces, hyphens and plus signs.
func FormatPhone(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == ' ', r == '-', r == '+':
			return r
		default:
			return -1
		}
	}, value)
}

// FormatZip filters to digits and hyphens.
func FormatZip(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '-':
			return r
		default:
			return -1
		}
	}, value)
}
