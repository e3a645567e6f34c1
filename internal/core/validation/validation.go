// Package validation holds the field rules shared by every write path.
// The functions are pure: they take values and return an error describing
// the first rule the value breaks.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"campaign-hub/internal/core/domain"
)

var (
	businessNumberPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{5}$`)
	mobilePattern         = regexp.MustCompile(`^010-\d{4}-\d{4}$`)
	landlinePattern       = regexp.MustCompile(`^0\d{1,2}-\d{3,4}-\d{4}$`)

	businessNumberWeights = [9]int{1, 3, 7, 1, 3, 7, 1, 3, 5}
)

const (
	MinRecruitmentCount = 1
	MaxRecruitmentCount = 1000
)

// Fields collects per-field failures so several can be reported at once.
type Fields map[string]string

// Check records err against field. A nil err is ignored, and only the
// first failure per field is kept.
func (f Fields) Check(field string, err error) {
	if err == nil {
		return
	}
	if _, ok := f[field]; ok {
		return
	}
	f[field] = err.Error()
}

// Err returns nil when no field failed, or domain.ErrInvalidInput carrying
// the collected details.
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}
	return domain.ErrInvalidInput.WithDetails(map[string]string(f))
}

// StringLength checks the trimmed rune length of v against [min, max].
func StringLength(v string, min, max int) error {
	n := utf8.RuneCountInString(strings.TrimSpace(v))
	switch {
	case n == 0 && min > 0:
		return errors.New("is required")
	case n < min:
		return fmt.Errorf("must be at least %d characters", min)
	case n > max:
		return fmt.Errorf("must be at most %d characters", max)
	}
	return nil
}

// RecruitmentCount checks the capacity bounds.
func RecruitmentCount(n int) error {
	if n < MinRecruitmentCount || n > MaxRecruitmentCount {
		return fmt.Errorf("must be between %d and %d", MinRecruitmentCount, MaxRecruitmentCount)
	}
	return nil
}

// ParseDate parses a DateLayout calendar date into UTC midnight.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, errors.New("must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// DateOrder requires end to be strictly after start.
func DateOrder(start, end time.Time) error {
	if !end.After(start) {
		return errors.New("must be after the start date")
	}
	return nil
}

// NotBefore requires d to be on or after floor.
func NotBefore(d, floor time.Time) error {
	if d.Before(floor) {
		return fmt.Errorf("must not be before %s", floor.Format(domain.DateLayout))
	}
	return nil
}

// BusinessNumber validates a business registration number in XXX-XX-XXXXX
// form, including its check digit.
func BusinessNumber(v string) error {
	v = strings.TrimSpace(v)
	if !businessNumberPattern.MatchString(v) {
		return errors.New("must use the XXX-XX-XXXXX format")
	}
	digits := strings.ReplaceAll(v, "-", "")
	sum := 0
	for i, w := range businessNumberWeights {
		sum += int(digits[i]-'0') * w
	}
	if (10-sum%10)%10 != int(digits[9]-'0') {
		return errors.New("has an invalid check digit")
	}
	return nil
}

// PhoneNumber accepts mobile (010-XXXX-XXXX) and landline
// (0X-XXX-XXXX, 0XX-XXXX-XXXX) numbers.
func PhoneNumber(v string) error {
	v = strings.TrimSpace(v)
	if mobilePattern.MatchString(v) || landlinePattern.MatchString(v) {
		return nil
	}
	return errors.New("must use the 0XX-XXXX-XXXX format")
}
