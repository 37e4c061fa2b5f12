package validator

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"user-service/internal/interface/api/rest/dto/user"
)

const (
	minNameLen     = 2
	maxNameLen     = 64
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	validate = playground.New()

	ErrInvalidPage     = errors.New("page must be a non-negative integer")
	ErrInvalidPageSize = errors.New("page_size must be an integer between 1 and 100")
)

// ValidatePaging parses the page and page_size query values. Empty values take the defaults.
func ValidatePaging(pageStr, sizeStr string) (int, int, error) {
	page, size := 0, DefaultPageSize

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 0 {
			return 0, 0, ErrInvalidPage
		}
		page = p
	}
	if sizeStr != "" {
		s, err := strconv.Atoi(sizeStr)
		if err != nil || s < 1 || s > MaxPageSize {
			return 0, 0, ErrInvalidPageSize
		}
		size = s
	}

	return page, size, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateCreateUser normalizes r in place and returns field errors, or nil.
func ValidateCreateUser(r *user.CreateUserRequest) map[string]string {
	errs := validateProfile(&r.Name, &r.Email, &r.Password, &r.BirthDate, &r.Phone)

	if r.Role == nil {
		errs["role"] = "role is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateUpdateUser normalizes r in place and returns field errors, or nil.
func ValidateUpdateUser(r *user.UpdateUserRequest) map[string]string {
	errs := validateProfile(&r.Name, &r.Email, &r.Password, &r.BirthDate, &r.Phone)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateProfile(name, email, password, birthDate, phone *string) map[string]string {
	errs := make(map[string]string)

	// Normalize
	*name = norm.NFC.String(strings.TrimSpace(*name))
	*email = strings.ToLower(strings.TrimSpace(*email))
	*birthDate = strings.TrimSpace(*birthDate)
	*phone = strings.TrimSpace(*phone)

	// name (required + length + allowed chars)
	if *name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(*name); l < minNameLen || l > maxNameLen {
		errs["name"] = "name length must be 2–64 characters"
	} else if !isHumanName(*name) {
		errs["name"] = "allowed characters: letters, space, '-', '''"
	}

	// email (required + format)
	if *email == "" {
		errs["email"] = "email is required"
	} else if validate.Var(*email, "email") != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length), never trimmed
	if strings.TrimSpace(*password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(*password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	// birth_date (required + format + past)
	if *birthDate == "" {
		errs["birth_date"] = "birth_date is required"
	} else if dob, err := time.Parse(time.DateOnly, *birthDate); err != nil {
		errs["birth_date"] = "must be YYYY-MM-DD"
	} else if !dob.Before(time.Now().UTC().Truncate(24 * time.Hour)) {
		errs["birth_date"] = "must be in the past"
	}

	// phone (required + E.164)
	if *phone == "" {
		errs["phone"] = "phone is required"
	} else if validate.Var(*phone, "e164") != nil {
		errs["phone"] = "must be in E.164 format (e.g., +33788888888)"
	}

	return errs
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
