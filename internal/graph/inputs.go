package graph

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type UserInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type EventInput struct {
	Title       string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Date        string  `validate:"required"`
}

func userInputFromArgs(args map[string]interface{}) (UserInput, error) {
	raw, ok := args["userInput"].(map[string]interface{})
	if !ok {
		return UserInput{}, fmt.Errorf("userInput is required")
	}
	input := UserInput{
		Email:    stringArg(raw, "email"),
		Password: stringArg(raw, "password"),
	}
	if err := validate.Struct(input); err != nil {
		return UserInput{}, inputError(err)
	}
	return input, nil
}

func eventInputFromArgs(args map[string]interface{}) (EventInput, time.Time, error) {
	raw, ok := args["eventInput"].(map[string]interface{})
	if !ok {
		return EventInput{}, time.Time{}, fmt.Errorf("eventInput is required")
	}
	input := EventInput{
		Title:       stringArg(raw, "title"),
		Description: stringArg(raw, "description"),
		Price:       floatArg(raw, "price"),
		Date:        stringArg(raw, "date"),
	}
	if err := validate.Struct(input); err != nil {
		return EventInput{}, time.Time{}, inputError(err)
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		return EventInput{}, time.Time{}, fmt.Errorf("invalid date: must be RFC 3339")
	}
	return input, date, nil
}

func stringArg(raw map[string]interface{}, key string) string {
	value, _ := raw[key].(string)
	return value
}

func floatArg(raw map[string]interface{}, key string) float64 {
	switch value := raw[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	default:
		return 0
	}
}

// inputError reduces a validator error to a short field-level message; the
// library's default text leaks struct internals.
func inputError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("invalid %s", strings.ToLower(verrs[0].Field()))
	}
	return err
}
