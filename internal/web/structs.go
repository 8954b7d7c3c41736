package web

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type signInRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func parseSignInRequest(ctx *fiber.Ctx) (signInRequest, error) {
	req := signInRequest{
		Email:    ctx.FormValue("email", ""),
		Password: ctx.FormValue("password", ""),
	}
	if err := validate.Struct(req); err != nil {
		return signInRequest{}, readableErrors(err)
	}
	return req, nil
}

type signUpRequest struct {
	Email          string `validate:"required,email"`
	Password       string `validate:"required,min=8"`
	PasswordRepeat string `validate:"required"`
}

func parseSignUpRequest(ctx *fiber.Ctx) (signUpRequest, error) {
	req := signUpRequest{
		Email:          ctx.FormValue("email", ""),
		Password:       ctx.FormValue("password", ""),
		PasswordRepeat: ctx.FormValue("password-repeat", ""),
	}
	err := readableErrors(validate.Struct(req))
	if req.PasswordRepeat != req.Password {
		err = errors.Join(err, errors.New("password does not match its confirmation"))
	}
	if err != nil {
		return signUpRequest{}, err
	}
	return req, nil
}

func readableErrors(err error) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	var joined error
	for _, fieldErr := range validationErrors {
		joined = errors.Join(joined, errors.New(readableMessage(fieldErr)))
	}
	return joined
}

func readableMessage(err validator.FieldError) string {
	switch err.Field() {
	case "Email":
		if err.Tag() == "required" {
			return "email must not be empty"
		}
		return "email must be a valid email address"
	case "Password":
		if err.Tag() == "min" {
			return "password must be at least 8 characters"
		}
		return "password must not be empty"
	case "PasswordRepeat":
		return "password confirmation must not be empty"
	}
	return err.Error()
}
