package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorHandlerMiddleware turns errors returned by handlers into a JSON
// BaseResponse with a matching status code.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := resolveError(err)
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

func resolveError(err error) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrNotFound) {
		return fiber.StatusNotFound, ErrNotFound.Error()
	}

	if errors.Is(err, ErrUnauthorized) {
		return fiber.StatusUnauthorized, err.Error()
	}

	if errors.Is(err, ErrBadRequest) {
		return fiber.StatusBadRequest, err.Error()
	}

	if errors.Is(err, ErrConflict) {
		return fiber.StatusConflict, err.Error()
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
		return fiber.StatusBadRequest, strings.Join(fields, ", ")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return fiber.StatusConflict, "referenced resource does not exist"
		case "23505":
			return fiber.StatusConflict, "resource already exists"
		}
	}

	return fiber.StatusInternalServerError, "internal server error"
}
