package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"socialnetCPT/internal/apperrors"
)

// ErrorResponse - ответ с ошибками в формате {errors:[{msg}]}
type ErrorResponse struct {
	Errors []apperrors.FieldError `json:"errors"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Errors: []apperrors.FieldError{{Msg: message}},
	})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteAppError переводит вид ошибки в HTTP статус. Ошибки хранилища
// и внутренние ошибки логируются целиком, наружу уходит общий ответ.
func WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperrors.AsError(err)
	if !ok {
		log.Printf("Внутренняя ошибка %s %s: %v", r.Method, r.URL.Path, err)
		WriteError(w, "ошибка сервера", http.StatusInternalServerError)
		return
	}

	switch appErr.Kind {
	case apperrors.KindValidation, apperrors.KindConflict:
		writeFieldErrors(w, appErr, http.StatusBadRequest)
	case apperrors.KindNotFound:
		writeFieldErrors(w, appErr, http.StatusNotFound)
	case apperrors.KindUnauthenticated, apperrors.KindForbidden:
		writeFieldErrors(w, appErr, http.StatusUnauthorized)
	default:
		log.Printf("Ошибка %s %s: %v", r.Method, r.URL.Path, err)
		WriteError(w, "ошибка сервера", http.StatusInternalServerError)
	}
}

func writeFieldErrors(w http.ResponseWriter, appErr *apperrors.Error, statusCode int) {
	items := appErr.Fields
	if len(items) == 0 {
		items = []apperrors.FieldError{{Msg: appErr.Message}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Errors: items})
}

// WriteValidationError разворачивает ошибки validator в список {msg, param}
func WriteValidationError(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		WriteError(w, "неверные данные", http.StatusBadRequest)
		return
	}

	items := make([]apperrors.FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		items = append(items, apperrors.FieldError{
			Msg:   validationMessage(fieldErr),
			Param: fieldErr.Field(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{Errors: items})
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("поле %s обязательно", fieldErr.Field())
	case "email":
		return "неверный формат email"
	case "min":
		return fmt.Sprintf("поле %s должно быть не короче %s символов", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("поле %s заполнено неверно", fieldErr.Field())
	}
}
