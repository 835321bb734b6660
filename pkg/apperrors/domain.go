package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки бизнес-логики маркетплейса.
Репозитории возвращают свои sentinel-ошибки, сервисы преобразуют их сюда.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется и для чужих ресурсов: существование не раскрываем.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// --- Auth ---

// ErrPhoneAlreadyExists - номер телефона уже зарегистрирован
var ErrPhoneAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Phone number already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный телефон или пароль.
// Контракт API отдает 400, как и остальные ошибки валидации входа.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Unable to log in with provided credentials",
	http.StatusBadRequest,
)

// ErrUserDisabled - аккаунт деактивирован
var ErrUserDisabled = New(
	CodePrecondition,
	"auth",
	"User account is disabled",
	http.StatusBadRequest,
)

// ErrInvalidToken - неверный или просроченный токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Profile ---

// ErrProfileIncomplete - профиль не заполнен до конца
var ErrProfileIncomplete = New(
	CodePrecondition,
	"profile",
	"Complete your profile before responding to orders",
	http.StatusBadRequest,
)

// ErrParticipationBlocked - включить участие можно только с заполненным профилем
var ErrParticipationBlocked = New(
	CodePrecondition,
	"profile",
	"Complete your profile before participating in orders",
	http.StatusBadRequest,
)

// --- Orders ---

// ErrOrderAlreadyDecided - заказ уже обработан, повторное решение запрещено
var ErrOrderAlreadyDecided = New(
	CodeInvalidStatus,
	"order",
	"Order has already been processed",
	http.StatusBadRequest,
)
